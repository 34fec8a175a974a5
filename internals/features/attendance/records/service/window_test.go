package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateAttendanceWindow(t *testing.T) {
	start := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 1, 11, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start *time.Time
		end   *time.Time
		now   time.Time
		want  WindowState
	}{
		{"sebelum start", &start, &end, start.Add(-time.Minute), WindowNotStarted},
		{"tepat di start (inklusif)", &start, &end, start, WindowOpen},
		{"di tengah jendela", &start, &end, start.Add(time.Hour), WindowOpen},
		{"tepat di end (inklusif)", &start, &end, end, WindowOpen},
		{"setelah end", &start, &end, end.Add(time.Second), WindowClosed},
		{"start kosong", nil, &end, start, WindowUnbounded},
		{"end kosong", &start, nil, end.Add(time.Hour), WindowUnbounded},
		{"dua-duanya kosong", nil, nil, time.Now(), WindowUnbounded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateAttendanceWindow(tt.start, tt.end, tt.now))
		})
	}
}
