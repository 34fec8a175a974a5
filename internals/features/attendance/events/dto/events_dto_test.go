package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func baseRequest() CreateEventRequest {
	return CreateEventRequest{
		OrganizationID: uuid.New(),
		EventName:      "Kajian Rutin",
		Date:           "2026-09-01",
	}
}

func TestCreateEventRequestNormalize(t *testing.T) {
	t.Run("tanpa geofence & tanpa jendela: valid", func(t *testing.T) {
		req := baseRequest()
		assert.NoError(t, req.Normalize())
	})

	t.Run("geofence lengkap: valid", func(t *testing.T) {
		req := baseRequest()
		req.Latitude = floatPtr(-6.17)
		req.Longitude = floatPtr(106.82)
		req.AttendanceRadiusM = floatPtr(100)
		assert.NoError(t, req.Normalize())
	})

	t.Run("geofence setengah jadi: ditolak", func(t *testing.T) {
		req := baseRequest()
		req.AttendanceRadiusM = floatPtr(100)
		assert.Error(t, req.Normalize())

		req = baseRequest()
		req.Latitude = floatPtr(-6.17)
		req.Longitude = floatPtr(106.82)
		assert.Error(t, req.Normalize())
	})

	t.Run("event_start harus sebelum event_end", func(t *testing.T) {
		req := baseRequest()
		start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
		end := start.Add(-time.Hour)
		req.EventStart = &start
		req.EventEnd = &end
		assert.Error(t, req.Normalize())

		// sama persis juga ditolak (harus strictly before)
		req.EventEnd = &start
		assert.Error(t, req.Normalize())
	})

	t.Run("jendela setengah jadi: ditolak", func(t *testing.T) {
		req := baseRequest()
		start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
		req.EventStart = &start
		assert.Error(t, req.Normalize())
	})
}

func TestCreateEventRequestToModel(t *testing.T) {
	t.Run("date YYYY-MM-DD diparse", func(t *testing.T) {
		req := baseRequest()
		creator := uuid.New()

		m, err := req.ToModel(creator)
		require.NoError(t, err)
		assert.Equal(t, req.OrganizationID, m.EventsOrganizationID)
		assert.Equal(t, "Kajian Rutin", m.EventsName)
		assert.Equal(t, 2026, m.EventsDate.Year())
		assert.Equal(t, time.September, m.EventsDate.Month())
		assert.Equal(t, creator, m.EventsCreatedBy)
		assert.False(t, m.HasGeofence())
	})

	t.Run("format date salah → error", func(t *testing.T) {
		req := baseRequest()
		req.Date = "01-09-2026"
		_, err := req.ToModel(uuid.New())
		assert.Error(t, err)
	})
}
