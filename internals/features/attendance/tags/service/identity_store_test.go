package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCooldown(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	t.Run("belum pernah rotasi → selalu boleh", func(t *testing.T) {
		st := ComputeCooldown(nil, 30, now)
		assert.True(t, st.CanWrite)
		assert.Nil(t, st.LastWriteDate)
		assert.Nil(t, st.NextAvailableDate)
		assert.Equal(t, 0, st.DaysRemaining)
	})

	t.Run("tepat habis cooldown → boleh", func(t *testing.T) {
		last := now.Add(-30 * 24 * time.Hour)
		st := ComputeCooldown(&last, 30, now)
		assert.True(t, st.CanWrite)
		require.NotNil(t, st.NextAvailableDate)
		assert.Equal(t, last.Add(30*24*time.Hour), *st.NextAvailableDate)
	})

	t.Run("baru saja rotasi → tidak boleh, next = written_at + cooldown", func(t *testing.T) {
		last := now.Add(-time.Minute)
		st := ComputeCooldown(&last, 30, now)
		assert.False(t, st.CanWrite)
		require.NotNil(t, st.NextAvailableDate)
		assert.Equal(t, last.Add(30*24*time.Hour), *st.NextAvailableDate)
		assert.Equal(t, 30, st.DaysRemaining)
	})

	t.Run("sisa setengah hari dibulatkan ke 1 hari", func(t *testing.T) {
		last := now.Add(-29*24*time.Hour - 12*time.Hour)
		st := ComputeCooldown(&last, 30, now)
		assert.False(t, st.CanWrite)
		assert.Equal(t, 1, st.DaysRemaining)
	})

	t.Run("cooldown 0 hari → langsung boleh lagi", func(t *testing.T) {
		last := now.Add(-time.Second)
		st := ComputeCooldown(&last, 0, now)
		assert.True(t, st.CanWrite)
	})
}
