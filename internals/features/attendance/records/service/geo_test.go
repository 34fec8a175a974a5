package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 1 derajat busur great-circle pada R=6371000 m.
const meterPerDegree = 2 * math.Pi * earthRadiusMeters / 360

func TestDistanceMeters(t *testing.T) {
	t.Run("jarak nol untuk titik yang sama", func(t *testing.T) {
		assert.Equal(t, 0.0, DistanceMeters(0, 0, 0, 0))
		assert.Equal(t, 0.0, DistanceMeters(-6.1754, 106.8272, -6.1754, 106.8272))
	})

	t.Run("simetris", func(t *testing.T) {
		a := DistanceMeters(-6.1754, 106.8272, -6.1702, 106.8310)
		b := DistanceMeters(-6.1702, 106.8310, -6.1754, 106.8272)
		assert.Equal(t, a, b)
	})

	t.Run("0.0005 derajat di ekuator ≈ 55.6 m", func(t *testing.T) {
		got := DistanceMeters(0, 0, 0, 0.0005)
		assert.InDelta(t, 0.0005*meterPerDegree, got, 0.5)
		assert.InDelta(t, 55.6, got, 1.0)
	})

	t.Run("0.002 derajat di ekuator ≈ 222 m", func(t *testing.T) {
		got := DistanceMeters(0, 0, 0, 0.002)
		assert.InDelta(t, 222.4, got, 1.0)
	})

	t.Run("satu derajat lintang ≈ 111.19 km", func(t *testing.T) {
		got := DistanceMeters(0, 0, 1, 0)
		assert.InDelta(t, meterPerDegree, got, 50)
	})

	t.Run("NaN masuk NaN keluar", func(t *testing.T) {
		assert.True(t, math.IsNaN(DistanceMeters(math.NaN(), 0, 0, 0)))
		assert.True(t, math.IsNaN(DistanceMeters(0, 0, 0, math.NaN())))
	})
}
