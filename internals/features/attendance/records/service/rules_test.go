package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"absensiku_backend/internals/constants"
	eventmodel "absensiku_backend/internals/features/attendance/events/model"
	helper "absensiku_backend/internals/helpers"
)

func ruleCode(t *testing.T, err error) string {
	t.Helper()
	var re *helper.RuleError
	require.True(t, errors.As(err, &re), "harus *helper.RuleError, dapat %T", err)
	return re.Code
}

func TestCheckMarkPermission(t *testing.T) {
	taker := uuid.New()
	member := uuid.New()

	t.Run("attendance_taker boleh mengabsen orang lain", func(t *testing.T) {
		assert.NoError(t, CheckMarkPermission(taker, member, constants.RoleAttendanceTaker, true))
	})

	t.Run("admin dan owner juga boleh", func(t *testing.T) {
		assert.NoError(t, CheckMarkPermission(taker, member, constants.RoleAdmin, false))
		assert.NoError(t, CheckMarkPermission(taker, member, constants.RoleOwner, false))
	})

	t.Run("member biasa tidak boleh mengabsen orang lain", func(t *testing.T) {
		err := CheckMarkPermission(member, taker, constants.RoleMember, true)
		assert.Equal(t, CodePermissionDenied, ruleCode(t, err))
	})

	t.Run("member boleh self check-in kalau diizinkan", func(t *testing.T) {
		assert.NoError(t, CheckMarkPermission(member, member, constants.RoleMember, true))
	})

	t.Run("self check-in ditolak kalau flag mati", func(t *testing.T) {
		err := CheckMarkPermission(member, member, constants.RoleMember, false)
		assert.Equal(t, CodePermissionDenied, ruleCode(t, err))
	})

	t.Run("bukan member organisasi sama sekali", func(t *testing.T) {
		err := CheckMarkPermission(member, member, "", true)
		assert.Equal(t, CodePermissionDenied, ruleCode(t, err))
	})
}

func geofencedEvent(lat, lng, radius float64) *eventmodel.EventModel {
	return &eventmodel.EventModel{
		EventsLatitude:          &lat,
		EventsLongitude:         &lng,
		EventsAttendanceRadiusM: &radius,
	}
}

func TestCheckGeofence(t *testing.T) {
	t.Run("event tanpa geofence: lokasi tidak dicek", func(t *testing.T) {
		assert.NoError(t, CheckGeofence(&eventmodel.EventModel{}, nil, nil))
	})

	t.Run("geofence aktif tapi lokasi tidak dikirim", func(t *testing.T) {
		err := CheckGeofence(geofencedEvent(0, 0, 100), nil, nil)
		assert.Equal(t, CodeLocationRequired, ruleCode(t, err))
	})

	t.Run("~55 m dari pusat, radius 100 m: diterima", func(t *testing.T) {
		lat, lng := 0.0, 0.0005
		assert.NoError(t, CheckGeofence(geofencedEvent(0, 0, 100), &lat, &lng))
	})

	t.Run("~222 m dari pusat, radius 100 m: ditolak dengan jarak terlapor", func(t *testing.T) {
		lat, lng := 0.0, 0.002
		err := CheckGeofence(geofencedEvent(0, 0, 100), &lat, &lng)

		var re *helper.RuleError
		require.True(t, errors.As(err, &re))
		assert.Equal(t, CodeOutsideGeofence, re.Code)
		assert.InDelta(t, 222.4, re.Details["distance_m"].(float64), 1.0)
		assert.Equal(t, 100.0, re.Details["radius_m"].(float64))
	})

	t.Run("tepat di radius: diterima (penolakan ketat > radius)", func(t *testing.T) {
		lat, lng := 0.0, 0.0005
		exact := DistanceMeters(0, 0, lat, lng)
		assert.NoError(t, CheckGeofence(geofencedEvent(0, 0, exact), &lat, &lng))

		// sedikit di luar radius → ditolak
		err := CheckGeofence(geofencedEvent(0, 0, exact-0.001), &lat, &lng)
		assert.Equal(t, CodeOutsideGeofence, ruleCode(t, err))
	})
}

func TestCheckWindow(t *testing.T) {
	start := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 1, 11, 0, 0, 0, time.UTC)
	ev := &eventmodel.EventModel{EventsEventStart: &start, EventsEventEnd: &end}

	t.Run("belum mulai → pesan bawa waktu mulai", func(t *testing.T) {
		err := CheckWindow(ev, start.Add(-time.Hour))
		var re *helper.RuleError
		require.True(t, errors.As(err, &re))
		assert.Equal(t, CodeAttendanceNotStarted, re.Code)
		assert.Contains(t, re.Message, start.Format("02 Jan 2006 15:04"))
	})

	t.Run("sudah tutup → pesan bawa waktu tutup", func(t *testing.T) {
		err := CheckWindow(ev, end.Add(time.Hour))
		var re *helper.RuleError
		require.True(t, errors.As(err, &re))
		assert.Equal(t, CodeAttendanceWindowClosed, re.Code)
		assert.Contains(t, re.Message, end.Format("02 Jan 2006 15:04"))
	})

	t.Run("terbuka / tanpa batas → lolos", func(t *testing.T) {
		assert.NoError(t, CheckWindow(ev, start.Add(time.Hour)))
		assert.NoError(t, CheckWindow(&eventmodel.EventModel{}, time.Now()))
	})
}
