// file: internals/features/attendance/records/service/rules.go
package service

import (
	"time"

	"github.com/google/uuid"

	"absensiku_backend/internals/constants"
	eventmodel "absensiku_backend/internals/features/attendance/events/model"
)

/* =========================
   Aturan murni (tanpa DB)
   ========================= */

// CheckMarkPermission: siapa boleh mencatat absensi.
// - rank >= attendance_taker → boleh mencatat siapa pun di event org-nya
// - member biasa → hanya dirinya sendiri, itu pun kalau allowSelf aktif
// Role kosong berarti bukan member organisasi tersebut.
func CheckMarkPermission(markedBy, userID uuid.UUID, role string, allowSelf bool) error {
	if constants.RoleAtLeast(role, constants.RoleAttendanceTaker) {
		return nil
	}
	if allowSelf && markedBy == userID && role != "" {
		return nil
	}
	return ErrPermissionDenied()
}

// CheckGeofence: hanya berlaku kalau event punya koordinat + radius lengkap.
// Kebijakan batas: tepat di radius DITERIMA; penolakan ketat distance > radius.
func CheckGeofence(ev *eventmodel.EventModel, lat, lng *float64) error {
	if !ev.HasGeofence() {
		return nil
	}
	if lat == nil || lng == nil {
		return ErrLocationRequired()
	}
	dist := DistanceMeters(*ev.EventsLatitude, *ev.EventsLongitude, *lat, *lng)
	if dist > *ev.EventsAttendanceRadiusM {
		return ErrOutsideGeofence(dist, *ev.EventsAttendanceRadiusM)
	}
	return nil
}

// CheckWindow: not_started/closed → error dengan batas terformat;
// open/unbounded → lolos.
func CheckWindow(ev *eventmodel.EventModel, now time.Time) error {
	switch EvaluateAttendanceWindow(ev.EventsEventStart, ev.EventsEventEnd, now) {
	case WindowNotStarted:
		return ErrAttendanceNotStarted(*ev.EventsEventStart)
	case WindowClosed:
		return ErrAttendanceWindowClosed(*ev.EventsEventEnd)
	}
	return nil
}
