// file: internals/features/attendance/records/service/errors.go
package service

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	helper "absensiku_backend/internals/helpers"
)

// Kode aturan admission — stabil, dipakai frontend.
const (
	CodePermissionDenied       = "PERMISSION_DENIED"
	CodeEventNotFound          = "EVENT_NOT_FOUND"
	CodeLocationRequired       = "LOCATION_REQUIRED"
	CodeOutsideGeofence        = "OUTSIDE_GEOFENCE"
	CodeAttendanceNotStarted   = "ATTENDANCE_NOT_STARTED"
	CodeAttendanceWindowClosed = "ATTENDANCE_WINDOW_CLOSED"
	CodeAlreadyMarked          = "ALREADY_MARKED"
)

// Format timestamp batas jendela untuk pesan user.
const waktuFormat = "02 Jan 2006 15:04"

func ErrPermissionDenied() *helper.RuleError {
	return helper.NewRuleError(fiber.StatusForbidden, CodePermissionDenied,
		"Anda tidak punya izin untuk mencatat absensi di event ini")
}

func ErrEventNotFound() *helper.RuleError {
	return helper.NewRuleError(fiber.StatusNotFound, CodeEventNotFound,
		"Event tidak ditemukan")
}

func ErrLocationRequired() *helper.RuleError {
	return helper.NewRuleError(fiber.StatusBadRequest, CodeLocationRequired,
		"Event ini memakai geofence — lokasi (lat/lng) wajib dikirim")
}

func ErrOutsideGeofence(distanceM, radiusM float64) *helper.RuleError {
	return helper.NewRuleError(fiber.StatusForbidden, CodeOutsideGeofence,
		fmt.Sprintf("Anda berada ±%.0f m dari lokasi event (maksimal %.0f m)", distanceM, radiusM)).
		WithDetails(fiber.Map{
			"distance_m": distanceM,
			"radius_m":   radiusM,
		})
}

func ErrAttendanceNotStarted(start time.Time) *helper.RuleError {
	return helper.NewRuleError(fiber.StatusForbidden, CodeAttendanceNotStarted,
		"Absensi belum dibuka. Silakan coba lagi setelah "+start.Format(waktuFormat)).
		WithDetails(fiber.Map{"event_start": start})
}

func ErrAttendanceWindowClosed(end time.Time) *helper.RuleError {
	return helper.NewRuleError(fiber.StatusForbidden, CodeAttendanceWindowClosed,
		"Absensi sudah ditutup sejak "+end.Format(waktuFormat)).
		WithDetails(fiber.Map{"event_end": end})
}

func ErrAlreadyMarked() *helper.RuleError {
	return helper.NewRuleError(fiber.StatusConflict, CodeAlreadyMarked,
		"Kehadiran untuk user ini sudah tercatat di event ini")
}
