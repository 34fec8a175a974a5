// file: internals/features/attendance/records/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"absensiku_backend/internals/features/attendance/records/model"
	service "absensiku_backend/internals/features/attendance/records/service"
)

/* =========================
   REQUEST
   ========================= */

// Identitas yang diabsen bisa lewat user_id langsung (manual entry)
// atau tag_id hasil scan NFC/QR (controller yang resolve ke user).
// Dua-duanya kosong = self check-in oleh pemanggil.
type MarkAttendanceRequest struct {
	EventID    uuid.UUID  `json:"event_id" validate:"required"`
	UserID     *uuid.UUID `json:"user_id" validate:"omitempty"`
	TagID      *uuid.UUID `json:"tag_id" validate:"omitempty"`
	ScanMethod string     `json:"scan_method" validate:"required,oneof=NFC QR Manual"`

	LocationLat *float64 `json:"location_lat" validate:"omitempty,gte=-90,lte=90"`
	LocationLng *float64 `json:"location_lng" validate:"omitempty,gte=-180,lte=180"`

	Notes      *string        `json:"notes" validate:"omitempty,max=500"`
	DeviceInfo datatypes.JSON `json:"device_info"`
}

// ToInput: userID sudah hasil resolve (tag → user / default diri sendiri).
func (r *MarkAttendanceRequest) ToInput(userID uuid.UUID) service.MarkAttendanceInput {
	return service.MarkAttendanceInput{
		EventID:     r.EventID,
		UserID:      userID,
		ScanMethod:  model.ScanMethod(r.ScanMethod),
		LocationLat: r.LocationLat,
		LocationLng: r.LocationLng,
		Notes:       r.Notes,
		DeviceInfo:  r.DeviceInfo,
	}
}

/* =========================
   RESPONSE
   ========================= */

// Nama field mengikuti kontrak client lama (event_id, user_id, dst) —
// jangan diganti ke nama kolom internal.
type AttendanceRecordResponse struct {
	ID          uuid.UUID        `json:"id"`
	EventID     uuid.UUID        `json:"event_id"`
	UserID      uuid.UUID        `json:"user_id"`
	MarkedAt    time.Time        `json:"marked_at"`
	MarkedBy    uuid.UUID        `json:"marked_by"`
	ScanMethod  model.ScanMethod `json:"scan_method"`
	LocationLat *float64         `json:"location_lat,omitempty"`
	LocationLng *float64         `json:"location_lng,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
	IsMember    bool             `json:"is_member"`
}

func FromAttendanceModel(m *model.AttendanceRecordModel) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		ID:          m.AttendanceRecordsID,
		EventID:     m.AttendanceRecordsEventID,
		UserID:      m.AttendanceRecordsUserID,
		MarkedAt:    m.AttendanceRecordsMarkedAt,
		MarkedBy:    m.AttendanceRecordsMarkedBy,
		ScanMethod:  m.AttendanceRecordsScanMethod,
		LocationLat: m.AttendanceRecordsLocationLat,
		LocationLng: m.AttendanceRecordsLocationLng,
		Notes:       m.AttendanceRecordsNotes,
		IsMember:    m.AttendanceRecordsIsMember,
	}
}
