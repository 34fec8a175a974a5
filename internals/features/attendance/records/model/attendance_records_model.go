// file: internals/features/attendance/records/model/attendance_records_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ===================== Enums (Go-side) ===================== */

// Metode scan. Di DB varchar(8) dengan CHECK (NFC|QR|Manual).
type ScanMethod string

const (
	ScanMethodNFC    ScanMethod = "NFC"
	ScanMethodQR     ScanMethod = "QR"
	ScanMethodManual ScanMethod = "Manual"
)

func (s ScanMethod) Valid() bool {
	switch s {
	case ScanMethodNFC, ScanMethodQR, ScanMethodManual:
		return true
	}
	return false
}

/* ===================== Model ===================== */

// Satu baris per (event, user) — dijaga unique constraint, bukan cek manual,
// supaya dua scan bersamaan tidak bisa dobel insert.
type AttendanceRecordModel struct {
	AttendanceRecordsID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_records_id" json:"attendance_records_id"`

	AttendanceRecordsEventID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_records_event_user;column:attendance_records_event_id" json:"attendance_records_event_id"`
	AttendanceRecordsUserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_records_event_user;column:attendance_records_user_id" json:"attendance_records_user_id"`

	AttendanceRecordsMarkedAt time.Time `gorm:"not null;column:attendance_records_marked_at" json:"attendance_records_marked_at"`
	// Siapa yang melakukan scan (bisa beda dari user yang diabsen)
	AttendanceRecordsMarkedBy uuid.UUID `gorm:"type:uuid;not null;column:attendance_records_marked_by" json:"attendance_records_marked_by"`

	AttendanceRecordsScanMethod ScanMethod `gorm:"type:varchar(8);not null;column:attendance_records_scan_method" json:"attendance_records_scan_method"`

	// Posisi saat scan (kalau geofence aktif)
	AttendanceRecordsLocationLat *float64 `gorm:"type:double precision;column:attendance_records_location_lat" json:"attendance_records_location_lat,omitempty"`
	AttendanceRecordsLocationLng *float64 `gorm:"type:double precision;column:attendance_records_location_lng" json:"attendance_records_location_lng,omitempty"`

	AttendanceRecordsNotes *string `gorm:"type:text;column:attendance_records_notes" json:"attendance_records_notes,omitempty"`

	// Snapshot status keanggotaan saat scan; perubahan membership belakangan
	// tidak mengubah baris historis.
	AttendanceRecordsIsMember bool `gorm:"not null;default:false;column:attendance_records_is_member" json:"attendance_records_is_member"`

	// Info perangkat pemindai (UA browser, serial NFC reader, dsb)
	AttendanceRecordsDeviceInfo datatypes.JSON `gorm:"column:attendance_records_device_info" json:"attendance_records_device_info,omitempty"`

	AttendanceRecordsCreatedAt time.Time `gorm:"column:attendance_records_created_at;autoCreateTime" json:"attendance_records_created_at"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }
