// file: internals/features/attendance/events/model/events_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventModel struct {
	// PK & tenant
	EventsID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:events_id" json:"events_id"`
	EventsOrganizationID uuid.UUID `gorm:"type:uuid;not null;index;column:events_organization_id" json:"events_organization_id"`

	// Info inti
	EventsName     string    `gorm:"type:varchar(160);not null;column:events_name" json:"events_name"`
	EventsDate     time.Time `gorm:"type:date;not null;column:events_date" json:"events_date"`
	EventsLocation *string   `gorm:"type:text;column:events_location" json:"events_location,omitempty"`

	// Geofence (opsional; dipakai hanya kalau ketiganya terisi)
	EventsLatitude          *float64 `gorm:"type:double precision;column:events_latitude" json:"events_latitude,omitempty"`
	EventsLongitude         *float64 `gorm:"type:double precision;column:events_longitude" json:"events_longitude,omitempty"`
	EventsAttendanceRadiusM *float64 `gorm:"type:double precision;column:events_attendance_radius_m" json:"events_attendance_radius_m,omitempty"`

	// Jendela absensi (opsional; dua-duanya null = tanpa batas waktu).
	// CHECK di DB: events_event_start < events_event_end saat keduanya terisi.
	EventsEventStart *time.Time `gorm:"column:events_event_start" json:"events_event_start,omitempty"`
	EventsEventEnd   *time.Time `gorm:"column:events_event_end;check:chk_events_window,events_event_start IS NULL OR events_event_end IS NULL OR events_event_start < events_event_end" json:"events_event_end,omitempty"`

	EventsCreatedBy uuid.UUID `gorm:"type:uuid;not null;column:events_created_by" json:"events_created_by"`

	EventsCreatedAt time.Time      `gorm:"column:events_created_at;autoCreateTime" json:"events_created_at"`
	EventsUpdatedAt *time.Time     `gorm:"column:events_updated_at;autoUpdateTime" json:"events_updated_at,omitempty"`
	EventsDeletedAt gorm.DeletedAt `gorm:"column:events_deleted_at;index" json:"events_deleted_at,omitempty"`
}

func (EventModel) TableName() string { return "events" }

// HasGeofence: geofence aktif hanya kalau koordinat & radius lengkap.
func (e *EventModel) HasGeofence() bool {
	return e.EventsLatitude != nil && e.EventsLongitude != nil && e.EventsAttendanceRadiusM != nil
}
