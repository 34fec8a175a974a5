// file: internals/features/attendance/events/dto/events_dto.go
package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	model "absensiku_backend/internals/features/attendance/events/model"
)

/* =========================
   REQUEST
   ========================= */

type CreateEventRequest struct {
	OrganizationID uuid.UUID `json:"organization_id" validate:"required"`
	EventName      string    `json:"event_name" validate:"required,max=160"`
	Date           string    `json:"date" validate:"required"` // YYYY-MM-DD
	Location       *string   `json:"location" validate:"omitempty,max=500"`

	Latitude          *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude         *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	AttendanceRadiusM *float64 `json:"attendance_radius_meters" validate:"omitempty,gt=0"`

	EventStart *time.Time `json:"event_start"`
	EventEnd   *time.Time `json:"event_end"`
}

// Normalize: aturan silang yang tidak kebaca validator per-field.
func (r *CreateEventRequest) Normalize() error {
	// geofence: radius tanpa koordinat (atau sebaliknya) tidak ada artinya
	geoFields := 0
	if r.Latitude != nil {
		geoFields++
	}
	if r.Longitude != nil {
		geoFields++
	}
	if r.AttendanceRadiusM != nil {
		geoFields++
	}
	if geoFields != 0 && geoFields != 3 {
		return fmt.Errorf("geofence butuh latitude, longitude, dan attendance_radius_meters sekaligus")
	}

	if r.EventStart != nil && r.EventEnd != nil && !r.EventStart.Before(*r.EventEnd) {
		return fmt.Errorf("event_start harus sebelum event_end")
	}
	if (r.EventStart == nil) != (r.EventEnd == nil) {
		return fmt.Errorf("event_start dan event_end harus diisi berpasangan (atau dua-duanya kosong)")
	}
	return nil
}

func (r *CreateEventRequest) ToModel(createdBy uuid.UUID) (*model.EventModel, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, fmt.Errorf("format date harus YYYY-MM-DD")
	}
	return &model.EventModel{
		EventsOrganizationID:    r.OrganizationID,
		EventsName:              r.EventName,
		EventsDate:              date,
		EventsLocation:          r.Location,
		EventsLatitude:          r.Latitude,
		EventsLongitude:         r.Longitude,
		EventsAttendanceRadiusM: r.AttendanceRadiusM,
		EventsEventStart:        r.EventStart,
		EventsEventEnd:          r.EventEnd,
		EventsCreatedBy:         createdBy,
	}, nil
}

/* =========================
   RESPONSE
   ========================= */

type EventResponse struct {
	ID                uuid.UUID  `json:"id"`
	OrganizationID    uuid.UUID  `json:"organization_id"`
	EventName         string     `json:"event_name"`
	Date              string     `json:"date"`
	Location          *string    `json:"location,omitempty"`
	Latitude          *float64   `json:"latitude,omitempty"`
	Longitude         *float64   `json:"longitude,omitempty"`
	AttendanceRadiusM *float64   `json:"attendance_radius_meters,omitempty"`
	EventStart        *time.Time `json:"event_start,omitempty"`
	EventEnd          *time.Time `json:"event_end,omitempty"`
	CreatedBy         uuid.UUID  `json:"created_by"`
	CreatedAt         time.Time  `json:"created_at"`
}

func FromEventModel(m *model.EventModel) EventResponse {
	return EventResponse{
		ID:                m.EventsID,
		OrganizationID:    m.EventsOrganizationID,
		EventName:         m.EventsName,
		Date:              m.EventsDate.Format("2006-01-02"),
		Location:          m.EventsLocation,
		Latitude:          m.EventsLatitude,
		Longitude:         m.EventsLongitude,
		AttendanceRadiusM: m.EventsAttendanceRadiusM,
		EventStart:        m.EventsEventStart,
		EventEnd:          m.EventsEventEnd,
		CreatedBy:         m.EventsCreatedBy,
		CreatedAt:         m.EventsCreatedAt,
	}
}

func FromEventModels(ms []model.EventModel) []EventResponse {
	out := make([]EventResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromEventModel(&ms[i]))
	}
	return out
}
