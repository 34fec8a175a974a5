// file: internals/features/attendance/records/service/admission_service.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"absensiku_backend/internals/configs"
	eventmodel "absensiku_backend/internals/features/attendance/events/model"
	"absensiku_backend/internals/features/attendance/records/model"
	membership "absensiku_backend/internals/features/organizations/members/service"
)

/* =========================
   Service & Constructor
   ========================= */

// AdmissionService: pintu tunggal pencatatan kehadiran. Semua aturan
// (izin, geofence, jendela waktu, duplikat) dicek di sini, urut,
// kegagalan pertama menang.
type AdmissionService struct {
	DB      *gorm.DB
	Members *membership.MembershipService
}

func NewAdmissionService(db *gorm.DB) *AdmissionService {
	return &AdmissionService{
		DB:      db,
		Members: membership.NewMembershipService(db),
	}
}

type MarkAttendanceInput struct {
	EventID     uuid.UUID
	UserID      uuid.UUID
	ScanMethod  model.ScanMethod
	LocationLat *float64
	LocationLng *float64
	Notes       *string
	DeviceInfo  datatypes.JSON
}

// MarkAttendance menjalankan seluruh rantai aturan lalu insert SATU baris.
// Duplikat tidak dicek manual: unique constraint (event_id, user_id) +
// insert ON CONFLICT DO NOTHING — dua scan bersamaan tidak mungkin dobel.
func (s *AdmissionService) MarkAttendance(markedBy uuid.UUID, in MarkAttendanceInput) (*model.AttendanceRecordModel, error) {
	now := time.Now()

	// 0) Event dulu — organisasinya dibutuhkan buat cek izin.
	var ev eventmodel.EventModel
	if err := s.DB.Where("events_id = ?", in.EventID).Take(&ev).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound()
		}
		return nil, err
	}

	// 1) Izin: rank >= attendance_taker, atau self check-in kalau diizinkan.
	role, err := s.Members.GetRole(ev.EventsOrganizationID, markedBy)
	if err != nil {
		return nil, err
	}
	if err := CheckMarkPermission(markedBy, in.UserID, role, configs.AllowSelfCheckin); err != nil {
		return nil, err
	}

	// 2) Geofence (kalau event memasangnya)
	if err := CheckGeofence(&ev, in.LocationLat, in.LocationLng); err != nil {
		return nil, err
	}

	// 3) Jendela waktu
	if err := CheckWindow(&ev, now); err != nil {
		return nil, err
	}

	// 4) Snapshot keanggotaan saat scan — perubahan membership belakangan
	//    tidak mengubah baris historis.
	isMember, err := s.Members.IsActiveMember(ev.EventsOrganizationID, in.UserID)
	if err != nil {
		return nil, err
	}

	// 5) Insert tunggal, duplikat diserap constraint.
	rec := model.AttendanceRecordModel{
		AttendanceRecordsEventID:     in.EventID,
		AttendanceRecordsUserID:      in.UserID,
		AttendanceRecordsMarkedAt:    now,
		AttendanceRecordsMarkedBy:    markedBy,
		AttendanceRecordsScanMethod:  in.ScanMethod,
		AttendanceRecordsLocationLat: in.LocationLat,
		AttendanceRecordsLocationLng: in.LocationLng,
		AttendanceRecordsNotes:       in.Notes,
		AttendanceRecordsIsMember:    isMember,
		AttendanceRecordsDeviceInfo:  in.DeviceInfo,
	}

	res := s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendance_records_event_id"},
			{Name: "attendance_records_user_id"},
		},
		DoNothing: true,
	}).Create(&rec)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return nil, ErrAlreadyMarked()
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// conflict → sudah pernah tercatat
		return nil, ErrAlreadyMarked()
	}

	return &rec, nil
}

/* =========================
   PG error mapping
   ========================= */

type pgSQLErr interface {
	SQLState() string
	Error() string
}

// 23505 unique_violation
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) && pgErr.SQLState() == "23505" {
		return true
	}
	return false
}
