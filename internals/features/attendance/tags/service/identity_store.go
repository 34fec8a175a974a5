// file: internals/features/attendance/tags/service/identity_store.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/attendance/tags/model"
)

/* =========================
   Store & Constructor
   ========================= */

// TagIdentityStore: satu-satunya pemilik mapping user → tag aktif.
// users_current_tag_id TIDAK boleh diubah dari jalur lain selain
// RecordWrite, supaya invariant two-phase rotasi tetap terjaga.
type TagIdentityStore struct {
	DB *gorm.DB
}

func NewTagIdentityStore(db *gorm.DB) *TagIdentityStore {
	return &TagIdentityStore{DB: db}
}

/* =========================
   Cooldown
   ========================= */

type CooldownStatus struct {
	CanWrite          bool       `json:"can_write"`
	LastWriteDate     *time.Time `json:"last_write_date,omitempty"`
	NextAvailableDate *time.Time `json:"next_available_date,omitempty"`
	DaysRemaining     int        `json:"days_remaining"`
}

// ComputeCooldown: murni, dipisah dari query biar gampang dites.
// Belum pernah rotasi → selalu boleh. Selain itu boleh kalau
// (now - lastWrite) >= cooldownDays.
func ComputeCooldown(lastWrite *time.Time, cooldownDays int, now time.Time) CooldownStatus {
	if lastWrite == nil {
		return CooldownStatus{CanWrite: true}
	}
	next := lastWrite.Add(time.Duration(cooldownDays) * 24 * time.Hour)
	st := CooldownStatus{
		LastWriteDate:     lastWrite,
		NextAvailableDate: &next,
	}
	if !now.Before(next) {
		st.CanWrite = true
		return st
	}
	// pembulatan ke atas: sisa 0,5 hari tetap dilaporkan 1 hari
	st.DaysRemaining = int((next.Sub(now) + 24*time.Hour - 1) / (24 * time.Hour))
	return st
}

// GetCooldownStatus membaca written_at terakhir lalu hitung eligibility.
func (s *TagIdentityStore) GetCooldownStatus(userID uuid.UUID, cooldownDays int) (CooldownStatus, error) {
	return s.cooldownStatus(s.DB, userID, cooldownDays)
}

// cooldownStatus: varian yang bisa jalan di dalam transaksi pemanggil
// (Prepare mengecek ulang di bawah row lock user).
func (s *TagIdentityStore) cooldownStatus(db *gorm.DB, userID uuid.UUID, cooldownDays int) (CooldownStatus, error) {
	var rec model.TagWriteRecordModel
	err := db.
		Where("tag_write_records_user_id = ?", userID).
		Order("tag_write_records_written_at DESC").
		Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CooldownStatus{CanWrite: true}, nil
		}
		return CooldownStatus{}, err
	}
	return ComputeCooldown(&rec.TagWriteRecordsWrittenAt, cooldownDays, time.Now()), nil
}

/* =========================
   Read ops
   ========================= */

// GetCurrentTag: tag aktif user; nil kalau belum punya.
func (s *TagIdentityStore) GetCurrentTag(userID uuid.UUID) (*uuid.UUID, error) {
	var row struct {
		CurrentTagID *uuid.UUID `gorm:"column:users_current_tag_id"`
	}
	err := s.DB.Table("users").
		Select("users_current_tag_id").
		Where("users_id = ? AND users_deleted_at IS NULL", userID).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return row.CurrentTagID, nil
}

// GetHistory: riwayat rotasi, terbaru dulu.
func (s *TagIdentityStore) GetHistory(userID uuid.UUID, limit int) ([]model.TagWriteRecordModel, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var out []model.TagWriteRecordModel
	err := s.DB.
		Where("tag_write_records_user_id = ?", userID).
		Order("tag_write_records_written_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

/* =========================
   Write op (atomic)
   ========================= */

// RecordWrite: append baris audit + update users_current_tag_id dalam
// SATU transaksi (tx dari pemanggil). Dua-duanya sukses atau dua-duanya
// batal — tidak ada keadaan setengah jadi.
func (s *TagIdentityStore) RecordWrite(tx *gorm.DB, userID, tagID uuid.UUID, deviceInfo datatypes.JSON) (*model.TagWriteRecordModel, error) {
	rec := model.TagWriteRecordModel{
		TagWriteRecordsUserID:     userID,
		TagWriteRecordsTagID:      tagID,
		TagWriteRecordsWrittenAt:  time.Now(),
		TagWriteRecordsDeviceInfo: deviceInfo,
	}
	if err := tx.Create(&rec).Error; err != nil {
		return nil, err
	}

	res := tx.Table("users").
		Where("users_id = ? AND users_deleted_at IS NULL", userID).
		Update("users_current_tag_id", tagID)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("user %s tidak ditemukan saat update tag aktif", userID)
	}

	return &rec, nil
}
