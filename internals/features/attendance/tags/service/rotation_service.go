// file: internals/features/attendance/tags/service/rotation_service.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"absensiku_backend/internals/configs"
	"absensiku_backend/internals/features/attendance/tags/model"
	helper "absensiku_backend/internals/helpers"
)

/* =========================
   Service & Constructor
   ========================= */

// TagRotationService: protokol dua fase ganti tag.
//
// Nulis ke tag NFC itu I/O fisik yang bisa gagal/timeout/dibatalkan user,
// jadi identitas TIDAK boleh pindah sebelum tulisan fisik terkonfirmasi:
//
//	prepare  → generate kandidat + baris pending (belum ada perubahan durable)
//	(tap fisik di browser — di luar core ini)
//	confirm  → baris pending jadi confirmed + RecordWrite (atomik)
//
// Prepare yang ditinggalkan cukup kedaluwarsa sendiri; tag lama tetap jalan.
type TagRotationService struct {
	DB    *gorm.DB
	Store *TagIdentityStore

	CooldownDays int
	PendingTTL   time.Duration
}

func NewTagRotationService(db *gorm.DB) *TagRotationService {
	return &TagRotationService{
		DB:           db,
		Store:        NewTagIdentityStore(db),
		CooldownDays: configs.TagWriteCooldownDays,
		PendingTTL:   configs.PendingTagTTL,
	}
}

type PrepareResult struct {
	TagID     uuid.UUID `json:"tag_id"`
	PendingID uuid.UUID `json:"pending_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

/* =========================
   Prepare
   ========================= */

// lockUserRow: row lock users (FOR UPDATE) sebagai kunci per-user
// protokol rotasi. Urutan kunci SELALU users → pending_tag_writes,
// di Prepare maupun Confirm, supaya dua-duanya tidak saling deadlock.
func lockUserRow(tx *gorm.DB, userID uuid.UUID) error {
	var row struct {
		UsersID uuid.UUID `gorm:"column:users_id"`
	}
	return tx.Table("users").
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("users_id").
		Where("users_id = ? AND users_deleted_at IS NULL", userID).
		Take(&row).Error
}

// Prepare: gate cooldown → supersede pending lama → insert pending baru.
// Seluruhnya di bawah row lock user: dua prepare paralel antre, jadi
// supersede selalu melihat pending milik prepare sebelumnya (di bawah
// READ COMMITTED, tanpa kunci, dua-duanya bisa sama-sama commit pending).
// Kandidat UUIDv4 (crypto/rand di baliknya) biar tidak bisa ditebak.
func (s *TagRotationService) Prepare(userID uuid.UUID) (*PrepareResult, error) {
	candidate := uuid.New()
	now := time.Now()

	pending := model.PendingTagWriteModel{
		PendingTagWritesUserID:         userID,
		PendingTagWritesCandidateTagID: candidate,
		PendingTagWritesStatus:         model.PendingTagStatusPending,
		PendingTagWritesExpiresAt:      now.Add(s.PendingTTL),
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockUserRow(tx, userID); err != nil {
			return err
		}

		// Cooldown dicek DI DALAM kunci — confirm yang baru saja commit
		// tidak bisa kecolongan prepare susulan.
		st, err := s.Store.cooldownStatus(tx, userID, s.CooldownDays)
		if err != nil {
			return err
		}
		if !st.CanWrite {
			return ErrCooldownActive(st)
		}

		// Prepare terbaru menang: pending lama user ini jadi unconfirmable.
		if err := tx.Model(&model.PendingTagWriteModel{}).
			Where("pending_tag_writes_user_id = ? AND pending_tag_writes_status = ?",
				userID, model.PendingTagStatusPending).
			Update("pending_tag_writes_status", model.PendingTagStatusSuperseded).Error; err != nil {
			return err
		}
		return tx.Create(&pending).Error
	})
	if err != nil {
		return nil, err
	}

	return &PrepareResult{
		TagID:     candidate,
		PendingID: pending.PendingTagWritesID,
		ExpiresAt: pending.PendingTagWritesExpiresAt,
	}, nil
}

/* =========================
   Confirm
   ========================= */

// ValidatePendingForConfirm: murni, urutan cek tetap —
// owner → superseded → sudah dipakai → kedaluwarsa (cek timestamp,
// bukan cuma status, jadi sweep yang telat tidak bikin lolos).
func ValidatePendingForConfirm(p *model.PendingTagWriteModel, callerID uuid.UUID, now time.Time) *helper.RuleError {
	if p.PendingTagWritesUserID != callerID {
		return ErrNotOwner()
	}
	switch p.PendingTagWritesStatus {
	case model.PendingTagStatusSuperseded:
		return ErrPendingSuperseded()
	case model.PendingTagStatusConfirmed:
		return ErrPendingNotFound()
	case model.PendingTagStatusExpired:
		return ErrPendingExpired()
	}
	if p.ExpiredAt(now) {
		return ErrPendingExpired()
	}
	return nil
}

// Confirm: tulisan fisik sukses → komit identitas baru.
// Baris pending dikunci FOR UPDATE supaya dua confirm bersamaan
// tidak dua-duanya lolos.
func (s *TagRotationService) Confirm(pendingID, callerID uuid.UUID, deviceInfo datatypes.JSON) (*model.TagWriteRecordModel, error) {
	now := time.Now()

	tx := s.DB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	// Kunci user dulu (urutan sama dengan Prepare: users → pending)
	if err := lockUserRow(tx, callerID); err != nil {
		tx.Rollback()
		return nil, err
	}

	var p model.PendingTagWriteModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("pending_tag_writes_id = ?", pendingID).
		Take(&p).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPendingNotFound()
		}
		return nil, err
	}

	if verr := ValidatePendingForConfirm(&p, callerID, now); verr != nil {
		// Baris pending yang ketahuan sudah lewat umur sekalian
		// ditandai expired (sweep malas), lalu tetap gagal.
		if verr.Code == CodePendingExpired && p.PendingTagWritesStatus == model.PendingTagStatusPending {
			if err := tx.Model(&model.PendingTagWriteModel{}).
				Where("pending_tag_writes_id = ?", pendingID).
				Update("pending_tag_writes_status", model.PendingTagStatusExpired).Error; err != nil {
				tx.Rollback()
				return nil, err
			}
			if err := tx.Commit().Error; err != nil {
				return nil, err
			}
			return nil, verr
		}
		tx.Rollback()
		return nil, verr
	}

	if err := tx.Model(&model.PendingTagWriteModel{}).
		Where("pending_tag_writes_id = ?", pendingID).
		Update("pending_tag_writes_status", model.PendingTagStatusConfirmed).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	rec, err := s.Store.RecordWrite(tx, p.PendingTagWritesUserID, p.PendingTagWritesCandidateTagID, deviceInfo)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return rec, nil
}

/* =========================
   Sweep
   ========================= */

// SweepExpired menandai pending yang lewat umur. Murni kebersihan —
// kebenaran expiry tidak bergantung ke sini (Confirm selalu cek timestamp).
func (s *TagRotationService) SweepExpired() (int64, error) {
	res := s.DB.Model(&model.PendingTagWriteModel{}).
		Where("pending_tag_writes_status = ? AND pending_tag_writes_expires_at < ?",
			model.PendingTagStatusPending, time.Now()).
		Update("pending_tag_writes_status", model.PendingTagStatusExpired)
	return res.RowsAffected, res.Error
}
