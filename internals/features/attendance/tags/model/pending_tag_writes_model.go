// file: internals/features/attendance/tags/model/pending_tag_writes_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* ===================== Enums (Go-side) ===================== */

// Status state machine rotasi: pending → confirmed | superseded | expired.
// expired juga berlaku implisit lewat expires_at — pembacaan SELALU
// membandingkan timestamp, tidak mengandalkan sweep.
type PendingTagStatus string

const (
	PendingTagStatusPending    PendingTagStatus = "pending"
	PendingTagStatusConfirmed  PendingTagStatus = "confirmed"
	PendingTagStatusSuperseded PendingTagStatus = "superseded"
	PendingTagStatusExpired    PendingTagStatus = "expired"
)

/* ===================== Model ===================== */

// Baris ephemeral per percobaan rotasi. Kandidat tag BELUM jadi identitas
// user sampai confirm sukses; prepare yang ditinggalkan cukup dibiarkan
// kedaluwarsa, tidak perlu kompensasi.
type PendingTagWriteModel struct {
	PendingTagWritesID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:pending_tag_writes_id" json:"pending_tag_writes_id"`

	// Index parsial: maksimal SATU baris pending per user. Jalur normal
	// sudah diserialisasi lewat row lock users (lihat rotation_service),
	// index ini backstop di level DB.
	PendingTagWritesUserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_pending_tag_writes_user_status;uniqueIndex:uq_pending_tag_writes_one_pending,where:pending_tag_writes_status = 'pending';column:pending_tag_writes_user_id" json:"pending_tag_writes_user_id"`
	PendingTagWritesCandidateTagID uuid.UUID `gorm:"type:uuid;not null;column:pending_tag_writes_candidate_tag_id" json:"pending_tag_writes_candidate_tag_id"`

	PendingTagWritesStatus PendingTagStatus `gorm:"type:varchar(12);not null;default:'pending';index:idx_pending_tag_writes_user_status;column:pending_tag_writes_status" json:"pending_tag_writes_status"`

	PendingTagWritesCreatedAt time.Time `gorm:"column:pending_tag_writes_created_at;autoCreateTime" json:"pending_tag_writes_created_at"`
	PendingTagWritesExpiresAt time.Time `gorm:"not null;column:pending_tag_writes_expires_at" json:"pending_tag_writes_expires_at"`
}

func (PendingTagWriteModel) TableName() string { return "pending_tag_writes" }

// ExpiredAt: true kalau baris sudah lewat umur pada instant tertentu.
func (p *PendingTagWriteModel) ExpiredAt(now time.Time) bool {
	return now.After(p.PendingTagWritesExpiresAt)
}
