// file: internals/features/attendance/tags/model/tag_write_records_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Audit append-only: satu baris per rotasi tag yang sukses di-confirm.
// Dipakai buat hitung cooldown (jarak sejak written_at terakhir) dan riwayat.
type TagWriteRecordModel struct {
	TagWriteRecordsID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:tag_write_records_id" json:"tag_write_records_id"`

	TagWriteRecordsUserID uuid.UUID `gorm:"type:uuid;not null;index;column:tag_write_records_user_id" json:"tag_write_records_user_id"`
	TagWriteRecordsTagID  uuid.UUID `gorm:"type:uuid;not null;column:tag_write_records_tag_id" json:"tag_write_records_tag_id"`

	TagWriteRecordsWrittenAt time.Time `gorm:"not null;index;column:tag_write_records_written_at" json:"tag_write_records_written_at"`

	// Info perangkat yang menulis fisik (opsional, dari kolaborator browser)
	TagWriteRecordsDeviceInfo datatypes.JSON `gorm:"column:tag_write_records_device_info" json:"tag_write_records_device_info,omitempty"`
}

func (TagWriteRecordModel) TableName() string { return "tag_write_records" }
