// file: internals/features/users/users/model/users_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UsersID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:users_id" json:"users_id"`

	UsersFullName string `gorm:"type:varchar(120);not null;column:users_full_name" json:"users_full_name"`
	UsersEmail    string `gorm:"type:varchar(160);not null;uniqueIndex;column:users_email" json:"users_email"`

	// Identitas scan aktif (payload NFC/QR). Nullable: user baru belum punya tag.
	// HANYA boleh dimutasi lewat TagIdentityStore.RecordWrite — jangan update langsung.
	UsersCurrentTagID *uuid.UUID `gorm:"type:uuid;uniqueIndex;column:users_current_tag_id" json:"users_current_tag_id,omitempty"`

	UsersIsActive bool `gorm:"not null;default:true;column:users_is_active" json:"users_is_active"`

	UsersCreatedAt time.Time      `gorm:"column:users_created_at;autoCreateTime" json:"users_created_at"`
	UsersUpdatedAt *time.Time     `gorm:"column:users_updated_at;autoUpdateTime" json:"users_updated_at,omitempty"`
	UsersDeletedAt gorm.DeletedAt `gorm:"column:users_deleted_at;index" json:"users_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
