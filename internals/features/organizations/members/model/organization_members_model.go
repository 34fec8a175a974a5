// file: internals/features/organizations/members/model/organization_members_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role disimpan sebagai varchar dengan CHECK di DB; rank numeriknya
// ada di internals/constants/roles.go.
type OrganizationMemberModel struct {
	OrganizationMembersID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:organization_members_id" json:"organization_members_id"`

	OrganizationMembersOrganizationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_org_members_org_user;column:organization_members_organization_id" json:"organization_members_organization_id"`
	OrganizationMembersUserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_org_members_org_user;column:organization_members_user_id" json:"organization_members_user_id"`

	OrganizationMembersRole string `gorm:"type:varchar(24);not null;default:'member';column:organization_members_role" json:"organization_members_role"`

	OrganizationMembersJoinedAt time.Time `gorm:"column:organization_members_joined_at;autoCreateTime" json:"organization_members_joined_at"`

	OrganizationMembersCreatedAt time.Time      `gorm:"column:organization_members_created_at;autoCreateTime" json:"organization_members_created_at"`
	OrganizationMembersUpdatedAt *time.Time     `gorm:"column:organization_members_updated_at;autoUpdateTime" json:"organization_members_updated_at,omitempty"`
	OrganizationMembersDeletedAt gorm.DeletedAt `gorm:"column:organization_members_deleted_at;index" json:"organization_members_deleted_at,omitempty"`
}

func (OrganizationMemberModel) TableName() string { return "organization_members" }
