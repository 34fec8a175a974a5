// file: internals/features/organizations/members/service/membership_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "absensiku_backend/internals/features/organizations/members/model"
)

// MembershipService: lookup role & status keanggotaan. CRUD organisasi
// sendiri ada di luar repo ini — core cuma butuh dua query ini.
type MembershipService struct {
	DB *gorm.DB
}

func NewMembershipService(db *gorm.DB) *MembershipService {
	return &MembershipService{DB: db}
}

// GetRole mengembalikan role user pada organisasi; "" kalau bukan member aktif.
func (s *MembershipService) GetRole(orgID, userID uuid.UUID) (string, error) {
	var m model.OrganizationMemberModel
	err := s.DB.
		Select("organization_members_role").
		Where("organization_members_organization_id = ? AND organization_members_user_id = ?", orgID, userID).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return m.OrganizationMembersRole, nil
}

// IsActiveMember: snapshot keanggotaan saat ini (dipakai buat is_member).
func (s *MembershipService) IsActiveMember(orgID, userID uuid.UUID) (bool, error) {
	role, err := s.GetRole(orgID, userID)
	if err != nil {
		return false, err
	}
	return role != "", nil
}
