package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleRankOrdering(t *testing.T) {
	// owner > admin > attendance_taker > member
	assert.Greater(t, RoleRank(RoleOwner), RoleRank(RoleAdmin))
	assert.Greater(t, RoleRank(RoleAdmin), RoleRank(RoleAttendanceTaker))
	assert.Greater(t, RoleRank(RoleAttendanceTaker), RoleRank(RoleMember))
	assert.Equal(t, 0, RoleRank("satpam"))
}

func TestRoleAtLeast(t *testing.T) {
	tests := []struct {
		role string
		min  string
		want bool
	}{
		{RoleOwner, RoleAttendanceTaker, true},
		{RoleAdmin, RoleAttendanceTaker, true},
		{RoleAttendanceTaker, RoleAttendanceTaker, true},
		{RoleMember, RoleAttendanceTaker, false},
		{"", RoleMember, false},
		{"satpam", RoleMember, false},
		{RoleOwner, "satpam", false}, // minimal tidak dikenal → selalu false
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoleAtLeast(tt.role, tt.min), "role=%q min=%q", tt.role, tt.min)
	}
}

func TestIsValidRole(t *testing.T) {
	for _, r := range AllRoles {
		assert.True(t, IsValidRole(r), r)
	}
	assert.False(t, IsValidRole("superadmin"))
	assert.False(t, IsValidRole(""))
}
