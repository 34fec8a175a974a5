package constants

import "fmt"

// Role keanggotaan organisasi. Urutannya dipakai buat cek izin,
// jadi bandingkan lewat RoleRank, bukan string.
const (
	RoleMember          = "member"
	RoleAttendanceTaker = "attendance_taker"
	RoleAdmin           = "admin"
	RoleOwner           = "owner"
)

// Rank numerik: makin besar makin tinggi.
var roleRanks = map[string]int{
	RoleMember:          1,
	RoleAttendanceTaker: 2,
	RoleAdmin:           3,
	RoleOwner:           4,
}

// RoleRank mengembalikan rank role; 0 kalau role tidak dikenal.
func RoleRank(role string) int {
	return roleRanks[role]
}

// RoleAtLeast: true kalau role punya rank >= minimal.
// Role tidak dikenal selalu false.
func RoleAtLeast(role, min string) bool {
	r, m := roleRanks[role], roleRanks[min]
	return r > 0 && m > 0 && r >= m
}

func IsValidRole(role string) bool {
	_, ok := roleRanks[role]
	return ok
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleMember,
		RoleAttendanceTaker,
		RoleAdmin,
		RoleOwner,
	}

	AttendanceTakerAndAbove = []string{
		RoleAttendanceTaker,
		RoleAdmin,
		RoleOwner,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}
)

// Template pesan error role
const (
	ErrOnlyTakersCanAccess = "❌ Hanya attendance taker, admin, atau owner yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess = "❌ Hanya admin atau owner yang boleh mengakses fitur %s."
)

func RoleErrorTaker(feature string) string {
	return fmt.Sprintf(ErrOnlyTakersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}
