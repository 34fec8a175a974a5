// file: internals/features/attendance/tags/service/errors.go
package service

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	helper "absensiku_backend/internals/helpers"
)

// Kode aturan protokol rotasi tag.
const (
	CodeCooldownActive    = "COOLDOWN_ACTIVE"
	CodePendingNotFound   = "PENDING_NOT_FOUND"
	CodePendingExpired    = "PENDING_EXPIRED"
	CodePendingSuperseded = "PENDING_SUPERSEDED"
	CodeNotOwner          = "NOT_OWNER"
)

const tanggalFormat = "02 Jan 2006"

func ErrCooldownActive(st CooldownStatus) *helper.RuleError {
	msg := "Rotasi tag masih dalam masa cooldown"
	if st.NextAvailableDate != nil {
		msg = fmt.Sprintf("Rotasi tag masih cooldown (%d hari lagi). Bisa lagi mulai %s",
			st.DaysRemaining, st.NextAvailableDate.Format(tanggalFormat))
	}
	return helper.NewRuleError(fiber.StatusTooManyRequests, CodeCooldownActive, msg).
		WithDetails(fiber.Map{
			"days_remaining":      st.DaysRemaining,
			"next_available_date": st.NextAvailableDate,
			"last_write_date":     st.LastWriteDate,
		})
}

func ErrPendingNotFound() *helper.RuleError {
	return helper.NewRuleError(fiber.StatusNotFound, CodePendingNotFound,
		"Pending write tidak ditemukan atau sudah dipakai")
}

func ErrPendingExpired() *helper.RuleError {
	return helper.NewRuleError(fiber.StatusGone, CodePendingExpired,
		"Pending write sudah kedaluwarsa. Ulangi prepare dari awal")
}

func ErrPendingSuperseded() *helper.RuleError {
	return helper.NewRuleError(fiber.StatusConflict, CodePendingSuperseded,
		"Pending write sudah digantikan prepare yang lebih baru")
}

func ErrNotOwner() *helper.RuleError {
	return helper.NewRuleError(fiber.StatusForbidden, CodeNotOwner,
		"Pending write ini milik user lain")
}
