// file: internals/helpers/rule_error.go
package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// RuleError: kegagalan aturan bisnis yang memang diantisipasi
// (sudah absen, di luar geofence, cooldown, dst). Bukan error infra —
// jangan dicatat sebagai unexpected, cukup diteruskan ke client
// dengan kode spesifik supaya frontend bisa render pesan yang pas.
type RuleError struct {
	Code    string
	Status  int
	Message string
	Details fiber.Map
}

func (e *RuleError) Error() string { return e.Message }

func NewRuleError(status int, code, message string) *RuleError {
	return &RuleError{Code: code, Status: status, Message: message}
}

func (e *RuleError) WithDetails(d fiber.Map) *RuleError {
	e.Details = d
	return e
}

// JsonFromError memetakan error dari service ke response JSON:
// - *RuleError  → status + kode aturan
// - *fiber.Error → status bawaan
// - lainnya     → 500 generic (infra), pesan asli hanya masuk log
func JsonFromError(c *fiber.Ctx, err error) error {
	var re *RuleError
	if errors.As(err, &re) {
		return JsonErrorCode(c, re.Status, re.Code, re.Message, re.Details)
	}
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	log.Printf("[ERROR] internal: %v", err)
	return JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
}
