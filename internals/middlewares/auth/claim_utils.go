// internals/middlewares/auth/claim_utils.go
package auth

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// extractUserID: klaim "sub" (utama) atau "user_id" (legacy) harus UUID.
func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	for _, key := range []string{"sub", "user_id"} {
		if raw, ok := claims[key]; ok {
			s, ok := raw.(string)
			if !ok {
				continue
			}
			id, err := uuid.Parse(strings.TrimSpace(s))
			if err != nil {
				return uuid.Nil, fmt.Errorf("klaim %s bukan UUID: %w", key, err)
			}
			return id, nil
		}
	}
	return uuid.Nil, fmt.Errorf("klaim user tidak ditemukan")
}

// ensureUserActive: user harus ada & belum dinonaktifkan.
func ensureUserActive(db *gorm.DB, userID uuid.UUID) error {
	var active bool
	err := db.Table("users").
		Select("users_is_active").
		Where("users_id = ? AND users_deleted_at IS NULL", userID).
		Take(&active).Error
	if err != nil {
		return err
	}
	if !active {
		return fmt.Errorf("user nonaktif")
	}
	return nil
}
