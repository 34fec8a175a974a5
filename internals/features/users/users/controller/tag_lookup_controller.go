// file: internals/features/users/users/controller/tag_lookup_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "absensiku_backend/internals/features/users/users/model"
	helper "absensiku_backend/internals/helpers"
)

type UserLookupController struct {
	DB *gorm.DB
}

func NewUserLookupController(db *gorm.DB) *UserLookupController {
	return &UserLookupController{DB: db}
}

// Respons sengaja minim — lookup ini dipakai UI scan, bukan profil lengkap.
type TagLookupResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	FullName string    `json:"full_name"`
}

/* ===================== LOOKUP ===================== */
// GET /api/u/tags/lookup/:tag_id
// Payload NFC/QR hasil scan → user pemiliknya.
func (ctl *UserLookupController) LookupTag(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	tagStr := strings.TrimSpace(c.Params("tag_id"))
	tagID, err := uuid.Parse(tagStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "tag_id bukan UUID valid")
	}

	var u model.UserModel
	if err := ctl.DB.Select("users_id, users_full_name").
		Where("users_current_tag_id = ?", tagID).
		Take(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonErrorCode(c, fiber.StatusNotFound, "TAG_NOT_FOUND",
				"Tag tidak dikenal. Mungkin sudah dirotasi pemiliknya", nil)
		}
		return helper.JsonFromError(c, err)
	}

	return helper.JsonOK(c, "ok", TagLookupResponse{
		UserID:   u.UsersID,
		FullName: u.UsersFullName,
	})
}
