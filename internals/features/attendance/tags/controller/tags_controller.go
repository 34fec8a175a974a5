// file: internals/features/attendance/tags/controller/tags_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/attendance/tags/dto"
	service "absensiku_backend/internals/features/attendance/tags/service"
	helper "absensiku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type TagsController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Rotation *service.TagRotationService
}

func NewTagsController(db *gorm.DB, v *validator.Validate) *TagsController {
	return &TagsController{
		DB:       db,
		Validate: v,
		Rotation: service.NewTagRotationService(db),
	}
}

/* ===================== PREPARE ===================== */
// POST /api/u/tags/rotations
// Generate kandidat tag + pending write. Belum ada perubahan identitas —
// browser masih harus nulis fisik lalu panggil confirm.
func (ctl *TagsController) Prepare(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res, err := ctl.Rotation.Prepare(userID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Siapkan tag, lalu tap untuk menulis", res)
}

/* ===================== CONFIRM ===================== */
// POST /api/u/tags/rotations/:pending_id/confirm
func (ctl *TagsController) Confirm(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	pendingStr := strings.TrimSpace(c.Params("pending_id"))
	pendingID, err := uuid.Parse(pendingStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "pending_id bukan UUID valid")
	}

	var req dto.ConfirmRotationRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
		}
	}

	rec, err := ctl.Rotation.Confirm(pendingID, userID, req.DeviceInfo)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Tag baru aktif", dto.FromTagWriteRecordModel(rec))
}

/* ===================== COOLDOWN ===================== */
// GET /api/u/tags/cooldown
func (ctl *TagsController) GetCooldown(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	st, err := ctl.Rotation.Store.GetCooldownStatus(userID, ctl.Rotation.CooldownDays)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", st)
}

/* ===================== CURRENT ===================== */
// GET /api/u/tags/current
func (ctl *TagsController) GetCurrent(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	tagID, err := ctl.Rotation.Store.GetCurrentTag(userID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.CurrentTagResponse{TagID: tagID})
}

/* ===================== HISTORY ===================== */
// GET /api/u/tags/history?limit=20
func (ctl *TagsController) GetHistory(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	recs, err := ctl.Rotation.Store.GetHistory(userID, limit)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromTagWriteRecordModels(recs))
}
