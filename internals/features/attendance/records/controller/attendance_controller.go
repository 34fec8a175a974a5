// file: internals/features/attendance/records/controller/attendance_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/attendance/records/dto"
	service "absensiku_backend/internals/features/attendance/records/service"
	usermodel "absensiku_backend/internals/features/users/users/model"
	helper "absensiku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *service.AdmissionService
}

func NewAttendanceController(db *gorm.DB, v *validator.Validate) *AttendanceController {
	return &AttendanceController{
		DB:       db,
		Validate: v,
		Service:  service.NewAdmissionService(db),
	}
}

/* =========================
   Small helpers
   ========================= */

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" wajib diisi")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" bukan UUID valid")
	}
	return id, nil
}

// resolveTagToUser: payload tag (NFC/QR) → user pemiliknya.
func (ctl *AttendanceController) resolveTagToUser(tagID uuid.UUID) (uuid.UUID, error) {
	var u usermodel.UserModel
	err := ctl.DB.Select("users_id").
		Where("users_current_tag_id = ?", tagID).
		Take(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, helper.NewRuleError(fiber.StatusNotFound, "TAG_NOT_FOUND",
				"Tag tidak dikenal. Mungkin sudah dirotasi — minta pemiliknya cek tag terbaru")
		}
		return uuid.Nil, err
	}
	return u.UsersID, nil
}

/* ===================== MARK ===================== */
// POST /api/a/attendance
func (ctl *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	markedBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.UserID != nil && req.TagID != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kirim user_id ATAU tag_id, jangan dua-duanya")
	}

	// Resolve siapa yang diabsen: tag hasil scan → user;
	// tanpa keduanya → self check-in.
	userID := markedBy
	switch {
	case req.TagID != nil:
		userID, err = ctl.resolveTagToUser(*req.TagID)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
	case req.UserID != nil:
		userID = *req.UserID
	}

	rec, err := ctl.Service.MarkAttendance(markedBy, req.ToInput(userID))
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	return helper.JsonCreated(c, "Kehadiran tercatat", dto.FromAttendanceModel(rec))
}

/* ===================== SUMMARY ===================== */
// GET /api/a/events/:id/attendance/summary
func (ctl *AttendanceController) GetEventSummary(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	eventID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	sum, err := ctl.Service.GetEventSummary(eventID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", sum)
}
