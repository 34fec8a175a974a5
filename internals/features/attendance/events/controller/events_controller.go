// file: internals/features/attendance/events/controller/events_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absensiku_backend/internals/constants"
	d "absensiku_backend/internals/features/attendance/events/dto"
	m "absensiku_backend/internals/features/attendance/events/model"
	membership "absensiku_backend/internals/features/organizations/members/service"
	helper "absensiku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type EventsController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Members  *membership.MembershipService
}

func NewEventsController(db *gorm.DB, v *validator.Validate) *EventsController {
	return &EventsController{
		DB:       db,
		Validate: v,
		Members:  membership.NewMembershipService(db),
	}
}

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

/* ===================== CREATE (admin/owner) ===================== */
// POST /api/a/events
func (ctl *EventsController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.Normalize(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	role, err := ctl.Members.GetRole(req.OrganizationID, userID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !constants.RoleAtLeast(role, constants.RoleAdmin) {
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorAdmin("membuat event"))
	}

	ev, err := req.ToModel(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Create(ev).Error; err != nil {
		return helper.JsonFromError(c, err)
	}

	return helper.JsonCreated(c, "Event berhasil dibuat", d.FromEventModel(ev))
}

/* ===================== GET BY ID ===================== */
// GET /api/a/events/:id
func (ctl *EventsController) GetByID(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var ev m.EventModel
	if err := ctl.DB.Where("events_id = ?", id).Take(&ev).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", d.FromEventModel(&ev))
}

/* ===================== LIST (per organisasi) ===================== */
// GET /api/a/events?organization_id=...&page=&per_page=
func (ctl *EventsController) List(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	orgStr := strings.TrimSpace(c.Query("organization_id"))
	if orgStr == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "organization_id wajib diisi")
	}
	orgID, err := uuid.Parse(orgStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "organization_id bukan UUID valid")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&m.EventModel{}).
		Where("events_organization_id = ?", orgID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonFromError(c, err)
	}

	var evs []m.EventModel
	if err := q.Order("events_date DESC, events_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&evs).Error; err != nil {
		return helper.JsonFromError(c, err)
	}

	return helper.JsonList(c, "ok", d.FromEventModels(evs),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
