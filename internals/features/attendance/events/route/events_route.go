package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventsController "absensiku_backend/internals/features/attendance/events/controller"
)

// Panggil dengan: route.EventsRoutes(app.Group("/api/a"), db, v)
// Hasil endpoint:
//   POST /api/a/events        (admin/owner organisasi — dicek di controller)
//   GET  /api/a/events        (?organization_id=)
//   GET  /api/a/events/:id
func EventsRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := eventsController.NewEventsController(db, v)

	events := r.Group("/events")
	events.Post("/", ctl.Create)
	events.Get("/", ctl.List)
	events.Get("/:id", ctl.GetByID)
}
