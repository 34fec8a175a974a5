package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tagsController "absensiku_backend/internals/features/attendance/tags/controller"
	userController "absensiku_backend/internals/features/users/users/controller"
	"absensiku_backend/internals/middlewares"
)

// Panggil dengan: route.TagsRoutes(app.Group("/api/u/tags"), db, v)
// Hasil endpoint:
//   POST /api/u/tags/rotations                      (prepare)
//   POST /api/u/tags/rotations/:pending_id/confirm  (confirm)
//   GET  /api/u/tags/cooldown
//   GET  /api/u/tags/current
//   GET  /api/u/tags/history
//   GET  /api/u/tags/lookup/:tag_id
func TagsRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := tagsController.NewTagsController(db, v)
	lookupCtl := userController.NewUserLookupController(db)

	rotations := r.Group("/rotations", middlewares.TagRotationRateLimiter())
	rotations.Post("/", ctl.Prepare)
	rotations.Post("/:pending_id/confirm", ctl.Confirm)

	r.Get("/cooldown", ctl.GetCooldown)
	r.Get("/current", ctl.GetCurrent)
	r.Get("/history", ctl.GetHistory)

	// lookup dipakai UI scan; limiter ketat biar tag tidak bisa dienumerasi
	r.Get("/lookup/:tag_id", middlewares.ScanRateLimiter(), lookupCtl.LookupTag)
}
