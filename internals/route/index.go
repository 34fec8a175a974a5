// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventsRoute "absensiku_backend/internals/features/attendance/events/route"
	attendanceRoute "absensiku_backend/internals/features/attendance/records/route"
	tagsRoute "absensiku_backend/internals/features/attendance/tags/route"
	authMiddleware "absensiku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	v := validator.New()

	BaseRoutes(app, db)

	// ===================== ADMIN / ATTENDANCE-TAKER =====================
	// Izin per-organisasi dicek di controller/service (role ada di
	// organization_members, bukan di token).
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware(db))
	eventsRoute.EventsRoutes(admin, db, v)
	attendanceRoute.AttendanceRoutes(admin, db, v)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	tagsRoute.TagsRoutes(user.Group("/tags"), db, v)
}
