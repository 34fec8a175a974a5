package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "absensiku_backend/internals/features/attendance/records/controller"
	"absensiku_backend/internals/middlewares"
)

// Panggil dengan: route.AttendanceRoutes(app.Group("/api/a"), db, v)
// Hasil endpoint:
//   POST /api/a/attendance
//   GET  /api/a/events/:id/attendance/summary
func AttendanceRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := attendanceController.NewAttendanceController(db, v)

	// scan masuk lewat sini — limiter lebih ketat
	r.Post("/attendance", middlewares.ScanRateLimiter(), ctl.MarkAttendance)
	r.Get("/events/:id/attendance/summary", ctl.GetEventSummary)
}
