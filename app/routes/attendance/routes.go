package attendance

import (
	"github.com/gofiber/fiber/v2"

	att "github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/attendance"
	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/dataset"
	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/routes/auth"
)

func SetupAttendanceRoutes(app *fiber.App, l *dataset.Loader, t *att.Tracker) {
	loader = l
	tracker = t

	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware)
	api.Get("/day/:date", GetDayScheduleAPI)
	api.Post("/mark", MarkAttendanceAPI)
	api.Post("/undo", UndoAttendanceAPI)
	api.Get("/summary", GetSummaryAPI)
}
