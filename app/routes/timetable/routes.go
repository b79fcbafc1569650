package timetable

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/dataset"
	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/routes/auth"
)

func SetupTimetableRoutes(app *fiber.App, l *dataset.Loader) {
	loader = l

	// Routes
	app.Get("/", DashboardPage)

	// API routes
	api := app.Group("/api/timetable")
	api.Get("/", auth.AuthMiddleware, GetTimetableAPI)
	api.Get("/:mis", GetTimetableAPI)
}

// DashboardPage renders the dashboard shell; the client fetches the
// timetable data over the API after login.
func DashboardPage(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title":       "Smart Semester Timetable",
		"CurrentPage": "dashboard",
	})
}
