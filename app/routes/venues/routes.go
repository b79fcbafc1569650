package venues

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/dataset"
)

func SetupVenueRoutes(app *fiber.App, l *dataset.Loader) {
	loader = l

	api := app.Group("/api/venues")
	api.Get("/free", GetFreeVenuesAPI)
}
