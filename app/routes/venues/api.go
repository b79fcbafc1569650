package venues

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/dataset"
	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/schedule"
)

var loader *dataset.Loader

// GetFreeVenuesAPI reports the classrooms with no class overlapping
// the one-hour window at day/time, per the master timetable.
func GetFreeVenuesAPI(c *fiber.Ctx) error {
	day := c.Query("day")
	timeStr := c.Query("time")

	if !ValidateDayOfWeek(day) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid or missing day"})
	}
	if !ValidateClockTime(timeStr) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid or missing time. Use H:MM"})
	}

	ds, err := loader.Load()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load spreadsheet data"})
	}
	if ds.Master == nil {
		return c.Status(500).JSON(fiber.Map{"error": "Master timetable not loaded"})
	}

	free := schedule.FreeVenues(ds.Master, day, timeStr)
	return c.JSON(fiber.Map{
		"day":    day,
		"time":   timeStr,
		"venues": free,
		"count":  len(free),
	})
}
