package timetable

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/dataset"
	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/models"
	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/schedule"
)

var loader *dataset.Loader

// gridPlacement tells the renderer where a class sits on the weekly
// grid. Slot is empty when the start time fits no grid row; such
// classes stay in the schedule list and the attendance math.
type gridPlacement struct {
	Day     string `json:"day"`
	Slot    string `json:"slot"`
	RowSpan int    `json:"row_span"`
	Index   int    `json:"index"`
}

// GetTimetableAPI resolves one student's personal weekly timetable:
// profile, subject allocations with material links, the flat schedule
// and the grid placements.
func GetTimetableAPI(c *fiber.Ctx) error {
	mis := c.Params("mis")
	if mis == "" {
		if v, ok := c.Locals("mis").(string); ok {
			mis = v
		}
	}
	if mis == "" {
		return c.Status(400).JSON(fiber.Map{"error": "MIS is required"})
	}

	ds, err := loader.Load()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load spreadsheet data"})
	}
	if ds.Master == nil || len(ds.Rosters) == 0 {
		return c.Status(500).JSON(fiber.Map{"error": "Missing data files"})
	}

	enrollments, name, branch := schedule.ResolveEnrollments(mis, ds.Rosters)
	if len(enrollments) == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "MIS not found"})
	}

	instances := schedule.ResolveSchedule(enrollments, ds.Master)
	links := schedule.LinkMap(ds.Links)

	subjects := make([]models.SubjectAllocation, 0, len(enrollments))
	for _, enrollment := range enrollments {
		subjects = append(subjects, models.SubjectAllocation{
			Subject:      enrollment.Subject,
			Division:     enrollment.Division,
			Batch:        enrollment.Batch,
			MaterialLink: links[schedule.CleanText(enrollment.Subject)],
		})
	}

	placements := make([]gridPlacement, 0, len(instances))
	for i, instance := range instances {
		placements = append(placements, gridPlacement{
			Day:     instance.Day,
			Slot:    schedule.MapToGridSlot(instance.StartTime),
			RowSpan: instance.RowSpan,
			Index:   i,
		})
	}

	response := fiber.Map{
		"profile":  models.StudentProfile{MIS: mis, Name: name, Branch: branch},
		"subjects": subjects,
		"schedule": instances,
		"grid": fiber.Map{
			"slots":      schedule.GridSlots,
			"days":       schedule.WeekDays,
			"placements": placements,
		},
	}
	if len(instances) == 0 {
		response["warning"] = "No schedule found"
	}
	return c.JSON(response)
}
