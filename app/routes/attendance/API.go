package attendance

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/attendance"
	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/config"
	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/dataset"
	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/models"
	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/schedule"
)

var (
	loader  *dataset.Loader
	tracker *attendance.Tracker
)

const syncWarning = "Could not sync with the attendance store; the change is kept locally"

type markRequest struct {
	Date      string `json:"date" validate:"required"`
	Subject   string `json:"subject" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=THEORY LAB TUTORIAL"`
	StartTime string `json:"start_time" validate:"required"`
}

// GetDayScheduleAPI lists the logged-in student's classes for one
// date, sorted by start time, each with its attendance flag.
func GetDayScheduleAPI(c *fiber.Ctx) error {
	mis := c.Locals("mis").(string)

	date, err := time.Parse("2006-01-02", c.Params("date"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	instances, ok := resolveFor(c, mis)
	if !ok {
		return nil
	}

	dayName := date.Weekday().String()
	var classes []fiber.Map
	for _, instance := range instances {
		if instance.Day != dayName {
			continue
		}
		key := attendance.BuildKey(mis, date, instance.Subject, instance.Type, instance.StartTime)
		classes = append(classes, fiber.Map{
			"subject":    instance.Subject,
			"type":       instance.Type,
			"start_time": instance.StartTime,
			"venue":      instance.Venue,
			"present":    tracker.IsMarked(key),
		})
	}
	sort.Slice(classes, func(i, j int) bool {
		a, _ := schedule.ClockMinutes(classes[i]["start_time"].(string))
		b, _ := schedule.ClockMinutes(classes[j]["start_time"].(string))
		return a < b
	})

	return c.JSON(fiber.Map{
		"date":    date.Format("2006-01-02"),
		"day":     dayName,
		"classes": classes,
		"count":   len(classes),
	})
}

// MarkAttendanceAPI marks one session as attended. The local record is
// authoritative; a failed store sync only adds a warning.
func MarkAttendanceAPI(c *fiber.Ctx) error {
	return updateAttendance(c, true)
}

// UndoAttendanceAPI removes an attended mark, mirroring Mark.
func UndoAttendanceAPI(c *fiber.Ctx) error {
	return updateAttendance(c, false)
}

func updateAttendance(c *fiber.Ctx, present bool) error {
	mis := c.Locals("mis").(string)

	var req markRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Subject == "" || req.StartTime == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Subject and start time are required"})
	}
	sessionType := models.SessionType(req.Type)
	switch sessionType {
	case models.Theory, models.Lab, models.Tutorial:
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Invalid session type. Must be THEORY, LAB or TUTORIAL"})
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	key := attendance.BuildKey(mis, date, req.Subject, sessionType, req.StartTime)

	var syncErr error
	if present {
		syncErr = tracker.Mark(key)
	} else {
		syncErr = tracker.Unmark(key)
	}

	response := fiber.Map{"present": present}
	if syncErr != nil {
		response["warning"] = syncWarning
	}
	return c.JSON(response)
}

// GetSummaryAPI computes the attendance calculator: semester totals
// per (subject, type) against the sessions marked so far.
func GetSummaryAPI(c *fiber.Ctx) error {
	mis := c.Locals("mis").(string)

	instances, ok := resolveFor(c, mis)
	if !ok {
		return nil
	}

	cfg := config.AppConfig
	totals := schedule.SemesterTotals(instances, cfg.SemesterStart, cfg.SemesterEnd)
	summaries := attendance.Summarize(mis, totals, tracker)

	return c.JSON(fiber.Map{
		"semester_start": cfg.SemesterStart.Format("2006-01-02"),
		"semester_end":   cfg.SemesterEnd.Format("2006-01-02"),
		"target":         attendance.AttendanceTarget * 100,
		"subjects":       summaries,
	})
}

// resolveFor loads the dataset and resolves the student's weekly
// schedule. On failure the error response is already written and the
// second return is false.
func resolveFor(c *fiber.Ctx, mis string) ([]models.ClassInstance, bool) {
	ds, err := loader.Load()
	if err != nil {
		c.Status(500).JSON(fiber.Map{"error": "Failed to load spreadsheet data"})
		return nil, false
	}

	enrollments, _, _ := schedule.ResolveEnrollments(mis, ds.Rosters)
	if len(enrollments) == 0 {
		c.Status(404).JSON(fiber.Map{"error": "MIS not found"})
		return nil, false
	}
	return schedule.ResolveSchedule(enrollments, ds.Master), true
}
