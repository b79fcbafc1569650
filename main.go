package main

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/attendance"
	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/config"
	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/dataset"
	attendanceroutes "github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/routes/attendance"
	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/routes/auth"
	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/routes/timetable"
	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/routes/venues"
	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/services"
)

// customErrorHandler serves JSON for API requests and the error page
// for everything else.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	return c.Status(code).Render("error", fiber.Map{
		"Title":        "Error - Smart Semester Timetable",
		"ErrorCode":    code,
		"ErrorMessage": err.Error(),
	})
}

func main() {
	// Class times in the sheets are institution-local
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		log.Printf("Warning: Failed to load Asia/Kolkata location, falling back to UTC+5:30: %v", err)
		time.Local = time.FixedZone("IST", 5*3600+1800)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Configuration and attendance database
	config.Load()
	config.InitDB()

	// Attendance tracker: Postgres-backed when a database is
	// configured, memory-only otherwise
	var store attendance.Store
	if db := config.GetDB(); db != nil {
		if err := attendance.EnsureSchema(db); err != nil {
			log.Printf("Warning: could not ensure attendance schema: %v", err)
		}
		store = attendance.NewPostgresStore(db)
		defer db.Close()
	}
	tracker := attendance.NewTracker(store)

	// Spreadsheet loader with background refresh
	loader := dataset.NewLoader(config.AppConfig.DataDir, config.AppConfig.TimetableFile, config.AppConfig.CacheTTL)
	if _, err := loader.Load(); err != nil {
		log.Printf("Warning: initial dataset load failed: %v", err)
	}
	services.StartDatasetRefresher(loader, config.AppConfig.CacheTTL)

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", "./static")

	// Setup auth routes
	auth.SetupAuthRoutes(app, loader)

	// Setup timetable routes
	timetable.SetupTimetableRoutes(app, loader)

	// Setup attendance routes
	attendanceroutes.SetupAttendanceRoutes(app, loader, tracker)

	// Setup venue routes
	venues.SetupVenueRoutes(app, loader)

	log.Printf("Listening on %s", config.AppConfig.ListenAddr)
	log.Fatal(app.Listen(config.AppConfig.ListenAddr))
}
