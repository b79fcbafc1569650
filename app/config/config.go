package config

import (
	"database/sql"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Config holds everything the app reads from the environment: where
// the spreadsheets live, the semester bounds for the calendar walk,
// the dataset staleness window and the optional attendance database.
type Config struct {
	DB *sql.DB

	DataDir       string
	TimetableFile string

	SemesterStart time.Time
	SemesterEnd   time.Time

	CacheTTL   time.Duration
	ListenAddr string
	JWTSecret  string
}

var AppConfig *Config

// Load reads .env (when present) and the environment into AppConfig.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as is")
	}

	AppConfig = &Config{
		DataDir:       getEnv("DATA_DIR", "data"),
		TimetableFile: getEnv("TIMETABLE_FILE", "timetable_schedule.xlsx"),
		SemesterStart: getEnvDate("SEMESTER_START", "2026-01-12"),
		SemesterEnd:   getEnvDate("SEMESTER_END", "2026-05-07"),
		CacheTTL:      getEnvDuration("DATASET_CACHE_TTL", 45*time.Second),
		ListenAddr:    getEnv("LISTEN_ADDR", ":3000"),
		JWTSecret:     getEnv("JWT_SECRET", "academic-planner-secret-key"),
	}
}

// InitDB connects to the attendance database when DATABASE_URL is set.
// A missing or unreachable database is not fatal: attendance then runs
// memory-only and every write is logged as unsynced.
func InitDB() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Println("DATABASE_URL not set, attendance persistence disabled")
		return
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Printf("Warning: failed to open attendance database: %v", err)
		return
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		log.Printf("Warning: attendance database unreachable, running memory-only: %v", err)
		db.Close()
		return
	}

	AppConfig.DB = db
	log.Println("Attendance database connected")
}

// GetDB returns the attendance database handle, nil in memory-only mode.
func GetDB() *sql.DB {
	return AppConfig.DB
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDate(key, fallback string) time.Time {
	raw := getEnv(key, fallback)
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		log.Printf("Warning: invalid date in %s (%q), using default %s", key, raw, fallback)
		t, _ = time.Parse("2006-01-02", fallback)
	}
	return t
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid duration in %s (%q), using default %s", key, raw, fallback)
		return fallback
	}
	return d
}
