package main

import (
	"database/sql"
	"log"
	"os"

	_ "github.com/lib/pq"

	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/attendance"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection:", err)
	}

	log.Println("Running database migrations...")
	if err := attendance.EnsureSchema(db); err != nil {
		log.Fatal("Failed to create attendance schema:", err)
	}
	log.Println("Database migrations completed successfully")
}
