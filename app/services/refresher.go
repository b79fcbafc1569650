package services

import (
	"log"
	"time"

	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/dataset"
)

// StartDatasetRefresher re-reads the spreadsheet folder in the
// background on a fixed interval, so the loader cache stays warm and
// interactive requests rarely pay for a cold load. Source files change
// rarely; a failed refresh keeps the last good dataset in the cache.
func StartDatasetRefresher(loader *dataset.Loader, interval time.Duration) {
	go func() {
		log.Println("Dataset refresher started...")
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			if _, err := loader.Reload(); err != nil {
				log.Printf("Error refreshing dataset: %v", err)
			}
		}
	}()
}
