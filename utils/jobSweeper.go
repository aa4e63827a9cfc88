package utils

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"tcb/config"
	"tcb/database"
	"tcb/models"
)

// logSweeper logs sweeper events with timestamp
func logSweeper(message string) {
	log.Printf("[JOB-SWEEPER %s] %s", time.Now().Format(time.RFC3339), message)
}

// SweepStaleJobs marks ingestion jobs stuck in pending/running beyond the
// configured timeout as failed. The pipeline never revives a job it stopped
// reporting on, so anything past the deadline is dead.
func SweepStaleJobs() {
	db := database.Database.Db
	cutoff := time.Now().Add(-time.Duration(config.AppConfig.JobTimeoutMin) * time.Minute)
	now := time.Now()

	result := db.Model(&models.Job{}).
		Where("status IN ? AND updated_at < ?", []string{models.JobStatusPending, models.JobStatusRunning}, cutoff).
		Updates(map[string]interface{}{
			"status":        models.JobStatusFailed,
			"error_message": "Job timed out",
			"completed_at":  now,
		})
	if result.Error != nil {
		logSweeper("Error sweeping stale jobs: " + result.Error.Error())
		return
	}
	if result.RowsAffected > 0 {
		logSweeper("marked stale jobs failed")
	}
}

// StartJobSweeper schedules the stale-job sweep every 10 minutes.
func StartJobSweeper() *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("@every 10m", SweepStaleJobs); err != nil {
		log.Fatalf("Failed to schedule job sweeper: %v", err)
	}
	c.Start()
	logSweeper("Job sweeper started")
	return c
}
