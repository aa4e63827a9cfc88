package models

import "time"

// Job statuses
const (
	JobStatusPending   = "pending"
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// Job tracks one ingestion run. TextbookID is nullable: a new ingestion
// creates the job before the textbook row exists and backfills the reference
// once the pipeline has created it.
type Job struct {
	Base
	TextbookID       *string    `json:"textbook_id" gorm:"type:uuid;index"`
	Textbook         *Textbook  `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Status           string     `json:"status" gorm:"default:'pending'"`
	StartedAt        *time.Time `json:"started_at"`
	CompletedAt      *time.Time `json:"completed_at"`
	ErrorMessage     *string    `json:"error_message"`
	IngestedSections int        `json:"ingested_sections" gorm:"default:0"`
	IngestedImages   int        `json:"ingested_images" gorm:"default:0"`
	IngestedVideos   int        `json:"ingested_videos" gorm:"default:0"`
	GlueJobRunID     *string    `json:"glue_job_run_id"`
}
