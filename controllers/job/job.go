package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tcb/apperrors"
	"tcb/database"
	"tcb/models"
	"tcb/utils"
	jobValidator "tcb/validators/job"
)

type jobRow struct {
	models.Job
	TotalCount int64 `json:"-" gorm:"column:total_count"`
}

// ListJobs returns one page of ingestion jobs, optionally filtered by
// status, newest first.
func ListJobs(c *fiber.Ctx) error {
	limit, offset := utils.ParsePagination(c)

	query := database.Database.Db.Model(&models.Job{}).
		Select("jobs.*, COUNT(*) OVER() AS total_count")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var rows []jobRow
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return apperrors.NewInternal(err)
	}

	var total int64
	if len(rows) > 0 {
		total = rows[0].TotalCount
	}

	jobs := make([]models.Job, len(rows))
	for i, row := range rows {
		jobs[i] = row.Job
	}

	return c.JSON(fiber.Map{
		"jobs":       jobs,
		"pagination": utils.NewPagination(limit, offset, total),
	})
}

// GetJob is a point read.
func GetJob(c *fiber.Ctx) error {
	id := c.Params("id")

	var job models.Job
	if err := database.Database.Db.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("Job not found")
		}
		return apperrors.NewInternal(err)
	}

	return c.JSON(job)
}

// CreateJob starts an ingestion. Re-ingesting a textbook that already has a
// job resets that job to pending and zeroes its counters; a new ingestion
// inserts a fresh pending row whose textbook reference is backfilled later
// by the pipeline.
func CreateJob(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedJob").(*jobValidator.CreateJobRequest)
	if !ok {
		return apperrors.NewValidation("Invalid request data")
	}

	now := time.Now()

	if reqData.TextbookID != nil {
		var existing models.Job
		err := database.Database.Db.First(&existing, "textbook_id = ?", *reqData.TextbookID).Error
		if err == nil {
			updates := map[string]interface{}{
				"status":            models.JobStatusPending,
				"started_at":        now,
				"completed_at":      nil,
				"error_message":     nil,
				"ingested_sections": 0,
				"ingested_images":   0,
				"ingested_videos":   0,
				"glue_job_run_id":   nil,
				"updated_at":        now,
			}
			if err := database.Database.Db.Model(&existing).Updates(updates).Error; err != nil {
				return apperrors.NewInternal(err)
			}
			if err := database.Database.Db.First(&existing, "id = ?", existing.ID).Error; err != nil {
				return apperrors.NewInternal(err)
			}
			return c.Status(fiber.StatusCreated).JSON(existing)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewInternal(err)
		}
	}

	job := models.Job{
		TextbookID: reqData.TextbookID,
		Status:     models.JobStatusPending,
		StartedAt:  &now,
	}

	if err := database.Database.Db.Create(&job).Error; err != nil {
		return apperrors.NewInternal(err)
	}

	return c.Status(fiber.StatusCreated).JSON(job)
}

// UpdateJob applies the pipeline's progress report: status transitions,
// counter updates, and the textbook backfill once the pipeline has created
// the textbook row. Completion and failure stamp completed_at.
func UpdateJob(c *fiber.Ctx) error {
	id := c.Params("id")

	reqData, ok := c.Locals("validatedJobUpdate").(*jobValidator.UpdateJobRequest)
	if !ok {
		return apperrors.NewValidation("Invalid request data")
	}

	var job models.Job
	if err := database.Database.Db.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("Job not found")
		}
		return apperrors.NewInternal(err)
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if reqData.Status != nil {
		updates["status"] = *reqData.Status
		if *reqData.Status == models.JobStatusCompleted || *reqData.Status == models.JobStatusFailed {
			updates["completed_at"] = time.Now()
		}
	}
	if reqData.TextbookID != nil {
		updates["textbook_id"] = *reqData.TextbookID
	}
	if reqData.ErrorMessage != nil {
		updates["error_message"] = *reqData.ErrorMessage
	}
	if reqData.IngestedSections != nil {
		updates["ingested_sections"] = *reqData.IngestedSections
	}
	if reqData.IngestedImages != nil {
		updates["ingested_images"] = *reqData.IngestedImages
	}
	if reqData.IngestedVideos != nil {
		updates["ingested_videos"] = *reqData.IngestedVideos
	}
	if reqData.GlueJobRunID != nil {
		updates["glue_job_run_id"] = *reqData.GlueJobRunID
	}

	if err := database.Database.Db.Model(&job).Updates(updates).Error; err != nil {
		return apperrors.NewInternal(err)
	}

	if err := database.Database.Db.First(&job, "id = ?", id).Error; err != nil {
		return apperrors.NewInternal(err)
	}

	return c.JSON(job)
}

// DeleteJob removes a job record.
func DeleteJob(c *fiber.Ctx) error {
	id := c.Params("id")

	result := database.Database.Db.Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.NewInternal(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFound("Job not found")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
