package jobValidator

import (
	"github.com/gofiber/fiber/v2"

	"tcb/apperrors"
	"tcb/models"
)

var validStatuses = map[string]bool{
	models.JobStatusPending:   true,
	models.JobStatusRunning:   true,
	models.JobStatusCompleted: true,
	models.JobStatusFailed:    true,
}

// CreateJobRequest starts an ingestion. textbook_id present means
// re-ingestion of an existing book; absent means a brand new ingestion whose
// textbook row does not exist yet.
type CreateJobRequest struct {
	TextbookID *string `json:"textbook_id"`
}

// UpdateJobRequest is the pipeline's progress report. Only provided fields
// are written.
type UpdateJobRequest struct {
	Status           *string `json:"status"`
	TextbookID       *string `json:"textbook_id"`
	ErrorMessage     *string `json:"error_message"`
	IngestedSections *int    `json:"ingested_sections"`
	IngestedImages   *int    `json:"ingested_images"`
	IngestedVideos   *int    `json:"ingested_videos"`
	GlueJobRunID     *string `json:"glue_job_run_id"`
}

func CreateJob() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateJobRequest)
		if err := c.BodyParser(reqData); err != nil {
			return apperrors.NewValidation("Invalid JSON body")
		}

		c.Locals("validatedJob", reqData)
		return c.Next()
	}
}

func UpdateJob() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Params("id") == "" {
			return apperrors.NewValidation("Job ID is required")
		}

		reqData := new(UpdateJobRequest)
		if err := c.BodyParser(reqData); err != nil {
			return apperrors.NewValidation("Invalid JSON body")
		}

		if reqData.Status != nil && !validStatuses[*reqData.Status] {
			return apperrors.NewValidation("Invalid job status")
		}

		c.Locals("validatedJobUpdate", reqData)
		return c.Next()
	}
}

// ListJobs accepts an optional status filter.
func ListJobs() fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := c.Query("status")
		if status != "" && !validStatuses[status] {
			return apperrors.NewValidation("Invalid job status")
		}
		return c.Next()
	}
}

func RequireJobID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Params("id") == "" {
			return apperrors.NewValidation("Job ID is required")
		}
		return c.Next()
	}
}
