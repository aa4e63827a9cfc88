package jobRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "tcb/controllers/job"
	validators "tcb/validators/job"
)

// SetupJobRoutes wires ingestion job records.
func SetupJobRoutes(app *fiber.App) {
	group := app.Group("/jobs")

	group.Get("/", validators.ListJobs(), controllers.ListJobs)
	group.Get("/:id", validators.RequireJobID(), controllers.GetJob)
	group.Post("/", validators.CreateJob(), controllers.CreateJob)
	group.Put("/:id", validators.UpdateJob(), controllers.UpdateJob)
	group.Delete("/:id", validators.RequireJobID(), controllers.DeleteJob)
}
