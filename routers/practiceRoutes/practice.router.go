package practiceRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "tcb/controllers/practice"
	validators "tcb/validators/practice"
)

// SetupPracticeRoutes wires the practice-material stub generator.
func SetupPracticeRoutes(app *fiber.App) {
	app.Post("/textbooks/:textbook_id/practice_materials",
		validators.GeneratePracticeMaterial(), controllers.GeneratePracticeMaterial)
}
