package promptRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "tcb/controllers/prompt"
	validators "tcb/validators/prompt"
)

// SetupPromptRoutes wires shared prompts: textbook-scoped list/create plus
// point operations by prompt id.
func SetupPromptRoutes(app *fiber.App) {
	app.Get("/textbooks/:id/shared_prompts", controllers.ListPrompts)
	app.Post("/textbooks/:id/shared_prompts", validators.CreatePrompt(), controllers.CreatePrompt)

	group := app.Group("/shared_prompts")
	group.Get("/:id", validators.RequirePromptID(), controllers.GetPrompt)
	group.Put("/:id", validators.UpdatePrompt(), controllers.UpdatePrompt)
	group.Delete("/:id", validators.RequirePromptID(), controllers.DeletePrompt)
}
