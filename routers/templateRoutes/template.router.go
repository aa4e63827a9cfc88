package templateRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "tcb/controllers/template"
	"tcb/middleware"
	validators "tcb/validators/template"
)

// SetupTemplateRoutes wires the seed-backed prompt template resource. Reads
// are open; mutations are admin only.
func SetupTemplateRoutes(app *fiber.App) {
	group := app.Group("/prompt_templates")

	group.Get("/", controllers.ListTemplates)
	group.Get("/:id", validators.RequireTemplateID(), controllers.GetTemplate)
	group.Post("/", middleware.JWTMiddleware, middleware.AdminOnly, validators.CreateTemplate(), controllers.CreateTemplate)
	group.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly, validators.RequireTemplateID(), controllers.DeleteTemplate)
}
