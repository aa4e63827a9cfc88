package textbookRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "tcb/controllers/textbook"
	"tcb/middleware"
	validators "tcb/validators/textbook"
)

// SetupTextbookRoutes wires the textbook CRUD. Mutations are admin only; the
// gate runs before body validation so a non-admin gets 403 even with a bad
// body, matching the read path's fail order.
func SetupTextbookRoutes(app *fiber.App) {
	group := app.Group("/textbooks")

	group.Get("/", controllers.ListTextbooks)
	group.Get("/:id", validators.RequireTextbookID(), controllers.GetTextbook)
	group.Post("/", middleware.JWTMiddleware, middleware.AdminOnly, validators.CreateTextbook(), controllers.CreateTextbook)
	group.Put("/:id", middleware.JWTMiddleware, middleware.AdminOnly, validators.UpdateTextbook(), controllers.UpdateTextbook)
	group.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly, validators.RequireTextbookID(), controllers.DeleteTextbook)
}
