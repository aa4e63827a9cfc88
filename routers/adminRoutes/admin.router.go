package adminRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "tcb/controllers/admin"
	"tcb/middleware"
)

// SetupAdminRoutes wires the admin analytics dashboard.
func SetupAdminRoutes(app *fiber.App) {
	group := app.Group("/admin/dashboard")

	group.Get("/stats", middleware.JWTMiddleware, middleware.AdminOnly, controllers.DashboardStats)
}
