package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"tcb/apperrors"
	"tcb/database"
	"tcb/models"
)

// AdminOnly gates mutating admin operations behind a role check. The check
// runs on every call: resolve the userId claim to a users row and require
// role = admin. Any lookup failure denies; the gate never fails open.
func AdminOnly(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok || userID == "" {
		return apperrors.NewUnauthorized("User not authenticated")
	}

	var user models.User
	err := database.Database.Db.Select("role").First(&user, "id = ?", userID).Error
	if err != nil {
		log.Printf("admin role lookup denied for user %s: %v", userID, err)
		return apperrors.NewForbidden("Admin access required")
	}

	if user.Role != "admin" {
		return apperrors.NewForbidden("Admin access required")
	}

	return c.Next()
}
