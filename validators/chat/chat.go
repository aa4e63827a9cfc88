package chatValidator

import (
	"github.com/gofiber/fiber/v2"

	"tcb/apperrors"
)

// CreateSessionRequest names a new chat session. Both fields are optional.
type CreateSessionRequest struct {
	Name          string  `json:"name"`
	UserSessionID *string `json:"user_session_id"`
}

func CreateSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Params("id") == "" {
			return apperrors.NewValidation("Textbook ID is required")
		}

		reqData := new(CreateSessionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return apperrors.NewValidation("Invalid JSON body")
		}

		if reqData.Name == "" {
			reqData.Name = "New Chat"
		}

		c.Locals("validatedSession", reqData)
		return c.Next()
	}
}

func RequireSessionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Params("id") == "" {
			return apperrors.NewValidation("Session ID is required")
		}
		return c.Next()
	}
}
