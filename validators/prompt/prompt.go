package promptValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"tcb/apperrors"
)

// SharedPromptRequest is the body shape for creating and replacing a shared
// prompt.
type SharedPromptRequest struct {
	Title          *string                `json:"title"`
	PromptText     string                 `json:"prompt_text"`
	OwnerSessionID *string                `json:"owner_session_id"`
	OwnerUserID    *string                `json:"owner_user_id"`
	Visibility     *string                `json:"visibility"`
	Tags           []string               `json:"tags"`
	Metadata       map[string]interface{} `json:"metadata"`
}

// CreatePrompt requires a textbook path parameter and a non-empty
// prompt_text.
func CreatePrompt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Params("id") == "" {
			return apperrors.NewValidation("Textbook ID is required")
		}

		reqData := new(SharedPromptRequest)
		if err := c.BodyParser(reqData); err != nil {
			return apperrors.NewValidation("Invalid JSON body")
		}

		if strings.TrimSpace(reqData.PromptText) == "" {
			return apperrors.NewValidation("prompt_text is required")
		}

		c.Locals("validatedPrompt", reqData)
		return c.Next()
	}
}

// UpdatePrompt parses the full-replace body; absent optional fields become
// NULL on write. prompt_text is not nullable, so the replacement must carry
// one just like a create.
func UpdatePrompt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Params("id") == "" {
			return apperrors.NewValidation("Prompt ID is required")
		}

		reqData := new(SharedPromptRequest)
		if err := c.BodyParser(reqData); err != nil {
			return apperrors.NewValidation("Invalid JSON body")
		}

		if strings.TrimSpace(reqData.PromptText) == "" {
			return apperrors.NewValidation("prompt_text is required")
		}

		c.Locals("validatedPrompt", reqData)
		return c.Next()
	}
}

// RequirePromptID fails fast when the path parameter is missing.
func RequirePromptID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Params("id") == "" {
			return apperrors.NewValidation("Prompt ID is required")
		}
		return c.Next()
	}
}
