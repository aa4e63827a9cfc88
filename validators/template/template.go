package templateValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"tcb/apperrors"
)

// TemplateQuestion is one ordered guided question in a create request.
type TemplateQuestion struct {
	QuestionText string `json:"question_text"`
	OrderIndex   int    `json:"order_index"`
}

// CreateTemplateRequest describes a new prompt template and its questions.
type CreateTemplateRequest struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Type        string             `json:"type"`
	Visibility  *string            `json:"visibility"`
	Questions   []TemplateQuestion `json:"questions"`
}

func CreateTemplate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateTemplateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return apperrors.NewValidation("Invalid JSON body")
		}

		if strings.TrimSpace(reqData.Name) == "" {
			return apperrors.NewValidation("Name is required")
		}

		if reqData.Type == "" {
			reqData.Type = "RAG"
		}
		if reqData.Type != "RAG" && reqData.Type != "guided" {
			return apperrors.NewValidation("Type must be 'RAG' or 'guided'")
		}

		c.Locals("validatedTemplate", reqData)
		return c.Next()
	}
}

func RequireTemplateID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Params("id") == "" {
			return apperrors.NewValidation("Template ID is required")
		}
		return c.Next()
	}
}
