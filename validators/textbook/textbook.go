package textbookValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"tcb/apperrors"
)

// TextbookRequest is the body shape shared by create and update. Pointer
// fields distinguish "absent" from "empty"; update substitutes NULL for
// absent optional fields (full-row replace).
type TextbookRequest struct {
	Title     string                 `json:"title"`
	Authors   []string               `json:"authors"`
	License   *string                `json:"license"`
	SourceURL *string                `json:"source_url"`
	Publisher *string                `json:"publisher"`
	Year      *int                   `json:"year"`
	Summary   *string                `json:"summary"`
	Language  *string                `json:"language"`
	Level     *string                `json:"level"`
	CreatedBy *string                `json:"created_by"`
	Metadata  map[string]interface{} `json:"metadata"`
}

// CreateTextbook rejects a missing or whitespace-only title before any
// storage access.
func CreateTextbook() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TextbookRequest)
		if err := c.BodyParser(reqData); err != nil {
			return apperrors.NewValidation("Invalid JSON body")
		}

		if strings.TrimSpace(reqData.Title) == "" {
			return apperrors.NewValidation("Title is required")
		}

		c.Locals("validatedTextbook", reqData)
		return c.Next()
	}
}

// UpdateTextbook parses the full-replace body. Absent optional fields become
// NULL on write; title is not nullable and required like on create.
func UpdateTextbook() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := TextbookID(c); err != nil {
			return err
		}

		reqData := new(TextbookRequest)
		if err := c.BodyParser(reqData); err != nil {
			return apperrors.NewValidation("Invalid JSON body")
		}

		if strings.TrimSpace(reqData.Title) == "" {
			return apperrors.NewValidation("Title is required")
		}

		c.Locals("validatedTextbook", reqData)
		return c.Next()
	}
}

// TextbookID fails fast when the path parameter is missing.
func TextbookID(c *fiber.Ctx) error {
	if c.Params("id") == "" {
		return apperrors.NewValidation("Textbook ID is required")
	}
	return nil
}

// RequireTextbookID is the middleware form of TextbookID for routes that
// need nothing else validated.
func RequireTextbookID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := TextbookID(c); err != nil {
			return err
		}
		return c.Next()
	}
}
