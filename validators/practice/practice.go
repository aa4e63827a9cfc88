package practiceValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"tcb/apperrors"
)

// GenerateRequest is the input contract an eventual generative backend must
// keep: same shape in, same shape out.
type GenerateRequest struct {
	Topic        string `json:"topic"`
	MaterialType string `json:"material_type"`
	NumQuestions int    `json:"num_questions"`
	NumOptions   int    `json:"num_options"`
	Difficulty   string `json:"difficulty"`
}

// GeneratePracticeMaterial validates the stub generator's input: topic
// required after trimming, only mcq supported, counts clamped, difficulty
// free text.
func GeneratePracticeMaterial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Params("textbook_id") == "" {
			return apperrors.NewValidation("Textbook ID is required")
		}

		reqData := new(GenerateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return apperrors.NewValidation("Invalid JSON body")
		}

		reqData.Topic = strings.TrimSpace(reqData.Topic)
		if reqData.Topic == "" {
			return apperrors.NewValidation("'topic' is required")
		}

		if reqData.MaterialType == "" {
			reqData.MaterialType = "mcq"
		}
		if reqData.MaterialType != "mcq" {
			return apperrors.NewValidation("Only 'mcq' material_type is supported at this time")
		}

		reqData.NumQuestions = clamp(reqData.NumQuestions, 5, 1, 20)
		reqData.NumOptions = clamp(reqData.NumOptions, 4, 2, 6)

		if reqData.Difficulty == "" {
			reqData.Difficulty = "intermediate"
		}

		c.Locals("validatedGenerate", reqData)
		return c.Next()
	}
}

// clamp substitutes def for a zero value, then bounds the result.
func clamp(n, def, min, max int) int {
	if n == 0 {
		n = def
	}
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
