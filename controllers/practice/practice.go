package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tcb/apperrors"
	practiceValidator "tcb/validators/practice"
)

// MCQOption is one answer choice with a templated explanation.
type MCQOption struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Explanation string `json:"explanation"`
}

// MCQQuestion is one generated question. CorrectAnswer references an option
// id.
type MCQQuestion struct {
	ID            string      `json:"id"`
	QuestionText  string      `json:"questionText"`
	Options       []MCQOption `json:"options"`
	CorrectAnswer string      `json:"correctAnswer"`
}

// Quiz is the full practice-material payload.
type Quiz struct {
	Title     string        `json:"title"`
	Questions []MCQQuestion `json:"questions"`
}

// optionID labels options 'a', 'b', 'c', ... in sequence.
func optionID(index int) string {
	return string(rune('a' + index))
}

// GeneratePracticeMaterial builds a structurally valid placeholder quiz
// without invoking any generative model. A future generative backend keeps
// this exact input and output shape, replacing option text and the
// correctness flag with model-derived content.
func GeneratePracticeMaterial(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedGenerate").(*practiceValidator.GenerateRequest)
	if !ok {
		return apperrors.NewValidation("Invalid request data")
	}

	const correctIndex = 0

	questions := make([]MCQQuestion, reqData.NumQuestions)
	for qi := range questions {
		options := make([]MCQOption, reqData.NumOptions)
		for oi := range options {
			if oi == correctIndex {
				options[oi] = MCQOption{
					ID:   optionID(oi),
					Text: fmt.Sprintf("Correct option for Q%d", qi+1),
					Explanation: fmt.Sprintf(
						"Correct. This aligns with the topic '%s' at %s level.",
						reqData.Topic, reqData.Difficulty),
				}
				continue
			}
			options[oi] = MCQOption{
				ID:   optionID(oi),
				Text: fmt.Sprintf("Incorrect option %d for Q%d", oi+1, qi+1),
				Explanation: fmt.Sprintf(
					"Incorrect. Review the concepts in '%s' to understand why this is not correct.",
					reqData.Topic),
			}
		}

		questions[qi] = MCQQuestion{
			ID:            uuid.NewString(),
			QuestionText:  fmt.Sprintf("(%s) [%s] Placeholder question %d?", reqData.Difficulty, reqData.Topic, qi+1),
			Options:       options,
			CorrectAnswer: optionID(correctIndex),
		}
	}

	return c.JSON(Quiz{
		Title:     "Practice Quiz: " + reqData.Topic,
		Questions: questions,
	})
}
