package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tcb/apperrors"
	"tcb/database"
	"tcb/models"
	"tcb/utils"
	promptValidator "tcb/validators/prompt"
)

type promptRow struct {
	models.SharedPrompt
	TotalCount int64 `json:"-" gorm:"column:total_count"`
}

// ListPrompts returns one page of shared prompts scoped to a textbook,
// newest first, with the total riding along as a window count.
func ListPrompts(c *fiber.Ctx) error {
	textbookID := c.Params("id")
	limit, offset := utils.ParsePagination(c)

	var rows []promptRow
	err := database.Database.Db.Model(&models.SharedPrompt{}).
		Select("shared_user_prompts.*, COUNT(*) OVER() AS total_count").
		Where("textbook_id = ?", textbookID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return apperrors.NewInternal(err)
	}

	var total int64
	if len(rows) > 0 {
		total = rows[0].TotalCount
	}

	prompts := make([]models.SharedPrompt, len(rows))
	for i, row := range rows {
		prompts[i] = row.SharedPrompt
	}

	return c.JSON(fiber.Map{
		"prompts":    prompts,
		"pagination": utils.NewPagination(limit, offset, total),
	})
}

// CreatePrompt publishes a prompt under a textbook. Visibility defaults to
// public; tags and metadata default to empty rather than NULL.
func CreatePrompt(c *fiber.Ctx) error {
	textbookID := c.Params("id")

	reqData, ok := c.Locals("validatedPrompt").(*promptValidator.SharedPromptRequest)
	if !ok {
		return apperrors.NewValidation("Invalid request data")
	}

	visibility := "public"
	if reqData.Visibility != nil {
		visibility = *reqData.Visibility
	}

	prompt := models.SharedPrompt{
		Title:          reqData.Title,
		PromptText:     reqData.PromptText,
		OwnerSessionID: reqData.OwnerSessionID,
		OwnerUserID:    reqData.OwnerUserID,
		TextbookID:     textbookID,
		Visibility:     visibility,
		Tags:           utils.JSONList(reqData.Tags),
		Metadata:       utils.JSONMap(reqData.Metadata),
	}

	if err := database.Database.Db.Create(&prompt).Error; err != nil {
		return apperrors.NewInternal(err)
	}

	return c.Status(fiber.StatusCreated).JSON(prompt)
}

// GetPrompt is a point read.
func GetPrompt(c *fiber.Ctx) error {
	id := c.Params("id")

	var prompt models.SharedPrompt
	if err := database.Database.Db.First(&prompt, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("Prompt not found")
		}
		return apperrors.NewInternal(err)
	}

	return c.JSON(prompt)
}

// UpdatePrompt replaces the writable columns wholesale; ownership and
// textbook scope are immutable.
func UpdatePrompt(c *fiber.Ctx) error {
	id := c.Params("id")

	reqData, ok := c.Locals("validatedPrompt").(*promptValidator.SharedPromptRequest)
	if !ok {
		return apperrors.NewValidation("Invalid request data")
	}

	var prompt models.SharedPrompt
	if err := database.Database.Db.First(&prompt, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("Prompt not found")
		}
		return apperrors.NewInternal(err)
	}

	updates := map[string]interface{}{
		"title":       reqData.Title,
		"prompt_text": reqData.PromptText,
		"visibility":  reqData.Visibility,
		"tags":        utils.JSONListOrNil(reqData.Tags),
		"metadata":    utils.JSONMap(reqData.Metadata),
		"updated_at":  time.Now(),
	}

	if err := database.Database.Db.Model(&prompt).Updates(updates).Error; err != nil {
		return apperrors.NewInternal(err)
	}

	if err := database.Database.Db.First(&prompt, "id = ?", id).Error; err != nil {
		return apperrors.NewInternal(err)
	}

	return c.JSON(prompt)
}

// DeletePrompt removes the prompt, returning 204 on success.
func DeletePrompt(c *fiber.Ctx) error {
	id := c.Params("id")

	result := database.Database.Db.Delete(&models.SharedPrompt{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.NewInternal(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFound("Prompt not found")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
