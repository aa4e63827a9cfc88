package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tcb/apperrors"
	"tcb/database"
	"tcb/models"
	"tcb/utils"
	textbookValidator "tcb/validators/textbook"
)

// textbookListItem is the whitelisted column set exposed by the list
// endpoint. total_count is the page query's window count and never leaves
// the server.
type textbookListItem struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Authors    datatypes.JSON `json:"authors"`
	Publisher  *string        `json:"publisher"`
	Year       *int           `json:"year"`
	Summary    *string        `json:"summary"`
	Language   *string        `json:"language"`
	Level      *string        `json:"level"`
	CreatedAt  time.Time      `json:"created_at"`
	TotalCount int64          `json:"-" gorm:"column:total_count"`
}

// ListTextbooks returns one page ordered by creation time descending. The
// total row count rides along as a window function so a single round trip
// serves both the page and the pagination metadata.
func ListTextbooks(c *fiber.Ctx) error {
	limit, offset := utils.ParsePagination(c)

	var rows []textbookListItem
	err := database.Database.Db.Model(&models.Textbook{}).
		Select("id, title, authors, publisher, year, summary, language, level, created_at, COUNT(*) OVER() AS total_count").
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

	return c.JSON(fiber.Map{
		"textbooks":  rows,
		"pagination": utils.NewPagination(limit, offset, total),
	})
}

// GetTextbook is a point read.
func GetTextbook(c *fiber.Ctx) error {
	id := c.Params("id")

	var textbook models.Textbook
	if err := database.Database.Db.First(&textbook, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("Textbook not found")
		}
		return apperrors.NewInternal(err)
	}

	return c.JSON(textbook)
}

// CreateTextbook inserts a new textbook with explicit defaults for every
// optional column. Admin only; the gate runs before the validator.
func CreateTextbook(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTextbook").(*textbookValidator.TextbookRequest)
	if !ok {
		return apperrors.NewValidation("Invalid request data")
	}

	textbook := models.Textbook{
		Title:     reqData.Title,
		Authors:   utils.JSONList(reqData.Authors),
		License:   reqData.License,
		SourceURL: reqData.SourceURL,
		Publisher: reqData.Publisher,
		Year:      reqData.Year,
		Summary:   reqData.Summary,
		Language:  reqData.Language,
		Level:     reqData.Level,
		CreatedBy: reqData.CreatedBy,
		Metadata:  utils.JSONMap(reqData.Metadata),
	}

	if err := database.Database.Db.Create(&textbook).Error; err != nil {
		return apperrors.NewInternal(err)
	}

	return c.Status(fiber.StatusCreated).JSON(textbook)
}

// UpdateTextbook replaces the full row: every writable column is rewritten
// from the request body, with NULL substituted for absent optional fields.
// Not a patch.
func UpdateTextbook(c *fiber.Ctx) error {
	id := c.Params("id")

	reqData, ok := c.Locals("validatedTextbook").(*textbookValidator.TextbookRequest)
	if !ok {
		return apperrors.NewValidation("Invalid request data")
	}

	var textbook models.Textbook
	if err := database.Database.Db.First(&textbook, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("Textbook not found")
		}
		return apperrors.NewInternal(err)
	}

	updates := map[string]interface{}{
		"title":      reqData.Title,
		"authors":    utils.JSONListOrNil(reqData.Authors),
		"license":    reqData.License,
		"source_url": reqData.SourceURL,
		"publisher":  reqData.Publisher,
		"year":       reqData.Year,
		"summary":    reqData.Summary,
		"language":   reqData.Language,
		"level":      reqData.Level,
		"metadata":   utils.JSONMap(reqData.Metadata),
		"updated_at": time.Now(),
	}

	if err := database.Database.Db.Model(&textbook).Updates(updates).Error; err != nil {
		return apperrors.NewInternal(err)
	}

	if err := database.Database.Db.First(&textbook, "id = ?", id).Error; err != nil {
		return apperrors.NewInternal(err)
	}

	return c.JSON(textbook)
}

// DeleteTextbook removes the row; every dependent row goes with it via the
// database's cascading foreign keys.
func DeleteTextbook(c *fiber.Ctx) error {
	id := c.Params("id")

	result := database.Database.Db.Delete(&models.Textbook{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.NewInternal(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFound("Textbook not found")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
