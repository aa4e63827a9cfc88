package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tcb/apperrors"
	"tcb/database"
	"tcb/models"
	"tcb/utils"
	templateValidator "tcb/validators/template"
)

type templateRow struct {
	models.PromptTemplate
	TotalCount int64 `json:"-" gorm:"column:total_count"`
}

// ListTemplates returns one page of prompt templates with their guided
// questions preloaded in order.
func ListTemplates(c *fiber.Ctx) error {
	limit, offset := utils.ParsePagination(c)

	var rows []templateRow
	err := database.Database.Db.Model(&models.PromptTemplate{}).
		Select("prompt_templates.*, COUNT(*) OVER() AS total_count").
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

	templates := make([]models.PromptTemplate, len(rows))
	for i, row := range rows {
		templates[i] = row.PromptTemplate
	}

	// Attach questions for the page in one query.
	if len(templates) > 0 {
		ids := make([]string, len(templates))
		index := make(map[string]int, len(templates))
		for i, tpl := range templates {
			ids[i] = tpl.ID
			index[tpl.ID] = i
			templates[i].Questions = []models.GuidedPromptQuestion{}
		}

		var questions []models.GuidedPromptQuestion
		err := database.Database.Db.
			Where("prompt_template_id IN ?", ids).
			Order("order_index ASC").
			Find(&questions).Error
		if err != nil {
			return apperrors.NewInternal(err)
		}
		for _, q := range questions {
			i := index[q.PromptTemplateID]
			templates[i].Questions = append(templates[i].Questions, q)
		}
	}

	return c.JSON(fiber.Map{
		"templates":  templates,
		"pagination": utils.NewPagination(limit, offset, total),
	})
}

// GetTemplate is a point read including ordered questions.
func GetTemplate(c *fiber.Ctx) error {
	id := c.Params("id")

	var template models.PromptTemplate
	err := database.Database.Db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		First(&template, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("Template not found")
		}
		return apperrors.NewInternal(err)
	}

	return c.JSON(template)
}

// CreateTemplate inserts a template and its ordered questions. Names are
// unique.
func CreateTemplate(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTemplate").(*templateValidator.CreateTemplateRequest)
	if !ok {
		return apperrors.NewValidation("Invalid request data")
	}

	name := strings.TrimSpace(reqData.Name)

	visibility := "public"
	if reqData.Visibility != nil {
		visibility = *reqData.Visibility
	}

	template := models.PromptTemplate{
		Name:        name,
		Description: reqData.Description,
		Type:        reqData.Type,
		Visibility:  visibility,
	}
	for _, q := range reqData.Questions {
		template.Questions = append(template.Questions, models.GuidedPromptQuestion{
			QuestionText: q.QuestionText,
			OrderIndex:   q.OrderIndex,
		})
	}

	// Uniqueness rides on the name index; concurrent creates of the same
	// name both reach here and the index decides the loser.
	if err := database.Database.Db.Create(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewValidation("Template name already exists")
		}
		return apperrors.NewInternal(err)
	}

	return c.Status(fiber.StatusCreated).JSON(template)
}

// DeleteTemplate removes a template; its questions cascade.
func DeleteTemplate(c *fiber.Ctx) error {
	id := c.Params("id")

	result := database.Database.Db.Delete(&models.PromptTemplate{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.NewInternal(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFound("Template not found")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
