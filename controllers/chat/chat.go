package controllers

import (
	"github.com/gofiber/fiber/v2"

	"tcb/apperrors"
	"tcb/database"
	"tcb/models"
	"tcb/utils"
	chatValidator "tcb/validators/chat"
)

type sessionRow struct {
	models.ChatSession
	TotalCount int64 `json:"-" gorm:"column:total_count"`
}

// ListSessions returns one page of a textbook's chat sessions, newest first.
func ListSessions(c *fiber.Ctx) error {
	textbookID := c.Params("id")
	limit, offset := utils.ParsePagination(c)

	var rows []sessionRow
	err := database.Database.Db.Model(&models.ChatSession{}).
		Select("chat_sessions.*, COUNT(*) OVER() AS total_count").
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

	sessions := make([]models.ChatSession, len(rows))
	for i, row := range rows {
		sessions[i] = row.ChatSession
	}

	return c.JSON(fiber.Map{
		"sessions":   sessions,
		"pagination": utils.NewPagination(limit, offset, total),
	})
}

// CreateSession anchors a new conversation and pings the text-generation
// backend so the first question lands on a warm environment. The ping is
// best effort and never affects this response.
func CreateSession(c *fiber.Ctx) error {
	textbookID := c.Params("id")

	reqData, ok := c.Locals("validatedSession").(*chatValidator.CreateSessionRequest)
	if !ok {
		return apperrors.NewValidation("Invalid request data")
	}

	session := models.ChatSession{
		TextbookID:    textbookID,
		Name:          reqData.Name,
		UserSessionID: reqData.UserSessionID,
	}

	if err := database.Database.Db.Create(&session).Error; err != nil {
		return apperrors.NewInternal(err)
	}

	utils.WarmupGenerationBackend(textbookID)

	return c.Status(fiber.StatusCreated).JSON(session)
}

// DeleteSession removes the session anchor.
func DeleteSession(c *fiber.Ctx) error {
	id := c.Params("id")

	result := database.Database.Db.Delete(&models.ChatSession{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.NewInternal(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFound("Session not found")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
