package controllers

import (
	"github.com/gofiber/fiber/v2"

	"tcb/apperrors"
	"tcb/database"
	"tcb/models"
)

type statusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// DashboardStats aggregates the counts the admin dashboard charts: content
// volume, community activity, and ingestion health grouped by job status.
func DashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var textbooks, prompts, sessions, faqs int64
	for _, count := range []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Textbook{}, &textbooks},
		{&models.SharedPrompt{}, &prompts},
		{&models.ChatSession{}, &sessions},
		{&models.FaqCacheEntry{}, &faqs},
	} {
		if err := db.Model(count.model).Count(count.dest).Error; err != nil {
			return apperrors.NewInternal(err)
		}
	}

	var jobs []statusCount
	err := db.Model(&models.Job{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&jobs).Error
	if err != nil {
		return apperrors.NewInternal(err)
	}

	return c.JSON(fiber.Map{
		"textbooks":      textbooks,
		"shared_prompts": prompts,
		"chat_sessions":  sessions,
		"faq_entries":    faqs,
		"jobs_by_status": jobs,
	})
}
