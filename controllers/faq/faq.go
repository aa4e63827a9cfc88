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
)

type faqRow struct {
	models.FaqCacheEntry
	TotalCount int64 `json:"-" gorm:"column:total_count"`
}

// ListFaqs returns a textbook's cached question/answer pairs, most used
// first.
func ListFaqs(c *fiber.Ctx) error {
	textbookID := c.Params("id")
	limit, offset := utils.ParsePagination(c)

	var rows []faqRow
	err := database.Database.Db.Model(&models.FaqCacheEntry{}).
		Select("faq_cache.*, COUNT(*) OVER() AS total_count").
		Where("textbook_id = ?", textbookID).
		Order("usage_count DESC, created_at DESC").
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

	faqs := make([]models.FaqCacheEntry, len(rows))
	for i, row := range rows {
		faqs[i] = row.FaqCacheEntry
	}

	return c.JSON(fiber.Map{
		"faqs":       faqs,
		"pagination": utils.NewPagination(limit, offset, total),
	})
}

// RecordFaqHit bumps an entry's usage counter when its cached answer was
// served, and returns the refreshed entry.
func RecordFaqHit(c *fiber.Ctx) error {
	textbookID := c.Params("id")
	faqID := c.Params("faq_id")

	now := time.Now()
	result := database.Database.Db.Model(&models.FaqCacheEntry{}).
		Where("id = ? AND textbook_id = ?", faqID, textbookID).
		Updates(map[string]interface{}{
			"usage_count":  gorm.Expr("usage_count + 1"),
			"last_used_at": now,
		})
	if result.Error != nil {
		return apperrors.NewInternal(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFound("FAQ entry not found")
	}

	var entry models.FaqCacheEntry
	if err := database.Database.Db.First(&entry, "id = ?", faqID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("FAQ entry not found")
		}
		return apperrors.NewInternal(err)
	}

	return c.JSON(entry)
}
