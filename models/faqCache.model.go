package models

import "time"

// FaqCacheEntry is a stored question/answer pair scoped to a textbook.
// UsageCount tracks how often the cached answer was served.
type FaqCacheEntry struct {
	Base
	TextbookID string     `json:"textbook_id" gorm:"type:uuid;index;not null"`
	Textbook   *Textbook  `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Question   string     `json:"question" gorm:"not null"`
	Answer     string     `json:"answer"`
	UsageCount int        `json:"usage_count" gorm:"default:1"`
	LastUsedAt *time.Time `json:"last_used_at"`
}

func (FaqCacheEntry) TableName() string { return "faq_cache" }
