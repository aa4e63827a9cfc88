package models

// MediaItem is a figure, image or video extracted from a textbook during
// ingestion.
type MediaItem struct {
	Base
	TextbookID string    `json:"textbook_id" gorm:"type:uuid;index;not null"`
	Textbook   *Textbook `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Type       string    `json:"type"` // image, video
	URL        string    `json:"url"`
	Caption    *string   `json:"caption"`
}
