package models

import "gorm.io/datatypes"

// DocumentChunk is a retrieval unit produced by the ingestion pipeline.
// Section and media references are optional; chunks may come straight from
// the raw document body.
type DocumentChunk struct {
	Base
	TextbookID  string         `json:"textbook_id" gorm:"type:uuid;index;not null"`
	Textbook    *Textbook      `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	SectionID   *string        `json:"section_id" gorm:"type:uuid"`
	Section     *Section       `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	MediaItemID *string        `json:"media_item_id" gorm:"type:uuid"`
	MediaItem   *MediaItem     `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Content     string         `json:"content"`
	Metadata    datatypes.JSON `json:"metadata"`
}
