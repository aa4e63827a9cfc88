package models

import "gorm.io/datatypes"

// SharedPrompt is a user- or session-authored prompt published under a
// textbook. The owner is identified by either a browser session id or an
// authenticated user id; both are optional.
type SharedPrompt struct {
	Base
	Title          *string        `json:"title"`
	PromptText     string         `json:"prompt_text" gorm:"not null"`
	OwnerSessionID *string        `json:"owner_session_id"`
	OwnerUserID    *string        `json:"owner_user_id"`
	TextbookID     string         `json:"textbook_id" gorm:"type:uuid;index;not null"`
	Textbook       *Textbook      `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Visibility     string         `json:"visibility" gorm:"default:'public'"`
	Tags           datatypes.JSON `json:"tags"`
	Metadata       datatypes.JSON `json:"metadata"`
}

func (SharedPrompt) TableName() string { return "shared_user_prompts" }
