package models

// ChatSession groups one user's conversation about a textbook. Message
// history lives with the text-generation backend; this row is the anchor the
// frontend lists and deletes.
type ChatSession struct {
	Base
	TextbookID    string    `json:"textbook_id" gorm:"type:uuid;index;not null"`
	Textbook      *Textbook `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Name          string    `json:"name" gorm:"default:'New Chat'"`
	UserSessionID *string   `json:"user_session_id"`
}
