package models

// PromptTemplate is a reusable prompt scaffold. Guided templates own an
// ordered list of elicitation questions. Names are unique; the seed
// migration relies on that for idempotency.
type PromptTemplate struct {
	Base
	Name        string                 `json:"name" gorm:"uniqueIndex;not null"`
	Description string                 `json:"description"`
	Type        string                 `json:"type"` // RAG, guided
	Visibility  string                 `json:"visibility" gorm:"default:'public'"`
	Questions   []GuidedPromptQuestion `json:"questions" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// GuidedPromptQuestion is one step of a guided template, ordered by
// OrderIndex.
type GuidedPromptQuestion struct {
	Base
	PromptTemplateID string `json:"prompt_template_id" gorm:"type:uuid;index;not null"`
	QuestionText     string `json:"question_text"`
	OrderIndex       int    `json:"order_index" gorm:"default:0"`
}
