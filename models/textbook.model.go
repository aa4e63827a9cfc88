package models

import "gorm.io/datatypes"

// Textbook is the root content entity. Every dependent row (sections, media,
// chunks, chat sessions, FAQ entries, shared prompts, jobs) cascades on
// delete at the database level.
type Textbook struct {
	Base
	Title     string         `json:"title" gorm:"not null"`
	Authors   datatypes.JSON `json:"authors"` // ordered list
	License   *string        `json:"license"`
	SourceURL *string        `json:"source_url"`
	Publisher *string        `json:"publisher"`
	Year      *int           `json:"year"`
	Summary   *string        `json:"summary"`
	Language  *string        `json:"language"`
	Level     *string        `json:"level"`
	CreatedBy *string        `json:"created_by"`
	Metadata  datatypes.JSON `json:"metadata"`
}
