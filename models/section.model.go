package models

// Section is one node of a textbook's table of contents. Sections nest via
// ParentSectionID; deleting a parent cascades to its subtree.
type Section struct {
	Base
	TextbookID      string    `json:"textbook_id" gorm:"type:uuid;index;not null"`
	Textbook        *Textbook `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ParentSectionID *string   `json:"parent_section_id" gorm:"type:uuid"`
	Parent          *Section  `json:"-" gorm:"foreignKey:ParentSectionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Title           string    `json:"title"`
	Number          *string   `json:"number"`
	OrderIndex      int       `json:"order_index" gorm:"default:0"`
}
