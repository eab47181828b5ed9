package model

import "encoding/json"

// SectionType discriminates the section content payload.
type SectionType string

const (
	SectionText          SectionType = "text"
	SectionTextDraggable SectionType = "text-draggable"
	SectionFlowchart     SectionType = "flowchart"
	SectionRadioGroup    SectionType = "radio-group"
	SectionCheckboxGroup SectionType = "checkbox-group"
	SectionGridMatching  SectionType = "grid-matching"
)

// Section is a tagged variant: Type selects which payload shape Content
// holds. QuestionsCount is derived from (Type, Content) on every write and
// is never set independently.
//
// swagger:model Section
type Section struct {
	BaseModel
	PartID uint   `gorm:"index;not null" json:"partId"`
	TestID uint   `gorm:"index;not null" json:"testId"`
	Module Module `gorm:"size:20;not null" json:"module"`

	Type        SectionType `gorm:"size:30;not null" json:"type"`
	Title       string      `gorm:"size:255;not null" json:"title"`
	Description string      `gorm:"type:text" json:"description"`

	Content json.RawMessage `gorm:"type:json" json:"content"`

	QuestionsCount int `gorm:"default:0" json:"questionsCount"`

	CreatedByID  uint  `gorm:"not null" json:"createdBy"`
	SupervisorID *uint `json:"supervisorId,omitempty"`
}

func (Section) TableName() string {
	return "sections"
}
