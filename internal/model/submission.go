package model

import (
	"encoding/json"
	"time"
)

// ModuleAnswers holds the candidate's raw answers per module as JSON maps
// keyed by question number: values are free text or arrays for
// multi-select questions.
type ModuleAnswers struct {
	Reading   json.RawMessage `gorm:"type:json" json:"reading"`
	Writing   json.RawMessage `gorm:"type:json" json:"writing"`
	Listening json.RawMessage `gorm:"type:json" json:"listening"`
}

// Submission is one candidate attempt against one test via one link.
// IsScored is a single-writer latch: it transitions false to true exactly
// once, atomically with Result creation.
//
// swagger:model Submission
type Submission struct {
	BaseModel
	TestID       uint  `gorm:"index;not null" json:"testId"`
	LinkID       uint  `gorm:"index;not null" json:"linkId"`
	StudentID    uint  `gorm:"index;not null" json:"studentId"`
	TeacherID    uint  `gorm:"index;not null" json:"teacherId"`
	SupervisorID *uint `gorm:"index" json:"supervisorId,omitempty"`

	Answers ModuleAnswers `gorm:"embedded;embeddedPrefix:answers_" json:"answers"`

	StartedAt  time.Time  `json:"startedAt"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`

	IsScored bool       `gorm:"default:false;index" json:"isScored"`
	ScoredAt *time.Time `json:"scoredAt,omitempty"`

	ResultID *uint `json:"resultId,omitempty"`
}

func (Submission) TableName() string {
	return "submissions"
}
