package model

import "time"

// Module identifies one of the four exam modules.
type Module string

const (
	ModuleReading   Module = "reading"
	ModuleWriting   Module = "writing"
	ModuleListening Module = "listening"
	ModuleSpeaking  Module = "speaking"
)

// AuthoredModules are the modules that carry authored content. Speaking is
// examiner-led and has no content tree.
var AuthoredModules = []Module{ModuleReading, ModuleWriting, ModuleListening}

// GradableModules are the modules graded automatically from an answer key.
var GradableModules = []Module{ModuleReading, ModuleListening}

// TestModule is the per-module sub-document of a test.
type TestModule struct {
	PartsCount int `gorm:"default:0" json:"partsCount"`
	Duration   int `gorm:"default:60" json:"duration"` // minutes
}

// swagger:model Test
type Test struct {
	BaseModel
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"size:255" json:"image,omitempty"`

	CreatedByID  uint  `gorm:"index;not null" json:"createdBy"`
	SupervisorID *uint `gorm:"index" json:"supervisorId,omitempty"`

	IsDeleted   bool       `gorm:"default:false;index" json:"isDeleted"`
	DeletedTime *time.Time `json:"deletedAt,omitempty"`

	TotalParts       int `gorm:"default:0" json:"totalParts"`
	TotalSubmissions int `gorm:"default:0" json:"totalSubmissions"`
	CopyCount        int `gorm:"default:0" json:"copyCount"`
	OriginalTestID   *uint `json:"originalTest,omitempty"`

	Reading   TestModule `gorm:"embedded;embeddedPrefix:reading_" json:"reading"`
	Writing   TestModule `gorm:"embedded;embeddedPrefix:writing_" json:"writing"`
	Listening TestModule `gorm:"embedded;embeddedPrefix:listening_" json:"listening"`

	Parts  []Part  `gorm:"foreignKey:TestID" json:"-"`
	Audios []Audio `gorm:"foreignKey:TestID" json:"audios,omitempty"`
}

func (Test) TableName() string {
	return "tests"
}

// ModuleOf returns the sub-document for an authored module.
func (t *Test) ModuleOf(m Module) *TestModule {
	switch m {
	case ModuleReading:
		return &t.Reading
	case ModuleWriting:
		return &t.Writing
	case ModuleListening:
		return &t.Listening
	}
	return nil
}

// RecalculateTotalParts restores the totalParts invariant from the
// per-module counters.
func (t *Test) RecalculateTotalParts() {
	t.TotalParts = t.Reading.PartsCount + t.Writing.PartsCount + t.Listening.PartsCount
}
