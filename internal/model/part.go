package model

// swagger:model Part
type Part struct {
	BaseModel
	TestID      uint   `gorm:"index:idx_parts_test_module;not null" json:"testId"`
	Module      Module `gorm:"index:idx_parts_test_module;size:20;not null" json:"module"`
	Number      int    `gorm:"not null" json:"number"` // 1-based, contiguous within (test, module)
	Description string `gorm:"type:text" json:"description"`

	TotalQuestions int `gorm:"default:0" json:"totalQuestions"`

	CreatedByID uint `gorm:"not null" json:"createdBy"`

	Sections []Section `gorm:"foreignKey:PartID" json:"sections,omitempty"`
}

func (Part) TableName() string {
	return "parts"
}
