package model

// Audio is a listening-module recording attached to a test.
//
// swagger:model Audio
type Audio struct {
	BaseModel
	TestID      uint    `gorm:"index;not null" json:"testId"`
	Title       string  `gorm:"size:255" json:"title"`
	ObjectKey   string  `gorm:"size:255;not null" json:"objectKey"`
	URL         string  `gorm:"size:512" json:"url"`
	Duration    float64 `gorm:"default:0" json:"duration"` // seconds
	Size        int64   `gorm:"default:0" json:"size"`
	CreatedByID uint    `gorm:"not null" json:"createdBy"`
}

func (Audio) TableName() string {
	return "audios"
}
