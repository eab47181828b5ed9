package model

// Link is a shareable invitation to take a test. Usage is refused once
// UsedCount reaches MaxUses; visits are counted separately for reporting.
//
// swagger:model Link
type Link struct {
	BaseModel
	Token string `gorm:"size:36;uniqueIndex;not null" json:"token"`
	Title string `gorm:"size:255" json:"title"`

	TestID       uint  `gorm:"index;not null" json:"testId"`
	CreatedByID  uint  `gorm:"index;not null" json:"createdBy"`
	SupervisorID *uint `gorm:"index" json:"supervisorId,omitempty"`

	MaxUses     int `gorm:"default:1" json:"maxUses"`
	UsedCount   int `gorm:"default:0" json:"usedCount"`
	VisitsCount int `gorm:"default:0" json:"visitsCount"`
}

func (Link) TableName() string {
	return "links"
}

// Available reports whether the link can still be used.
func (l *Link) Available() bool {
	return l.UsedCount < l.MaxUses
}
