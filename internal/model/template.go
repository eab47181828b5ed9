package model

import "encoding/json"

// Template is a supervisor-owned test blueprint. Creating and deleting
// templates feed the lifetime template counters.
//
// swagger:model Template
type Template struct {
	BaseModel
	Title       string          `gorm:"size:255;not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	CreatedByID uint            `gorm:"index;not null" json:"createdBy"`
	IsActive    bool            `gorm:"default:true" json:"isActive"`
	Blueprint   json.RawMessage `gorm:"type:json" json:"blueprint,omitempty"`
}

func (Template) TableName() string {
	return "templates"
}
