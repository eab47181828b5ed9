package model

import "time"

type UserRole string

const (
	Student    UserRole = "student"
	Teacher    UserRole = "teacher"
	Supervisor UserRole = "supervisor"
)

// swagger:model User
type User struct {
	BaseModel
	FirstName    string   `gorm:"size:100;not null" json:"firstName"`
	LastName     string   `gorm:"size:100" json:"lastName"`
	Phone        string   `gorm:"size:20;unique;not null" json:"phone"`
	Password     string   `gorm:"size:100;not null" json:"-"`
	Role         UserRole `gorm:"type:enum('student','teacher','supervisor');default:'student'" json:"role"`
	SupervisorID *uint    `gorm:"index" json:"supervisorId,omitempty"`
	Avatar       string   `gorm:"size:255" json:"avatar"`
	IsActive     bool     `gorm:"default:true" json:"isActive"`
	IsVerified   bool     `gorm:"default:false" json:"isVerified"`
	LastSeen     time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
