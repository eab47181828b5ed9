package model

import "time"

// Counter groups shared by the daily and lifetime aggregates. These rows
// are mutated only by the statistics pipeline; counters track the
// underlying events in expectation, not as a ledger of record.

type TestStats struct {
	Created int `gorm:"default:0" json:"created"`
	Active  int `gorm:"default:0" json:"active"`
	Deleted int `gorm:"default:0" json:"deleted"`
}

type SubmissionStats struct {
	Created  int `gorm:"default:0" json:"created"`
	Graded   int `gorm:"default:0" json:"graded"`
	Ungraded int `gorm:"default:0" json:"ungraded"`
}

type ResultStats struct {
	Created      int     `gorm:"default:0" json:"created"`
	Active       int     `gorm:"default:0" json:"active"`
	AvgOverall   float64 `gorm:"default:0" json:"avgOverall"`
	AvgReading   float64 `gorm:"default:0" json:"avgReading"`
	AvgWriting   float64 `gorm:"default:0" json:"avgWriting"`
	AvgSpeaking  float64 `gorm:"default:0" json:"avgSpeaking"`
	AvgListening float64 `gorm:"default:0" json:"avgListening"`
}

type LinkStats struct {
	Created     int `gorm:"default:0" json:"created"`
	Active      int `gorm:"default:0" json:"active"`
	TotalVisits int `gorm:"default:0" json:"totalVisits"`
	TotalUsages int `gorm:"default:0" json:"totalUsages"`
}

type TemplateStats struct {
	Created int `gorm:"default:0" json:"created"`
	Active  int `gorm:"default:0" json:"active"`
	Deleted int `gorm:"default:0" json:"deleted"`
}

type StatMeta struct {
	LastUpdated time.Time `json:"lastUpdated"`
	Backfilled  bool      `gorm:"default:false" json:"backfilled"`
}

// Stat is the per-user, per-calendar-day bucket (date at UTC midnight).
//
// swagger:model Stat
type Stat struct {
	BaseModel
	UserID       uint      `gorm:"uniqueIndex:idx_stats_user_date;not null" json:"userId"`
	Date         time.Time `gorm:"uniqueIndex:idx_stats_user_date;not null" json:"date"`
	Role         UserRole  `gorm:"size:20;not null" json:"role"`
	SupervisorID *uint     `gorm:"index" json:"supervisorId,omitempty"`

	Tests       TestStats       `gorm:"embedded;embeddedPrefix:tests_" json:"tests"`
	Submissions SubmissionStats `gorm:"embedded;embeddedPrefix:submissions_" json:"submissions"`
	Results     ResultStats     `gorm:"embedded;embeddedPrefix:results_" json:"results"`
	Links       LinkStats       `gorm:"embedded;embeddedPrefix:links_" json:"links"`

	Meta StatMeta `gorm:"embedded;embeddedPrefix:meta_" json:"meta"`
}

func (Stat) TableName() string {
	return "stats"
}

// UserStat is the lifetime cumulative aggregate per user.
//
// swagger:model UserStat
type UserStat struct {
	BaseModel
	UserID       uint     `gorm:"uniqueIndex;not null" json:"userId"`
	Role         UserRole `gorm:"size:20;not null" json:"role"`
	SupervisorID *uint    `gorm:"index" json:"supervisorId,omitempty"`

	Tests       TestStats       `gorm:"embedded;embeddedPrefix:tests_" json:"tests"`
	Submissions SubmissionStats `gorm:"embedded;embeddedPrefix:submissions_" json:"submissions"`
	Results     ResultStats     `gorm:"embedded;embeddedPrefix:results_" json:"results"`
	Links       LinkStats       `gorm:"embedded;embeddedPrefix:links_" json:"links"`
	Templates   TemplateStats   `gorm:"embedded;embeddedPrefix:templates_" json:"templates"`

	Meta StatMeta `gorm:"embedded;embeddedPrefix:meta_" json:"meta"`
}

func (UserStat) TableName() string {
	return "user_stats"
}
