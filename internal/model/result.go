package model

// ModuleBands is one full set of band scores, used both for the official
// grader-facing result and the engine's shadow computation.
type ModuleBands struct {
	Overall   float64 `gorm:"default:0" json:"overall"`
	Reading   float64 `gorm:"default:0" json:"reading"`
	Writing   float64 `gorm:"default:0" json:"writing"`
	Speaking  float64 `gorm:"default:0" json:"speaking"`
	Listening float64 `gorm:"default:0" json:"listening"`
}

// WritingTaskCriteria is the rubric breakdown of one writing task.
type WritingTaskCriteria struct {
	TaskScore                   float64 `gorm:"default:0" json:"taskScore"` // task achievement (task 1) or task response (task 2)
	LexicalResource             float64 `gorm:"default:0" json:"lexicalResource"`
	CoherenceAndCohesion        float64 `gorm:"default:0" json:"coherenceAndCohesion"`
	GrammaticalRangeAndAccuracy float64 `gorm:"default:0" json:"grammaticalRangeAndAccuracy"`
}

// SpeakingCriteria is the rubric breakdown of the speaking interview.
type SpeakingCriteria struct {
	Pronunciation               float64 `gorm:"default:0" json:"pronunciation"`
	LexicalResource             float64 `gorm:"default:0" json:"lexicalResource"`
	FluencyAndCoherence         float64 `gorm:"default:0" json:"fluencyAndCoherence"`
	GrammaticalRangeAndAccuracy float64 `gorm:"default:0" json:"grammaticalRangeAndAccuracy"`
}

// Result is the graded outcome of exactly one submission. The top-level
// bands are grader-facing (teacher-entered reading/listening); Server keeps
// the engine's fully automated computation for audit.
//
// swagger:model Result
type Result struct {
	BaseModel
	SubmissionID uint  `gorm:"uniqueIndex;not null" json:"submissionId"`
	TestID       uint  `gorm:"index;not null" json:"testId"`
	LinkID       uint  `gorm:"index;not null" json:"linkId"`
	StudentID    uint  `gorm:"index;not null" json:"studentId"`
	TeacherID    uint  `gorm:"index;not null" json:"teacherId"`
	SupervisorID *uint `gorm:"index" json:"supervisorId,omitempty"`
	CreatedByID  uint  `gorm:"not null" json:"createdBy"`

	ModuleBands `gorm:"embedded" json:"bands"`

	Server ModuleBands `gorm:"embedded;embeddedPrefix:server_" json:"server"`

	WritingTask1     WritingTaskCriteria `gorm:"embedded;embeddedPrefix:writing_task1_" json:"writingTask1"`
	WritingTask2     WritingTaskCriteria `gorm:"embedded;embeddedPrefix:writing_task2_" json:"writingTask2"`
	SpeakingCriteria SpeakingCriteria    `gorm:"embedded;embeddedPrefix:speaking_" json:"speakingCriteria"`
}

func (Result) TableName() string {
	return "results"
}
