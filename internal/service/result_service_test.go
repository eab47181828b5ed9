package service

import (
	"testing"

	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/util"
)

func TestGradeInputValidate(t *testing.T) {
	valid := GradeInput{
		WritingTask1: model.WritingTaskCriteria{TaskScore: 6, LexicalResource: 6, CoherenceAndCohesion: 6, GrammaticalRangeAndAccuracy: 6},
		WritingTask2: model.WritingTaskCriteria{TaskScore: 7, LexicalResource: 7, CoherenceAndCohesion: 7, GrammaticalRangeAndAccuracy: 7},
		Speaking:     model.SpeakingCriteria{Pronunciation: 6.5, LexicalResource: 6.5, FluencyAndCoherence: 6.5, GrammaticalRangeAndAccuracy: 6.5},
	}
	if err := valid.validate(); err != nil {
		t.Errorf("valid input rejected: %v", err)
	}

	tooHigh := valid
	tooHigh.Speaking.Pronunciation = 9.5
	if err := tooHigh.validate(); err != util.ErrInvalidScores {
		t.Errorf("band above 9 accepted: %v", err)
	}

	negative := valid
	negative.WritingTask1.TaskScore = -1
	if err := negative.validate(); err != util.ErrInvalidScores {
		t.Errorf("negative band accepted: %v", err)
	}

	badOverride := valid
	override := 10.0
	badOverride.ReadingOverride = &override
	if err := badOverride.validate(); err != util.ErrInvalidScores {
		t.Errorf("out-of-scale override accepted: %v", err)
	}

	zeros := GradeInput{}
	if err := zeros.validate(); err != nil {
		t.Errorf("all-zero rubric rejected: %v", err)
	}
}

func TestGradeCreditUserID(t *testing.T) {
	teacher := &model.User{BaseModel: model.BaseModel{ID: 7}, Role: model.Teacher}
	supervisor := &model.User{BaseModel: model.BaseModel{ID: 3}, Role: model.Supervisor}

	tests := []struct {
		name      string
		grader    *model.User
		teacherID uint
		want      uint
	}{
		{"teacher grades own submission", teacher, 7, 7},
		{"supervisor grades for a teacher", supervisor, 7, 7},
		{"supervisor grades own submission", supervisor, 3, 3},
		{"submission without teacher", supervisor, 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gradeCreditUserID(tt.grader, tt.teacherID); got != tt.want {
				t.Errorf("gradeCreditUserID = %d, want %d", got, tt.want)
			}
		})
	}
}
