package scoring

import (
	"testing"

	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"
)

func writingTask(score float64) model.WritingTaskCriteria {
	return model.WritingTaskCriteria{
		TaskScore:                   score,
		LexicalResource:             score,
		CoherenceAndCohesion:        score,
		GrammaticalRangeAndAccuracy: score,
	}
}

func TestWritingBand(t *testing.T) {
	tests := []struct {
		name         string
		task1, task2 model.WritingTaskCriteria
		want         float64
	}{
		{"flat six and flat seven", writingTask(6), writingTask(7), 6.5},
		{"identical tasks", writingTask(7), writingTask(7), 7},
		{
			"mixed criteria round up",
			model.WritingTaskCriteria{TaskScore: 6, LexicalResource: 7, CoherenceAndCohesion: 6, GrammaticalRangeAndAccuracy: 7},
			writingTask(7),
			7,
		},
		{"zeros", writingTask(0), writingTask(0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WritingBand(tt.task1, tt.task2); got != tt.want {
				t.Errorf("WritingBand = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpeakingBand(t *testing.T) {
	tests := []struct {
		name     string
		criteria model.SpeakingCriteria
		want     float64
	}{
		{
			"flat seven",
			model.SpeakingCriteria{Pronunciation: 7, LexicalResource: 7, FluencyAndCoherence: 7, GrammaticalRangeAndAccuracy: 7},
			7,
		},
		{
			"mixed rounds to half",
			model.SpeakingCriteria{Pronunciation: 6, LexicalResource: 6, FluencyAndCoherence: 7, GrammaticalRangeAndAccuracy: 7},
			6.5,
		},
		{
			"quarter rounds up",
			model.SpeakingCriteria{Pronunciation: 6, LexicalResource: 6, FluencyAndCoherence: 6, GrammaticalRangeAndAccuracy: 7},
			6.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpeakingBand(tt.criteria); got != tt.want {
				t.Errorf("SpeakingBand = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverallBand(t *testing.T) {
	tests := []struct {
		name       string
		r, w, s, l float64
		want       float64
	}{
		{"all sevens", 7, 7, 7, 7, 7},
		{"mean lands on eighth", 7, 6.5, 6.5, 6.5, 6.5},
		{"mean rounds up", 7, 7, 6.5, 6.5, 7},
		{"listening drags down", 6, 6, 6, 5, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OverallBand(tt.r, tt.w, tt.s, tt.l)
			if got != tt.want {
				t.Errorf("OverallBand(%v,%v,%v,%v) = %v, want %v", tt.r, tt.w, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestValidBand(t *testing.T) {
	valid := []float64{0, 0.5, 4, 6.5, 9}
	for _, b := range valid {
		if !ValidBand(b) {
			t.Errorf("ValidBand(%v) = false, want true", b)
		}
	}
	invalid := []float64{-0.5, 9.5, 10}
	for _, b := range invalid {
		if ValidBand(b) {
			t.Errorf("ValidBand(%v) = true, want false", b)
		}
	}
}
