package scoring

import (
	"encoding/json"
	"testing"

	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"
)

func TestCountQuestions(t *testing.T) {
	tests := []struct {
		name    string
		typ     model.SectionType
		content string
		want    int
	}{
		{
			name:    "text counts input markers",
			typ:     model.SectionText,
			content: `{"text":"The capital is <input type=\"text\" data-name=\"answer-input\"> founded in <input type=\"text\" data-name=\"answer-input\">.","answers":[{"text":"Paris"},{"text":"1990"}]}`,
			want:    2,
		},
		{
			name:    "text with no blanks",
			typ:     model.SectionText,
			content: `{"text":"plain passage","answers":[]}`,
			want:    0,
		},
		{
			name:    "draggable counts dropzones",
			typ:     model.SectionTextDraggable,
			content: `{"text":"<span data-name=\"dropzone\"></span> and <span data-name=\"dropzone\"></span>","options":{"data":[{"option":"a"},{"option":"b"}]}}`,
			want:    2,
		},
		{
			name:    "flowchart counts dropzones across items",
			typ:     model.SectionFlowchart,
			content: `{"items":{"data":[{"text":"<span data-name=\"dropzone\"></span>"},{"text":"no blank"},{"text":"<span data-name=\"dropzone\"></span>"}]},"options":{"data":[]}}`,
			want:    2,
		},
		{
			name:    "radio group counts groups",
			typ:     model.SectionRadioGroup,
			content: `{"groups":[{"question":"q1","answers":[{"text":"a"}],"correctAnswerIndex":0},{"question":"q2","answers":[{"text":"b"}],"correctAnswerIndex":0}]}`,
			want:    2,
		},
		{
			name:    "checkbox group sums maxSelected",
			typ:     model.SectionCheckboxGroup,
			content: `{"groups":[{"maxSelected":2,"answers":[],"correctAnswersIndex":[]},{"maxSelected":3,"answers":[],"correctAnswersIndex":[]}]}`,
			want:    5,
		},
		{
			name:    "grid matching counts grid questions",
			typ:     model.SectionGridMatching,
			content: `{"grid":{"questions":[{"question":"q1","answer":"a"},{"question":"q2","answer":"b"},{"question":"q3","answer":"c"}]}}`,
			want:    3,
		},
		{
			name:    "malformed content contributes zero",
			typ:     model.SectionRadioGroup,
			content: `{"groups":`,
			want:    0,
		},
		{
			name:    "empty content contributes zero",
			typ:     model.SectionText,
			content: ``,
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountQuestions(tt.typ, json.RawMessage(tt.content))
			if got != tt.want {
				t.Errorf("CountQuestions(%s) = %d, want %d", tt.typ, got, tt.want)
			}
		})
	}
}

func TestDecodeContentUnknownType(t *testing.T) {
	if _, err := DecodeContent(model.SectionType("essay"), nil); err == nil {
		t.Error("expected error for unknown section type")
	}
}
