package scoring

import (
	"encoding/json"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"
)

func TestSanitizeContentStripsAnswers(t *testing.T) {
	tests := []struct {
		name    string
		typ     model.SectionType
		content string
		secrets []string
	}{
		{
			name:    "text answers removed",
			typ:     model.SectionText,
			content: `{"text":"capital: <input type=\"text\" data-name=\"answer-input\">","answers":[{"text":"Paris"}]}`,
			secrets: []string{"answers", "Paris"},
		},
		{
			name:    "radio correct index removed",
			typ:     model.SectionRadioGroup,
			content: `{"groups":[{"question":"Pick","answers":[{"text":"a"},{"text":"b"}],"correctAnswerIndex":1}]}`,
			secrets: []string{"correctAnswerIndex"},
		},
		{
			name:    "checkbox correct indices removed",
			typ:     model.SectionCheckboxGroup,
			content: `{"groups":[{"question":"Pick two","answers":[{"text":"a"},{"text":"b"},{"text":"c"}],"correctAnswersIndex":[0,2],"maxSelected":2}]}`,
			secrets: []string{"correctAnswersIndex"},
		},
		{
			name:    "grid answers removed",
			typ:     model.SectionGridMatching,
			content: `{"grid":{"questions":[{"question":"Statement one","answer":"true"}]}}`,
			secrets: []string{"answer\"", "true"},
		},
	}

	rng := rand.New(rand.NewSource(1))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := string(SanitizeContent(tt.typ, json.RawMessage(tt.content), rng))
			for _, secret := range tt.secrets {
				if strings.Contains(out, secret) {
					t.Errorf("sanitized payload still contains %q: %s", secret, out)
				}
			}
		})
	}
}

func TestSanitizeContentKeepsQuestionMaterial(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	out := string(SanitizeContent(model.SectionCheckboxGroup,
		json.RawMessage(`{"groups":[{"question":"Pick two","answers":[{"text":"a"}],"correctAnswersIndex":[0],"maxSelected":2}]}`), rng))
	for _, keep := range []string{"Pick two", "maxSelected"} {
		if !strings.Contains(out, keep) {
			t.Errorf("sanitized payload lost %q: %s", keep, out)
		}
	}
}

func TestSanitizeContentShufflesBankNotMembership(t *testing.T) {
	content := `{"text":"<span data-name=\"dropzone\"></span>","options":{"data":[{"option":"alpha"},{"option":"beta"},{"option":"gamma"},{"option":"delta"}]}}`
	rng := rand.New(rand.NewSource(7))

	out := SanitizeContent(model.SectionTextDraggable, json.RawMessage(content), rng)
	var decoded DraggableContent
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatal(err)
	}

	got := make([]string, len(decoded.Options.Data))
	for i, opt := range decoded.Options.Data {
		got[i] = opt.Option
	}
	sort.Strings(got)
	want := []string{"alpha", "beta", "delta", "gamma"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bank membership changed: %v", got)
		}
	}
}

func TestSanitizeContentMalformed(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	out := string(SanitizeContent(model.SectionText, json.RawMessage(`{"answers":`), rng))
	if out != "{}" {
		t.Errorf("malformed payload sanitized to %q, want {}", out)
	}
}
