package scoring

import (
	"encoding/json"
	"testing"
)

func submitted(t *testing.T, raw string) SubmittedAnswers {
	t.Helper()
	answers, err := ParseSubmitted(json.RawMessage(raw))
	if err != nil {
		t.Fatalf("ParseSubmitted(%s): %v", raw, err)
	}
	return answers
}

func TestCountCorrect(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		key       AnswerKey
		want      int
	}{
		{
			name:      "two text blanks all correct",
			submitted: `{"1":"Paris","2":"1990"}`,
			key:       AnswerKey{"1": "paris", "2": "1990"},
			want:      2,
		},
		{
			name:      "case and whitespace ignored",
			submitted: `{"1":"  DOGS "}`,
			key:       AnswerKey{"1": "dogs"},
			want:      1,
		},
		{
			name:      "wrong scalar",
			submitted: `{"1":"cats"}`,
			key:       AnswerKey{"1": "dogs"},
			want:      0,
		},
		{
			name:      "missing key counts as incorrect",
			submitted: `{"1":"paris"}`,
			key:       AnswerKey{"1": "paris", "2": "1990"},
			want:      1,
		},
		{
			name:      "empty answer counts as incorrect",
			submitted: `{"1":"  "}`,
			key:       AnswerKey{"1": "paris"},
			want:      0,
		},
		{
			name:      "checkbox set order-insensitive",
			submitted: `{"1-2":["b","a"]}`,
			key:       AnswerKey{"1-2": "a b"},
			want:      1,
		},
		{
			name:      "single-select checkbox range",
			submitted: `{"1-1":["b"]}`,
			key:       AnswerKey{"1-1": "b"},
			want:      1,
		},
		{
			name:      "checkbox same order scores identically",
			submitted: `{"1-2":["a","b"]}`,
			key:       AnswerKey{"1-2": "a b"},
			want:      1,
		},
		{
			name:      "set compare strips trailing punctuation",
			submitted: `{"1-2":["apples.","pears,"]}`,
			key:       AnswerKey{"1-2": "pears apples"},
			want:      1,
		},
		{
			name:      "set with wrong cardinality",
			submitted: `{"1-2":["a"]}`,
			key:       AnswerKey{"1-2": "a b"},
			want:      0,
		},
		{
			name:      "set with wrong element",
			submitted: `{"1-2":["a","c"]}`,
			key:       AnswerKey{"1-2": "a b"},
			want:      0,
		},
		{
			name:      "empty submission",
			submitted: `{}`,
			key:       AnswerKey{"1": "paris"},
			want:      0,
		},
		{
			name:      "extra submitted answers ignored",
			submitted: `{"1":"paris","9":"ghost"}`,
			key:       AnswerKey{"1": "paris"},
			want:      1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountCorrect(submitted(t, tt.submitted), tt.key)
			if got != tt.want {
				t.Errorf("CountCorrect = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCountCorrectIdempotent(t *testing.T) {
	answers := submitted(t, `{"1":"Paris","2-3":["b","a"],"4":"wrong"}`)
	key := AnswerKey{"1": "paris", "2-3": "a b", "4": "right"}

	first := CountCorrect(answers, key)
	for i := 0; i < 10; i++ {
		if got := CountCorrect(answers, key); got != first {
			t.Fatalf("replayed grading diverged: %d != %d", got, first)
		}
	}
	if first != 2 {
		t.Errorf("CountCorrect = %d, want 2", first)
	}
}

func TestParseSubmittedEmpty(t *testing.T) {
	answers, err := ParseSubmitted(nil)
	if err != nil {
		t.Fatalf("ParseSubmitted(nil): %v", err)
	}
	if len(answers) != 0 {
		t.Errorf("expected empty map, got %v", answers)
	}
}
