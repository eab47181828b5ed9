package scoring

import (
	"encoding/json"
	"strings"
)

// Normalize canonicalizes an answer for comparison: trimmed and
// lower-cased.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizeElement additionally strips one trailing sentence-terminating
// punctuation mark; used for element-wise set comparison.
func normalizeElement(s string) string {
	s = Normalize(s)
	if len(s) > 0 {
		switch s[len(s)-1] {
		case '.', ',', '!', '?', ';', ':':
			s = s[:len(s)-1]
		}
	}
	return s
}

// RawAnswer is a submitted answer: either a single free-text value or an
// array for multi-select questions.
type RawAnswer struct {
	Value  string
	Values []string
	Multi  bool
}

func (a *RawAnswer) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.Value = s
		a.Multi = false
		return nil
	}

	var arr []string
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	a.Values = arr
	a.Multi = true
	return nil
}

func (a RawAnswer) MarshalJSON() ([]byte, error) {
	if a.Multi {
		return json.Marshal(a.Values)
	}
	return json.Marshal(a.Value)
}

// Empty reports whether the candidate left the question unanswered.
func (a RawAnswer) Empty() bool {
	if a.Multi {
		return len(a.Values) == 0
	}
	return strings.TrimSpace(a.Value) == ""
}

// SubmittedAnswers is a candidate's raw answers for one module, keyed by
// question number (or "start-end" range for multi-select groups).
type SubmittedAnswers map[string]RawAnswer

// ParseSubmitted decodes a stored per-module answer map. A missing or
// empty document yields an empty map, never an error map of partial state.
func ParseSubmitted(raw json.RawMessage) (SubmittedAnswers, error) {
	if len(raw) == 0 {
		return SubmittedAnswers{}, nil
	}
	var answers SubmittedAnswers
	if err := json.Unmarshal(raw, &answers); err != nil {
		return nil, err
	}
	if answers == nil {
		answers = SubmittedAnswers{}
	}
	return answers, nil
}
