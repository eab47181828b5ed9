package scoring

import (
	"encoding/json"
	"math/rand"

	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"
)

// SanitizeContent rewrites a section payload for exam delivery: canonical
// answers and correct-answer indices are stripped, and shared option
// banks are shuffled so the bank order no longer spells out the key.
// Malformed payloads sanitize to an empty object rather than leaking raw
// authored content.
func SanitizeContent(t model.SectionType, raw json.RawMessage, rng *rand.Rand) json.RawMessage {
	content, err := DecodeContent(t, raw)
	if err != nil {
		return json.RawMessage(`{}`)
	}

	var out interface{}
	switch c := content.(type) {
	case *TextContent:
		out = struct {
			Text string `json:"text"`
		}{Text: c.Text}

	case *DraggableContent:
		out = struct {
			Text    string     `json:"text"`
			Options OptionBank `json:"options"`
		}{Text: c.Text, Options: shuffleBank(c.Options, rng)}

	case *FlowchartContent:
		sanitized := struct {
			Items   interface{} `json:"items"`
			Options OptionBank  `json:"options"`
		}{Items: c.Items, Options: shuffleBank(c.Options, rng)}
		out = sanitized

	case *RadioGroupContent:
		type group struct {
			Question string       `json:"question"`
			Answers  []AnswerText `json:"answers"`
		}
		groups := make([]group, len(c.Groups))
		for i, g := range c.Groups {
			groups[i] = group{Question: g.Question, Answers: g.Answers}
		}
		out = struct {
			Groups []group `json:"groups"`
		}{Groups: groups}

	case *CheckboxGroupContent:
		type group struct {
			Question    string       `json:"question"`
			Answers     []AnswerText `json:"answers"`
			MaxSelected int          `json:"maxSelected"`
		}
		groups := make([]group, len(c.Groups))
		for i, g := range c.Groups {
			groups[i] = group{Question: g.Question, Answers: g.Answers, MaxSelected: g.MaxSelected}
		}
		out = struct {
			Groups []group `json:"groups"`
		}{Groups: groups}

	case *GridMatchingContent:
		type question struct {
			Question string `json:"question"`
		}
		questions := make([]question, len(c.Grid.Questions))
		for i, q := range c.Grid.Questions {
			questions[i] = question{Question: q.Question}
		}
		out = struct {
			Grid struct {
				Questions []question `json:"questions"`
			} `json:"grid"`
		}{Grid: struct {
			Questions []question `json:"questions"`
		}{Questions: questions}}

	default:
		return json.RawMessage(`{}`)
	}

	encoded, err := json.Marshal(out)
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return encoded
}

// shuffleBank returns a copy of the bank with its entries permuted.
func shuffleBank(bank OptionBank, rng *rand.Rand) OptionBank {
	data := make([]Option, len(bank.Data))
	copy(data, bank.Data)
	rng.Shuffle(len(data), func(i, j int) {
		data[i], data[j] = data[j], data[i]
	})
	return OptionBank{Title: bank.Title, Data: data}
}
