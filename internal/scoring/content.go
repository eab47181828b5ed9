package scoring

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"
)

// Authoring markup markers counted when deriving question totals. Blank
// positions are embedded in the section's rich text by the editor.
const (
	inputMarker    = `<input type="text" data-name="answer-input">`
	dropzoneMarker = `<span data-name="dropzone"></span>`
)

// AnswerText is one authored answer option.
type AnswerText struct {
	Text string `json:"text"`
}

// Option is one entry of a shared option bank.
type Option struct {
	Option string `json:"option"`
}

// OptionBank is the shared pool referenced positionally by draggable and
// flowchart blanks.
type OptionBank struct {
	Title string   `json:"title,omitempty"`
	Data  []Option `json:"data"`
}

// Content is the decoded payload of a section. Exactly one concrete shape
// exists per section type.
type Content interface {
	// Questions returns how many questions the payload contributes. It is
	// a pure function of the payload and drives both Part.TotalQuestions
	// and answer-key numbering.
	Questions() int

	// appendKey emits the section's canonical answers into the builder,
	// advancing its question counter.
	appendKey(b *keyBuilder)
}

// TextContent holds free-text blanks embedded in a passage; Answers are
// ordered, one per blank.
type TextContent struct {
	Text    string       `json:"text"`
	Answers []AnswerText `json:"answers"`
}

func (c *TextContent) Questions() int {
	return strings.Count(c.Text, inputMarker)
}

func (c *TextContent) appendKey(b *keyBuilder) {
	n := c.Questions()
	for i := 0; i < n; i++ {
		answer := ""
		if i < len(c.Answers) {
			answer = Normalize(c.Answers[i].Text)
		}
		b.add(answer)
	}
}

// DraggableContent holds dropzones in a passage filled from a shared
// option bank; the bank's order is the answer order.
type DraggableContent struct {
	Text    string     `json:"text"`
	Options OptionBank `json:"options"`
}

func (c *DraggableContent) Questions() int {
	return strings.Count(c.Text, dropzoneMarker)
}

func (c *DraggableContent) appendKey(b *keyBuilder) {
	appendBankKey(b, c.Questions(), c.Options)
}

// FlowchartItem is one node of a flowchart diagram; its text may contain
// dropzones.
type FlowchartItem struct {
	Text string `json:"text"`
}

// FlowchartContent holds a diagram whose nodes contain dropzones filled
// from a shared option bank.
type FlowchartContent struct {
	Items struct {
		Title string          `json:"title,omitempty"`
		Data  []FlowchartItem `json:"data"`
	} `json:"items"`
	Options OptionBank `json:"options"`
}

func (c *FlowchartContent) Questions() int {
	total := 0
	for _, item := range c.Items.Data {
		total += strings.Count(item.Text, dropzoneMarker)
	}
	return total
}

func (c *FlowchartContent) appendKey(b *keyBuilder) {
	appendBankKey(b, c.Questions(), c.Options)
}

func appendBankKey(b *keyBuilder, n int, bank OptionBank) {
	for i := 0; i < n; i++ {
		answer := ""
		if i < len(bank.Data) {
			answer = Normalize(bank.Data[i].Option)
		}
		b.add(answer)
	}
}

// RadioGroup is one single-choice question.
type RadioGroup struct {
	Question           string       `json:"question"`
	Answers            []AnswerText `json:"answers"`
	CorrectAnswerIndex int          `json:"correctAnswerIndex"`
}

// RadioGroupContent holds a list of single-choice questions.
type RadioGroupContent struct {
	Groups []RadioGroup `json:"groups"`
}

func (c *RadioGroupContent) Questions() int {
	return len(c.Groups)
}

func (c *RadioGroupContent) appendKey(b *keyBuilder) {
	for _, group := range c.Groups {
		answer := ""
		if group.CorrectAnswerIndex >= 0 && group.CorrectAnswerIndex < len(group.Answers) {
			answer = Normalize(group.Answers[group.CorrectAnswerIndex].Text)
		}
		b.add(answer)
	}
}

// CheckboxGroup is one multi-choice question spanning MaxSelected
// consecutive question numbers.
type CheckboxGroup struct {
	Question            string       `json:"question"`
	Answers             []AnswerText `json:"answers"`
	CorrectAnswersIndex []int        `json:"correctAnswersIndex"`
	MaxSelected         int          `json:"maxSelected"`
}

// CheckboxGroupContent holds a list of multi-choice questions.
type CheckboxGroupContent struct {
	Groups []CheckboxGroup `json:"groups"`
}

func (c *CheckboxGroupContent) Questions() int {
	total := 0
	for _, group := range c.Groups {
		total += group.MaxSelected
	}
	return total
}

func (c *CheckboxGroupContent) appendKey(b *keyBuilder) {
	for _, group := range c.Groups {
		parts := make([]string, 0, len(group.CorrectAnswersIndex))
		for _, idx := range group.CorrectAnswersIndex {
			if idx >= 0 && idx < len(group.Answers) {
				parts = append(parts, Normalize(group.Answers[idx].Text))
			}
		}
		b.addRange(group.MaxSelected, strings.TrimSpace(strings.Join(parts, " ")))
	}
}

// GridQuestion is one row of a grid-matching section.
type GridQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GridMatchingContent holds question rows matched against a grid of
// answers.
type GridMatchingContent struct {
	Grid struct {
		Questions []GridQuestion `json:"questions"`
	} `json:"grid"`
}

func (c *GridMatchingContent) Questions() int {
	return len(c.Grid.Questions)
}

func (c *GridMatchingContent) appendKey(b *keyBuilder) {
	for _, q := range c.Grid.Questions {
		b.add(Normalize(q.Answer))
	}
}

// DecodeContent parses a section payload strictly by its declared type.
func DecodeContent(t model.SectionType, raw json.RawMessage) (Content, error) {
	var content Content
	switch t {
	case model.SectionText:
		content = &TextContent{}
	case model.SectionTextDraggable:
		content = &DraggableContent{}
	case model.SectionFlowchart:
		content = &FlowchartContent{}
	case model.SectionRadioGroup:
		content = &RadioGroupContent{}
	case model.SectionCheckboxGroup:
		content = &CheckboxGroupContent{}
	case model.SectionGridMatching:
		content = &GridMatchingContent{}
	default:
		return nil, fmt.Errorf("unknown section type %q", t)
	}

	if len(raw) == 0 {
		return content, nil
	}
	if err := json.Unmarshal(raw, content); err != nil {
		return nil, err
	}
	return content, nil
}

// CountQuestions derives a section's question count from its type and
// payload. Malformed payloads contribute zero questions.
func CountQuestions(t model.SectionType, raw json.RawMessage) int {
	content, err := DecodeContent(t, raw)
	if err != nil {
		return 0
	}
	return content.Questions()
}
