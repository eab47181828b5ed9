package scoring

import (
	"sort"
	"strconv"

	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"
)

// AnswerKey maps question numbers (or "start-end" ranges for checkbox
// groups, "n-n" when the group selects one) to canonical normalized
// answers. Composite range values are space-joined sets.
type AnswerKey map[string]string

// keyBuilder assigns question numbers while walking a module's content
// tree in order.
type keyBuilder struct {
	next int
	key  AnswerKey
}

func (b *keyBuilder) add(answer string) {
	b.key[strconv.Itoa(b.next)] = answer
	b.next++
}

func (b *keyBuilder) addRange(span int, answer string) {
	if span <= 0 {
		return
	}
	k := strconv.Itoa(b.next) + "-" + strconv.Itoa(b.next+span-1)
	b.key[k] = answer
	b.next += span
}

// ExtractModuleKey walks one module's parts (by Number) and their sections
// (in stored order) and produces the module's canonical answer key, with
// question numbers starting at 1. Sections whose payload fails to decode
// or contributes zero questions advance the counter by zero, leaving no
// gaps elsewhere.
func ExtractModuleKey(parts []model.Part) AnswerKey {
	ordered := make([]model.Part, len(parts))
	copy(ordered, parts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Number < ordered[j].Number
	})

	b := &keyBuilder{next: 1, key: AnswerKey{}}
	for _, part := range ordered {
		for _, section := range part.Sections {
			content, err := DecodeContent(section.Type, section.Content)
			if err != nil {
				continue
			}
			content.appendKey(b)
		}
	}
	return b.key
}

// TestAnswerKeys is the canonical key for the auto-gradable modules of one
// test.
type TestAnswerKeys struct {
	Reading   AnswerKey `json:"reading"`
	Listening AnswerKey `json:"listening"`
}

// ExtractTestKeys builds the answer keys for both auto-gradable modules
// from a test's loaded parts.
func ExtractTestKeys(partsByModule map[model.Module][]model.Part) TestAnswerKeys {
	return TestAnswerKeys{
		Reading:   ExtractModuleKey(partsByModule[model.ModuleReading]),
		Listening: ExtractModuleKey(partsByModule[model.ModuleListening]),
	}
}
