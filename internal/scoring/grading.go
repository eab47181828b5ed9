package scoring

import (
	"sort"
	"strings"
)

// CountCorrect compares a candidate's submitted answers against a module's
// canonical answer key and returns the raw correct count. Keys absent from
// the submission count as incorrect. The comparison never mutates either
// side.
func CountCorrect(submitted SubmittedAnswers, key AnswerKey) int {
	count := 0
	for k, canonical := range key {
		answer, ok := submitted[k]
		if !ok || answer.Empty() {
			continue
		}

		if answer.Multi {
			// Multi-valued answers compare as a set, order-independent.
			if equalAnswerSets(answer.Values, strings.Fields(canonical)) {
				count++
			}
			continue
		}

		if Normalize(answer.Value) == Normalize(canonical) {
			count++
		}
	}
	return count
}

func equalAnswerSets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	as := make([]string, len(a))
	bs := make([]string, len(b))
	for i := range a {
		as[i] = normalizeElement(a[i])
	}
	for i := range b {
		bs[i] = normalizeElement(b[i])
	}
	sort.Strings(as)
	sort.Strings(bs)

	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
