package scoring

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"
)

func section(typ model.SectionType, content string) model.Section {
	return model.Section{
		Type:    typ,
		Content: json.RawMessage(content),
	}
}

func TestExtractModuleKey(t *testing.T) {
	parts := []model.Part{
		{
			Number: 1,
			Sections: []model.Section{
				section(model.SectionText, `{"text":"<input type=\"text\" data-name=\"answer-input\"> <input type=\"text\" data-name=\"answer-input\">","answers":[{"text":" Paris "},{"text":"1990"}]}`),
			},
		},
		{
			Number: 2,
			Sections: []model.Section{
				section(model.SectionRadioGroup, `{"groups":[{"question":"q","answers":[{"text":"Cats"},{"text":"Dogs"}],"correctAnswerIndex":1}]}`),
				section(model.SectionCheckboxGroup, `{"groups":[{"maxSelected":2,"answers":[{"text":"A."},{"text":"B"},{"text":"C"}],"correctAnswersIndex":[0,2]}]}`),
				section(model.SectionGridMatching, `{"grid":{"questions":[{"question":"match","answer":"True"}]}}`),
			},
		},
	}

	want := AnswerKey{
		"1":   "paris",
		"2":   "1990",
		"3":   "dogs",
		"4-5": "a. c",
		"6":   "true",
	}

	got := ExtractModuleKey(parts)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractModuleKey = %v, want %v", got, want)
	}
}

func TestExtractModuleKeyOrderStable(t *testing.T) {
	// Parts deliberately out of order; extraction must sort by Number.
	parts := []model.Part{
		{
			Number: 2,
			Sections: []model.Section{
				section(model.SectionText, `{"text":"<input type=\"text\" data-name=\"answer-input\">","answers":[{"text":"second"}]}`),
			},
		},
		{
			Number: 1,
			Sections: []model.Section{
				section(model.SectionText, `{"text":"<input type=\"text\" data-name=\"answer-input\">","answers":[{"text":"first"}]}`),
			},
		},
	}

	want := AnswerKey{"1": "first", "2": "second"}

	first := ExtractModuleKey(parts)
	if !reflect.DeepEqual(first, want) {
		t.Fatalf("ExtractModuleKey = %v, want %v", first, want)
	}

	for i := 0; i < 5; i++ {
		if again := ExtractModuleKey(parts); !reflect.DeepEqual(again, first) {
			t.Fatalf("extraction not stable: %v != %v", again, first)
		}
	}
}

func TestExtractModuleKeyToleratesEmptySections(t *testing.T) {
	parts := []model.Part{
		{
			Number: 1,
			Sections: []model.Section{
				section(model.SectionText, `{"text":"<input type=\"text\" data-name=\"answer-input\">","answers":[{"text":"one"}]}`),
				section(model.SectionRadioGroup, `{"groups":`), // malformed: zero questions
				section(model.SectionText, `{"text":"no blanks here","answers":[]}`),
				section(model.SectionText, `{"text":"<input type=\"text\" data-name=\"answer-input\">","answers":[{"text":"two"}]}`),
			},
		},
	}

	want := AnswerKey{"1": "one", "2": "two"}
	if got := ExtractModuleKey(parts); !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractModuleKey = %v, want %v", got, want)
	}
}

func TestExtractModuleKeyDraggableUsesBankOrder(t *testing.T) {
	parts := []model.Part{
		{
			Number: 1,
			Sections: []model.Section{
				section(model.SectionTextDraggable, `{"text":"<span data-name=\"dropzone\"></span><span data-name=\"dropzone\"></span>","options":{"data":[{"option":"Alpha"},{"option":"Beta"},{"option":"Gamma"}]}}`),
			},
		},
	}

	want := AnswerKey{"1": "alpha", "2": "beta"}
	if got := ExtractModuleKey(parts); !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractModuleKey = %v, want %v", got, want)
	}
}

func TestExtractModuleKeyMissingAnswersYieldEmpty(t *testing.T) {
	parts := []model.Part{
		{
			Number: 1,
			Sections: []model.Section{
				section(model.SectionText, `{"text":"<input type=\"text\" data-name=\"answer-input\"> <input type=\"text\" data-name=\"answer-input\">","answers":[{"text":"only"}]}`),
			},
		},
	}

	want := AnswerKey{"1": "only", "2": ""}
	if got := ExtractModuleKey(parts); !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractModuleKey = %v, want %v", got, want)
	}
}

func TestExtractModuleKeySingleSelectGroup(t *testing.T) {
	parts := []model.Part{
		{
			Number: 1,
			Sections: []model.Section{
				section(model.SectionCheckboxGroup, `{"groups":[{"maxSelected":1,"answers":[{"text":"A"},{"text":"B"}],"correctAnswersIndex":[1]},{"maxSelected":2,"answers":[{"text":"C"},{"text":"D"},{"text":"E"}],"correctAnswersIndex":[0,1]}]}`),
			},
		},
	}

	// A one-answer group still keys as a range.
	want := AnswerKey{
		"1-1": "b",
		"2-3": "c d",
	}

	got := ExtractModuleKey(parts)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractModuleKey = %v, want %v", got, want)
	}
}

func TestExtractTestKeysNoQuestions(t *testing.T) {
	// A test whose reading and listening modules hold no sections has
	// empty keys, grades to a raw count of 0, and band 0.
	keys := ExtractTestKeys(map[model.Module][]model.Part{
		model.ModuleReading:   {{Number: 1}},
		model.ModuleListening: nil,
	})
	if len(keys.Reading) != 0 || len(keys.Listening) != 0 {
		t.Fatalf("expected empty keys, got %v / %v", keys.Reading, keys.Listening)
	}

	if got := CountCorrect(SubmittedAnswers{}, keys.Reading); got != 0 {
		t.Errorf("CountCorrect on empty key = %d, want 0", got)
	}
	if band := BandForCount(model.ModuleReading, 0); band != 0 {
		t.Errorf("BandForCount(reading, 0) = %v, want 0", band)
	}
	if band := BandForCount(model.ModuleListening, 0); band != 0 {
		t.Errorf("BandForCount(listening, 0) = %v, want 0", band)
	}
}
