package service

import (
	"testing"

	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"
)

func TestModuleAllowed(t *testing.T) {
	for _, m := range model.AuthoredModules {
		if !moduleAllowed(m) {
			t.Errorf("moduleAllowed(%s) = false", m)
		}
	}
	if moduleAllowed(model.ModuleSpeaking) {
		t.Error("speaking must not accept authored parts")
	}
	if moduleAllowed(model.Module("vocabulary")) {
		t.Error("unknown module accepted")
	}
}

func TestRenumberAfterDelete(t *testing.T) {
	tests := []struct {
		name    string
		numbers []int
		deleted int
		want    []int
	}{
		{"delete middle", []int{1, 2, 3, 4}, 2, []int{1, 2, 3}},
		{"delete first", []int{1, 2, 3}, 1, []int{1, 2}},
		{"delete last", []int{1, 2, 3}, 3, []int{1, 2}},
		{"single part", []int{1}, 1, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenumberAfterDelete(tt.numbers, tt.deleted)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
			// Survivors stay contiguous from 1.
			for i, n := range got {
				if n != i+1 {
					t.Errorf("numbering gap at %d: %v", i, got)
				}
			}
		})
	}
}
