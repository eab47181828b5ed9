package scoring

import (
	"sort"
	"testing"

	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"
)

func TestBandForCount(t *testing.T) {
	tests := []struct {
		name    string
		module  model.Module
		correct int
		want    float64
	}{
		{"reading 30 is band 7", model.ModuleReading, 30, 7},
		{"reading 40 is band 9", model.ModuleReading, 40, 9},
		{"reading 4 is band 2.5", model.ModuleReading, 4, 2.5},
		{"reading 0 is band 0", model.ModuleReading, 0, 0},
		{"reading gap scores 0", model.ModuleReading, 3, 0},
		{"listening 39 is band 9", model.ModuleListening, 39, 9},
		{"listening 11 is band 4", model.ModuleListening, 11, 4},
		{"listening gap scores 0", model.ModuleListening, 10, 0},
		{"listening 0 is band 0", model.ModuleListening, 0, 0},
		{"writing has no table", model.ModuleWriting, 40, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BandForCount(tt.module, tt.correct); got != tt.want {
				t.Errorf("BandForCount(%s, %d) = %v, want %v", tt.module, tt.correct, got, tt.want)
			}
		})
	}
}

func TestBandTablesMonotonic(t *testing.T) {
	for name, table := range map[string]map[int]float64{
		"listening": listeningBands,
		"reading":   readingBands,
	} {
		t.Run(name, func(t *testing.T) {
			counts := make([]int, 0, len(table))
			for c := range table {
				counts = append(counts, c)
			}
			sort.Ints(counts)

			for i := 1; i < len(counts); i++ {
				lo, hi := counts[i-1], counts[i]
				if table[lo] > table[hi] {
					t.Errorf("band(%d)=%v > band(%d)=%v", lo, table[lo], hi, table[hi])
				}
			}
		})
	}
}

func TestRoundToNearestHalf(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{6.5, 6.5},
		{6.24, 6},
		{6.25, 6.5},
		{6.74, 6.5},
		{6.75, 7},
		{0, 0},
		{9, 9},
		{8.875, 9},
	}

	for _, tt := range tests {
		if got := RoundToNearestHalf(tt.in); got != tt.want {
			t.Errorf("RoundToNearestHalf(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRoundToNearestHalfIdempotent(t *testing.T) {
	for x := 0.0; x <= 9.0; x += 0.05 {
		once := RoundToNearestHalf(x)
		twice := RoundToNearestHalf(once)
		if once != twice {
			t.Fatalf("roundHalf not idempotent at %v: %v != %v", x, once, twice)
		}
	}
}
