package scoring

import (
	"math"

	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"
)

// Band conversion tables: raw correct count to band score, reproduced
// bit-for-bit from the published scoring tables. The tables are sparse;
// lookup is by exact match and a missing count scores 0. Changing a table
// is a data migration, not a code change.

var listeningBands = map[int]float64{
	40: 9, 39: 9,
	38: 8.5, 37: 8.5,
	36: 8, 35: 8,
	34: 7.5, 33: 7.5, 32: 7.5,
	31: 7, 30: 7,
	29: 6.5, 28: 6.5, 27: 6.5, 26: 6.5,
	25: 6, 24: 6, 23: 6,
	22: 5.5, 21: 5.5, 20: 5.5, 19: 5.5, 18: 5.5,
	17: 5, 16: 5,
	15: 4.5, 14: 4.5, 13: 4.5,
	12: 4, 11: 4,
	0: 0,
}

var readingBands = map[int]float64{
	40: 9, 39: 9,
	38: 8.5, 37: 8.5,
	36: 8, 35: 8,
	34: 7.5, 33: 7.5,
	32: 7, 31: 7, 30: 7,
	29: 6.5, 28: 6.5, 27: 6.5,
	26: 6, 25: 6, 24: 6, 23: 6,
	22: 5.5, 21: 5.5, 20: 5.5, 19: 5.5,
	18: 5, 17: 5, 16: 5, 15: 5,
	14: 4.5, 13: 4.5,
	12: 4, 11: 4, 10: 4,
	9: 3.5, 8: 3.5,
	7: 3, 6: 3,
	5: 2.5, 4: 2.5,
	0: 0,
}

// BandForCount maps a raw correct count to a band score for an
// auto-gradable module. Counts with no table entry score 0.
func BandForCount(m model.Module, correct int) float64 {
	var table map[int]float64
	switch m {
	case model.ModuleListening:
		table = listeningBands
	case model.ModuleReading:
		table = readingBands
	default:
		return 0
	}

	if band, ok := table[correct]; ok {
		return band
	}
	return 0
}

// RoundToNearestHalf rounds to the nearest 0.5 with half-away-from-zero
// semantics.
func RoundToNearestHalf(x float64) float64 {
	return math.Round(x*2) / 2
}
