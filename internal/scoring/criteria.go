package scoring

import "github.com/yaxyobekuz/ielts-mock-backend/internal/model"

func writingTaskMean(c model.WritingTaskCriteria) float64 {
	return (c.TaskScore + c.LexicalResource + c.CoherenceAndCohesion + c.GrammaticalRangeAndAccuracy) / 4
}

// WritingBand combines the two writing task rubrics: each task's band is
// the mean of its four criteria, and the module band is the rounded mean
// of the two task bands.
func WritingBand(task1, task2 model.WritingTaskCriteria) float64 {
	return RoundToNearestHalf((writingTaskMean(task1) + writingTaskMean(task2)) / 2)
}

// SpeakingBand is the rounded mean of the four speaking criteria.
func SpeakingBand(c model.SpeakingCriteria) float64 {
	mean := (c.Pronunciation + c.LexicalResource + c.FluencyAndCoherence + c.GrammaticalRangeAndAccuracy) / 4
	return RoundToNearestHalf(mean)
}

// OverallBand is the rounded mean of the four module bands. It serves both
// the grader-facing overall and the engine's shadow overall; only the
// inputs differ.
func OverallBand(reading, writing, speaking, listening float64) float64 {
	return RoundToNearestHalf((reading + writing + speaking + listening) / 4)
}

// ValidBand reports whether a grader-entered band is inside the scale.
func ValidBand(b float64) bool {
	return b >= 0 && b <= 9
}
