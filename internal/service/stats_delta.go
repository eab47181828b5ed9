package service

import "github.com/yaxyobekuz/ielts-mock-backend/internal/model"

// Delta is one statistics event emitted by a write path. It travels
// through the task queue as JSON and is folded into the daily and
// lifetime aggregates by the stats workers.

type TestDelta struct {
	Created int `json:"created,omitempty"`
	Active  int `json:"active,omitempty"`
	Deleted int `json:"deleted,omitempty"`
}

type SubmissionDelta struct {
	Created  int `json:"created,omitempty"`
	Graded   int `json:"graded,omitempty"`
	Ungraded int `json:"ungraded,omitempty"`
}

type ResultDelta struct {
	Created int `json:"created,omitempty"`
	Active  int `json:"active,omitempty"`
}

type LinkDelta struct {
	Created int `json:"created,omitempty"`
	Active  int `json:"active,omitempty"`
	Visits  int `json:"visits,omitempty"`
	Usages  int `json:"usages,omitempty"`
}

type TemplateDelta struct {
	Created int `json:"created,omitempty"`
	Active  int `json:"active,omitempty"`
	Deleted int `json:"deleted,omitempty"`
}

// BandSample carries the band scores of a freshly created result so the
// rolling averages can absorb it without rereading the results table.
type BandSample struct {
	Overall   float64 `json:"overall"`
	Reading   float64 `json:"reading"`
	Writing   float64 `json:"writing"`
	Speaking  float64 `json:"speaking"`
	Listening float64 `json:"listening"`
}

type Delta struct {
	Tests       TestDelta       `json:"tests,omitempty"`
	Submissions SubmissionDelta `json:"submissions,omitempty"`
	Results     ResultDelta     `json:"results,omitempty"`
	Links       LinkDelta       `json:"links,omitempty"`
	Templates   TemplateDelta   `json:"templates,omitempty"`
	Bands       *BandSample     `json:"bands,omitempty"`
}

// IsZero reports whether applying the delta would change nothing. Zero
// deltas are dropped before they reach the queue.
func (d Delta) IsZero() bool {
	return d == Delta{}
}

// applyDelta folds one delta into a set of aggregate groups. templates is
// nil for the daily rows, which do not track templates.
func applyDelta(tests *model.TestStats, subs *model.SubmissionStats, results *model.ResultStats,
	links *model.LinkStats, templates *model.TemplateStats, d Delta) {

	tests.Created += d.Tests.Created
	tests.Active += d.Tests.Active
	tests.Deleted += d.Tests.Deleted

	subs.Created += d.Submissions.Created
	subs.Graded += d.Submissions.Graded
	subs.Ungraded += d.Submissions.Ungraded

	applyResultDelta(results, d)

	links.Created += d.Links.Created
	links.Active += d.Links.Active
	links.TotalVisits += d.Links.Visits
	links.TotalUsages += d.Links.Usages

	if templates != nil {
		templates.Created += d.Templates.Created
		templates.Active += d.Templates.Active
		templates.Deleted += d.Templates.Deleted
	}
}

// applyResultDelta advances the result counters and, when the delta
// carries a band sample, folds it into the rolling averages using the
// incremental mean: newAvg = (oldAvg*oldCount + sample*n) / (oldCount+n).
func applyResultDelta(r *model.ResultStats, d Delta) {
	if d.Bands != nil && d.Results.Created > 0 {
		oldCount := float64(r.Created)
		n := float64(d.Results.Created)
		total := oldCount + n
		r.AvgOverall = (r.AvgOverall*oldCount + d.Bands.Overall*n) / total
		r.AvgReading = (r.AvgReading*oldCount + d.Bands.Reading*n) / total
		r.AvgWriting = (r.AvgWriting*oldCount + d.Bands.Writing*n) / total
		r.AvgSpeaking = (r.AvgSpeaking*oldCount + d.Bands.Speaking*n) / total
		r.AvgListening = (r.AvgListening*oldCount + d.Bands.Listening*n) / total
	}
	r.Created += d.Results.Created
	r.Active += d.Results.Active
}
