package service

import (
	"math"
	"testing"

	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"
)

func TestDeltaIsZero(t *testing.T) {
	if !(Delta{}).IsZero() {
		t.Error("empty delta should be zero")
	}
	if (Delta{Tests: TestDelta{Created: 1}}).IsZero() {
		t.Error("delta with a counter should not be zero")
	}
	if (Delta{Bands: &BandSample{}}).IsZero() {
		t.Error("delta with a band sample should not be zero")
	}
	if (Delta{Submissions: SubmissionDelta{Ungraded: -1}}).IsZero() {
		t.Error("negative counters are still changes")
	}
}

func TestApplyDeltaCounters(t *testing.T) {
	var tests model.TestStats
	var subs model.SubmissionStats
	var results model.ResultStats
	var links model.LinkStats
	var templates model.TemplateStats

	applyDelta(&tests, &subs, &results, &links, &templates, Delta{
		Tests:       TestDelta{Created: 2, Active: 2},
		Submissions: SubmissionDelta{Created: 3, Graded: 1, Ungraded: 2},
		Links:       LinkDelta{Created: 1, Active: 1, Visits: 5, Usages: 2},
		Templates:   TemplateDelta{Created: 1, Active: 1},
	})

	if tests.Created != 2 || tests.Active != 2 {
		t.Errorf("tests = %+v", tests)
	}
	if subs.Created != 3 || subs.Graded != 1 || subs.Ungraded != 2 {
		t.Errorf("submissions = %+v", subs)
	}
	if links.TotalVisits != 5 || links.TotalUsages != 2 {
		t.Errorf("links = %+v", links)
	}
	if templates.Created != 1 {
		t.Errorf("templates = %+v", templates)
	}
}

func TestApplyDeltaNilTemplates(t *testing.T) {
	var tests model.TestStats
	var subs model.SubmissionStats
	var results model.ResultStats
	var links model.LinkStats

	// Daily rows carry no template group.
	applyDelta(&tests, &subs, &results, &links, nil, Delta{
		Templates: TemplateDelta{Created: 1},
		Tests:     TestDelta{Created: 1},
	})
	if tests.Created != 1 {
		t.Errorf("tests = %+v", tests)
	}
}

func TestApplyResultDeltaIncrementalAverage(t *testing.T) {
	r := model.ResultStats{Created: 2, Active: 2, AvgOverall: 6.0, AvgReading: 5.0}

	applyResultDelta(&r, Delta{
		Results: ResultDelta{Created: 1, Active: 1},
		Bands:   &BandSample{Overall: 7.5, Reading: 8.0},
	})

	if r.Created != 3 || r.Active != 3 {
		t.Fatalf("counters = %+v", r)
	}
	// (6.0*2 + 7.5) / 3 = 6.5
	if math.Abs(r.AvgOverall-6.5) > 1e-9 {
		t.Errorf("AvgOverall = %v, want 6.5", r.AvgOverall)
	}
	// (5.0*2 + 8.0) / 3 = 6.0
	if math.Abs(r.AvgReading-6.0) > 1e-9 {
		t.Errorf("AvgReading = %v, want 6.0", r.AvgReading)
	}
}

func TestApplyResultDeltaFirstSample(t *testing.T) {
	var r model.ResultStats
	applyResultDelta(&r, Delta{
		Results: ResultDelta{Created: 1, Active: 1},
		Bands:   &BandSample{Overall: 7, Reading: 6.5, Writing: 6, Speaking: 7, Listening: 8},
	})
	if r.AvgOverall != 7 || r.AvgListening != 8 {
		t.Errorf("averages = %+v", r)
	}
}

func TestApplyResultDeltaWithoutSample(t *testing.T) {
	r := model.ResultStats{Created: 4, AvgOverall: 6.5}
	applyResultDelta(&r, Delta{Results: ResultDelta{Active: -1}})
	if r.Created != 4 || r.Active != -1 {
		t.Errorf("counters = %+v", r)
	}
	if r.AvgOverall != 6.5 {
		t.Errorf("average moved without a sample: %v", r.AvgOverall)
	}
}

func TestApplyResultDeltaMatchesFullRecompute(t *testing.T) {
	samples := []BandSample{
		{Overall: 5.5}, {Overall: 7.0}, {Overall: 6.5}, {Overall: 8.0}, {Overall: 4.5},
	}

	var incremental model.ResultStats
	sum := 0.0
	for _, sample := range samples {
		s := sample
		applyResultDelta(&incremental, Delta{Results: ResultDelta{Created: 1}, Bands: &s})
		sum += sample.Overall
	}

	want := sum / float64(len(samples))
	if math.Abs(incremental.AvgOverall-want) > 1e-9 {
		t.Errorf("incremental avg = %v, full recompute = %v", incremental.AvgOverall, want)
	}
}
