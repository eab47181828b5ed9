package service

import (
	"testing"
	"time"

	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGranularityFor(t *testing.T) {
	from := day(2026, time.March, 1)
	tests := []struct {
		name string
		to   time.Time
		want Granularity
	}{
		{"one day", from.AddDate(0, 0, 1), GranularityHour},
		{"two days", from.AddDate(0, 0, 2), GranularityHour},
		{"one week", from.AddDate(0, 0, 7), GranularityDay},
		{"three months", from.AddDate(0, 0, 92), GranularityDay},
		{"half a year", from.AddDate(0, 6, 0), GranularityMonth},
		{"two years", from.AddDate(0, 0, 2*365), GranularityMonth},
		{"five years", from.AddDate(5, 0, 0), GranularityYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := granularityFor(from, tt.to); got != tt.want {
				t.Errorf("granularityFor(%v) = %v, want %v", tt.to.Sub(from), got, tt.want)
			}
		})
	}
}

func TestEmptyBucketsZeroFilled(t *testing.T) {
	from := day(2026, time.March, 1)
	to := day(2026, time.March, 8)

	buckets := emptyBuckets(from, to, GranularityDay)
	if len(buckets) != 7 {
		t.Fatalf("buckets = %d, want 7", len(buckets))
	}
	for i, b := range buckets {
		want := from.AddDate(0, 0, i)
		if !b.Start.Equal(want) {
			t.Errorf("bucket %d starts %v, want %v", i, b.Start, want)
		}
		if b.Results != 0 || b.Submissions != 0 || b.AvgOverall != 0 {
			t.Errorf("bucket %d not zero: %+v", i, b)
		}
	}
}

func TestEmptyBucketsHourly(t *testing.T) {
	from := time.Date(2026, time.March, 1, 10, 30, 0, 0, time.UTC)
	to := time.Date(2026, time.March, 1, 13, 0, 0, 0, time.UTC)

	buckets := emptyBuckets(from, to, GranularityHour)
	// 10:00, 11:00, 12:00 - the first bucket opens at the hour containing from.
	if len(buckets) != 3 {
		t.Fatalf("buckets = %d, want 3", len(buckets))
	}
	if got := buckets[0].Start.Hour(); got != 10 {
		t.Errorf("first bucket hour = %d, want 10", got)
	}
}

func TestEmptyBucketsMonthly(t *testing.T) {
	from := day(2026, time.January, 15)
	to := day(2026, time.April, 2)

	buckets := emptyBuckets(from, to, GranularityMonth)
	if len(buckets) != 4 {
		t.Fatalf("buckets = %d, want 4 (Jan-Apr)", len(buckets))
	}
	if buckets[0].Start.Month() != time.January || buckets[3].Start.Month() != time.April {
		t.Errorf("bucket months wrong: first %v, last %v", buckets[0].Start, buckets[3].Start)
	}
}

func TestBucketStart(t *testing.T) {
	ts := time.Date(2026, time.August, 30, 14, 45, 12, 0, time.UTC)
	tests := []struct {
		g    Granularity
		want time.Time
	}{
		{GranularityHour, time.Date(2026, time.August, 30, 14, 0, 0, 0, time.UTC)},
		{GranularityDay, day(2026, time.August, 30)},
		{GranularityMonth, day(2026, time.August, 1)},
		{GranularityYear, day(2026, time.January, 1)},
	}
	for _, tt := range tests {
		if got := bucketStart(ts, tt.g); !got.Equal(tt.want) {
			t.Errorf("bucketStart(%v) = %v, want %v", tt.g, got, tt.want)
		}
	}
}

func TestSummarizeResults(t *testing.T) {
	results := []*model.Result{
		{ModuleBands: model.ModuleBands{Overall: 6, Reading: 5, Writing: 6, Speaking: 6.5, Listening: 7}},
		{ModuleBands: model.ModuleBands{Overall: 8, Reading: 9, Writing: 7, Speaking: 7.5, Listening: 8}},
	}

	out := summarizeResults(results)
	if out.Created != 2 || out.Active != 2 {
		t.Errorf("counters = %+v", out)
	}
	if out.AvgOverall != 7 || out.AvgReading != 7 || out.AvgListening != 7.5 {
		t.Errorf("averages = %+v", out)
	}
}

func TestSummarizeResultsEmpty(t *testing.T) {
	out := summarizeResults(nil)
	if out != (model.ResultStats{}) {
		t.Errorf("empty input should yield zero stats: %+v", out)
	}
}

func TestUserKey(t *testing.T) {
	if got := userKey(42); got != "user:42" {
		t.Errorf("userKey = %q", got)
	}
}
