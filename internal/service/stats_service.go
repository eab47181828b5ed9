package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/repository"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/task"
	"github.com/yaxyobekuz/ielts-mock-backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Task names understood by the stats workers.
const (
	TaskUpdateUserStats = "update-user-stats"
	TaskUpdateStats     = "update-stats"
)

const dashboardDays = 7

type StatsService struct {
	StatsRepo      *repository.StatsRepository
	UserRepo       *repository.UserRepository
	ResultRepo     *repository.ResultRepository
	TestRepo       *repository.TestRepository
	SubmissionRepo *repository.SubmissionRepository
	LinkRepo       *repository.LinkRepository
	TemplateRepo   *repository.TemplateRepository
	Queue          task.Queue
}

func NewStatsService(
	statsRepo *repository.StatsRepository,
	userRepo *repository.UserRepository,
	resultRepo *repository.ResultRepository,
	testRepo *repository.TestRepository,
	submissionRepo *repository.SubmissionRepository,
	linkRepo *repository.LinkRepository,
	templateRepo *repository.TemplateRepository,
	queue task.Queue,
) *StatsService {
	return &StatsService{
		StatsRepo:      statsRepo,
		UserRepo:       userRepo,
		ResultRepo:     resultRepo,
		TestRepo:       testRepo,
		SubmissionRepo: submissionRepo,
		LinkRepo:       linkRepo,
		TemplateRepo:   templateRepo,
		Queue:          queue,
	}
}

type statsPayload struct {
	UserID uint      `json:"userId"`
	Date   time.Time `json:"date"`
	Delta  Delta     `json:"delta"`
	// Rollup marks deltas forwarded to a supervisor row; they must not
	// be forwarded again.
	Rollup bool `json:"rollup,omitempty"`
}

func userKey(userID uint) string {
	return fmt.Sprintf("user:%d", userID)
}

// RegisterHandlers binds the stats tasks to a queue implementation.
func (s *StatsService) RegisterHandlers(r interface {
	Register(name string, h task.Handler)
}) {
	r.Register(TaskUpdateUserStats, s.HandleUserStats)
	r.Register(TaskUpdateStats, s.HandleDailyStats)
}

// Record publishes one delta for both the lifetime and daily aggregates.
// Zero deltas are dropped. Enqueue failures are logged, not returned: the
// originating write has already committed and must not be rolled back
// over a statistics hiccup.
func (s *StatsService) Record(ctx context.Context, userID uint, at time.Time, d Delta) {
	if d.IsZero() {
		return
	}
	s.enqueue(ctx, userID, at, d, false)
}

func (s *StatsService) enqueue(ctx context.Context, userID uint, at time.Time, d Delta, rollup bool) {
	payload := statsPayload{UserID: userID, Date: at.UTC(), Delta: d, Rollup: rollup}
	key := userKey(userID)
	if err := s.Queue.Enqueue(ctx, TaskUpdateUserStats, key, payload); err != nil {
		logger.Log.Error("enqueue user stats failed", zap.Uint("user", userID), zap.Error(err))
	}
	if err := s.Queue.Enqueue(ctx, TaskUpdateStats, key, payload); err != nil {
		logger.Log.Error("enqueue daily stats failed", zap.Uint("user", userID), zap.Error(err))
	}
}

// HandleUserStats folds a delta into the lifetime aggregate and forwards
// it to the owner's supervisor as a keyed task of its own, so supervisor
// rows are only ever touched by their own queue shard.
func (s *StatsService) HandleUserStats(ctx context.Context, key string, payload json.RawMessage) error {
	var p statsPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return err
	}
	user, err := s.UserRepo.FindByID(p.UserID)
	if err != nil {
		return err
	}

	stat, err := s.StatsRepo.FindOrCreateUserStat(user.ID, user.Role, user.SupervisorID)
	if err != nil {
		return err
	}
	applyDelta(&stat.Tests, &stat.Submissions, &stat.Results, &stat.Links, &stat.Templates, p.Delta)
	stat.Meta.LastUpdated = time.Now().UTC()
	if err := s.StatsRepo.SaveUserStat(stat); err != nil {
		return err
	}

	if !p.Rollup && user.SupervisorID != nil {
		s.enqueue(ctx, *user.SupervisorID, p.Date, p.Delta, true)
	}
	return nil
}

// HandleDailyStats folds a delta into the per-day bucket of the event's
// calendar day.
func (s *StatsService) HandleDailyStats(ctx context.Context, key string, payload json.RawMessage) error {
	var p statsPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return err
	}
	user, err := s.UserRepo.FindByID(p.UserID)
	if err != nil {
		return err
	}

	stat, err := s.StatsRepo.FindOrCreateDaily(user.ID, user.Role, user.SupervisorID, p.Date)
	if err != nil {
		return err
	}
	applyDelta(&stat.Tests, &stat.Submissions, &stat.Results, &stat.Links, nil, p.Delta)
	stat.Meta.LastUpdated = time.Now().UTC()
	return s.StatsRepo.SaveDaily(stat)
}

// Dashboard returns the last seven days for a user, oldest first, with
// missing days zero-filled.
func (s *StatsService) Dashboard(userID uint) ([]model.Stat, error) {
	today := repository.DayOf(time.Now())
	from := today.AddDate(0, 0, -(dashboardDays - 1))
	to := today.AddDate(0, 0, 1)

	rows, err := s.StatsRepo.FindDailyRange(userID, from, to)
	if err != nil {
		return nil, err
	}
	byDay := make(map[time.Time]model.Stat, len(rows))
	for _, row := range rows {
		byDay[row.Date.UTC()] = row
	}

	days := make([]model.Stat, 0, dashboardDays)
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		if row, ok := byDay[d]; ok {
			days = append(days, row)
		} else {
			days = append(days, model.Stat{UserID: userID, Date: d})
		}
	}
	return days, nil
}

// StatBucket is one time slice of the detailed view.
type StatBucket struct {
	Start       time.Time `json:"start"`
	Results     int       `json:"results"`
	Submissions int       `json:"submissions"`
	AvgOverall  float64   `json:"avgOverall"`
}

// Granularity of the detailed view, picked from the range width.
type Granularity string

const (
	GranularityHour  Granularity = "hour"
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// granularityFor picks the bucket width for a range: up to two days by
// hour, up to three months by day, up to two years by month, else year.
func granularityFor(from, to time.Time) Granularity {
	span := to.Sub(from)
	switch {
	case span <= 48*time.Hour:
		return GranularityHour
	case span <= 92*24*time.Hour:
		return GranularityDay
	case span <= 2*365*24*time.Hour:
		return GranularityMonth
	default:
		return GranularityYear
	}
}

func bucketStart(t time.Time, g Granularity) time.Time {
	u := t.UTC()
	switch g {
	case GranularityHour:
		return u.Truncate(time.Hour)
	case GranularityDay:
		return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	case GranularityMonth:
		return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(u.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	}
}

func nextBucket(t time.Time, g Granularity) time.Time {
	switch g {
	case GranularityHour:
		return t.Add(time.Hour)
	case GranularityDay:
		return t.AddDate(0, 0, 1)
	case GranularityMonth:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(1, 0, 0)
	}
}

// emptyBuckets lays out the zero-filled bucket sequence covering [from, to).
func emptyBuckets(from, to time.Time, g Granularity) []StatBucket {
	var buckets []StatBucket
	for t := bucketStart(from, g); t.Before(to); t = nextBucket(t, g) {
		buckets = append(buckets, StatBucket{Start: t})
	}
	return buckets
}

// Detailed returns bucketed activity for a user over [from, to). Hourly
// buckets are assembled from the result rows themselves; wider buckets
// fold the daily aggregates, weighting averages by result count.
func (s *StatsService) Detailed(userID uint, from, to time.Time) (Granularity, []StatBucket, error) {
	g := granularityFor(from, to)
	buckets := emptyBuckets(from, to, g)
	index := make(map[time.Time]int, len(buckets))
	for i, b := range buckets {
		index[b.Start] = i
	}

	if g == GranularityHour {
		results, err := s.ResultRepo.FindCreatedBetween(userID, from, to)
		if err != nil {
			return g, nil, err
		}
		for _, res := range results {
			i, ok := index[bucketStart(res.CreatedAt, g)]
			if !ok {
				continue
			}
			b := &buckets[i]
			b.AvgOverall = (b.AvgOverall*float64(b.Results) + res.Overall) / float64(b.Results+1)
			b.Results++
		}
		return g, buckets, nil
	}

	rows, err := s.StatsRepo.FindDailyRange(userID, from, to)
	if err != nil {
		return g, nil, err
	}
	for _, row := range rows {
		i, ok := index[bucketStart(row.Date, g)]
		if !ok {
			continue
		}
		b := &buckets[i]
		n := row.Results.Created
		if b.Results+n > 0 {
			b.AvgOverall = (b.AvgOverall*float64(b.Results) + row.Results.AvgOverall*float64(n)) / float64(b.Results+n)
		}
		b.Results += n
		b.Submissions += row.Submissions.Created
	}
	return g, buckets, nil
}

// RecalculateUserStats rebuilds a user's lifetime aggregate from the
// source tables, replacing whatever the incremental pipeline had.
func (s *StatsService) RecalculateUserStats(userID uint) (*model.UserStat, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	stat, err := s.StatsRepo.FindOrCreateUserStat(user.ID, user.Role, user.SupervisorID)
	if err != nil {
		return nil, err
	}

	tests, err := s.TestRepo.CountsByCreator(userID)
	if err != nil {
		return nil, err
	}
	subs, err := s.SubmissionRepo.CountsByTeacher(userID)
	if err != nil {
		return nil, err
	}
	links, err := s.LinkRepo.CountsByCreator(userID)
	if err != nil {
		return nil, err
	}
	templates, err := s.TemplateRepo.CountsByCreator(userID)
	if err != nil {
		return nil, err
	}
	results, err := s.ResultRepo.FindByCreator(userID)
	if err != nil {
		return nil, err
	}

	stat.Tests = tests
	stat.Submissions = subs
	stat.Links = links
	stat.Templates = templates
	stat.Results = summarizeResults(results)
	stat.Meta.LastUpdated = time.Now().UTC()
	if err := s.StatsRepo.SaveUserStat(stat); err != nil {
		return nil, err
	}
	return stat, nil
}

// Backfill rebuilds the daily result counters for every user over
// [from, to), one user and one day at a time. Counters that cannot be
// replayed from the results table are left untouched.
func (s *StatsService) Backfill(from, to time.Time) error {
	ids, err := s.UserRepo.FindAllIDs()
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := s.backfillUser(id, from, to); err != nil {
			logger.Log.Error("backfill failed for user", zap.Uint("user", id), zap.Error(err))
		}
	}
	return nil
}

func (s *StatsService) backfillUser(userID uint, from, to time.Time) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return err
	}
	for day := repository.DayOf(from); day.Before(to); day = day.AddDate(0, 0, 1) {
		next := day.AddDate(0, 0, 1)
		results, err := s.ResultRepo.FindCreatedBetween(userID, day, next)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			continue
		}
		stat, err := s.StatsRepo.FindOrCreateDaily(user.ID, user.Role, user.SupervisorID, day)
		if err != nil {
			return err
		}
		stat.Results = summarizeResults(results)
		stat.Meta.Backfilled = true
		stat.Meta.LastUpdated = time.Now().UTC()
		if err := s.StatsRepo.SaveDaily(stat); err != nil {
			return err
		}
	}
	return nil
}

// summarizeResults computes the result counters and plain means over a
// full result set.
func summarizeResults(results []*model.Result) model.ResultStats {
	var out model.ResultStats
	if len(results) == 0 {
		return out
	}
	for _, r := range results {
		out.AvgOverall += r.Overall
		out.AvgReading += r.Reading
		out.AvgWriting += r.Writing
		out.AvgSpeaking += r.Speaking
		out.AvgListening += r.Listening
	}
	n := float64(len(results))
	out.Created = len(results)
	out.Active = len(results)
	out.AvgOverall /= n
	out.AvgReading /= n
	out.AvgWriting /= n
	out.AvgSpeaking /= n
	out.AvgListening /= n
	return out
}

// UserStats returns the lifetime aggregate, zero-valued when the pipeline
// has not touched the user yet.
func (s *StatsService) UserStats(userID uint) (*model.UserStat, error) {
	stat, err := s.StatsRepo.FindUserStat(userID)
	if err == nil {
		return stat, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	return &model.UserStat{UserID: user.ID, Role: user.Role, SupervisorID: user.SupervisorID}, nil
}
