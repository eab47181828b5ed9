package service

import (
	"context"
	"errors"
	"time"

	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/repository"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/scoring"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/util"
	"github.com/yaxyobekuz/ielts-mock-backend/pkg/monitoring"

	"gorm.io/gorm"
)

type ResultService struct {
	ResultRepo     *repository.ResultRepository
	SubmissionRepo *repository.SubmissionRepository
	PartRepo       *repository.PartRepository
	TestRepo       *repository.TestRepository
	Stats          *StatsService
}

func NewResultService(
	resultRepo *repository.ResultRepository,
	submissionRepo *repository.SubmissionRepository,
	partRepo *repository.PartRepository,
	testRepo *repository.TestRepository,
	stats *StatsService,
) *ResultService {
	return &ResultService{
		ResultRepo:     resultRepo,
		SubmissionRepo: submissionRepo,
		PartRepo:       partRepo,
		TestRepo:       testRepo,
		Stats:          stats,
	}
}

// GradeInput is the grader's manual portion of a result: writing and
// speaking rubric scores, plus optional overrides for the auto-graded
// reading and listening bands.
type GradeInput struct {
	WritingTask1 model.WritingTaskCriteria `json:"writingTask1"`
	WritingTask2 model.WritingTaskCriteria `json:"writingTask2"`
	Speaking     model.SpeakingCriteria    `json:"speaking"`

	ReadingOverride   *float64 `json:"reading"`
	ListeningOverride *float64 `json:"listening"`
}

func (in GradeInput) validate() error {
	bands := []float64{
		in.WritingTask1.TaskScore, in.WritingTask1.LexicalResource,
		in.WritingTask1.CoherenceAndCohesion, in.WritingTask1.GrammaticalRangeAndAccuracy,
		in.WritingTask2.TaskScore, in.WritingTask2.LexicalResource,
		in.WritingTask2.CoherenceAndCohesion, in.WritingTask2.GrammaticalRangeAndAccuracy,
		in.Speaking.Pronunciation, in.Speaking.LexicalResource,
		in.Speaking.FluencyAndCoherence, in.Speaking.GrammaticalRangeAndAccuracy,
	}
	if in.ReadingOverride != nil {
		bands = append(bands, *in.ReadingOverride)
	}
	if in.ListeningOverride != nil {
		bands = append(bands, *in.ListeningOverride)
	}
	for _, b := range bands {
		if !scoring.ValidBand(b) {
			return util.ErrInvalidScores
		}
	}
	return nil
}

// AnswerKeys extracts the canonical answer keys of a test's gradable
// modules from its current content.
func (s *ResultService) AnswerKeys(testID uint) (scoring.TestAnswerKeys, error) {
	partsByModule := make(map[model.Module][]model.Part, len(model.GradableModules))
	for _, m := range model.GradableModules {
		parts, err := s.PartRepo.FindByTestAndModule(testID, m)
		if err != nil {
			return scoring.TestAnswerKeys{}, err
		}
		partsByModule[m] = parts
	}
	return scoring.ExtractTestKeys(partsByModule), nil
}

// Grade scores a submission: reading and listening are auto-graded from
// the answer key, writing and speaking come from the grader's rubric.
// The result and the submission's scored latch commit in one transaction,
// so a submission can never gain two results.
func (s *ResultService) Grade(ctx context.Context, submissionID uint, in GradeInput, grader *model.User) (*model.Result, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	submission, err := s.SubmissionRepo.FindByID(submissionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrSubmissionNotFound
		}
		return nil, err
	}
	if submission.IsScored {
		return nil, util.ErrSubmissionIsScored
	}

	if _, err := s.TestRepo.FindByID(submission.TestID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrTestNotFound
		}
		return nil, err
	}

	// A test whose auto-graded modules hold no questions yields empty
	// keys and a raw count of 0 for both; the rubric scores still apply.
	keys, err := s.AnswerKeys(submission.TestID)
	if err != nil {
		return nil, err
	}

	readingAnswers, err := scoring.ParseSubmitted(submission.Answers.Reading)
	if err != nil {
		return nil, util.ErrInvalidProperty
	}
	listeningAnswers, err := scoring.ParseSubmitted(submission.Answers.Listening)
	if err != nil {
		return nil, util.ErrInvalidProperty
	}

	readingBand := scoring.BandForCount(model.ModuleReading, scoring.CountCorrect(readingAnswers, keys.Reading))
	listeningBand := scoring.BandForCount(model.ModuleListening, scoring.CountCorrect(listeningAnswers, keys.Listening))
	writingBand := scoring.WritingBand(in.WritingTask1, in.WritingTask2)
	speakingBand := scoring.SpeakingBand(in.Speaking)

	// The official bands take grader overrides when present; the Server
	// set records what the engine computed regardless.
	official := model.ModuleBands{
		Reading:   readingBand,
		Writing:   writingBand,
		Speaking:  speakingBand,
		Listening: listeningBand,
	}
	if in.ReadingOverride != nil {
		official.Reading = *in.ReadingOverride
	}
	if in.ListeningOverride != nil {
		official.Listening = *in.ListeningOverride
	}
	official.Overall = scoring.OverallBand(official.Reading, official.Writing, official.Speaking, official.Listening)

	server := model.ModuleBands{
		Reading:   readingBand,
		Writing:   writingBand,
		Speaking:  speakingBand,
		Listening: listeningBand,
	}
	server.Overall = scoring.OverallBand(server.Reading, server.Writing, server.Speaking, server.Listening)

	result := &model.Result{
		SubmissionID:     submission.ID,
		TestID:           submission.TestID,
		LinkID:           submission.LinkID,
		StudentID:        submission.StudentID,
		TeacherID:        submission.TeacherID,
		SupervisorID:     submission.SupervisorID,
		CreatedByID:      grader.ID,
		ModuleBands:      official,
		Server:           server,
		WritingTask1:     in.WritingTask1,
		WritingTask2:     in.WritingTask2,
		SpeakingCriteria: in.Speaking,
	}

	if err := s.ResultRepo.CreateForSubmission(result); err != nil {
		if errors.Is(err, repository.ErrAlreadyScored) {
			return nil, util.ErrSubmissionIsScored
		}
		return nil, err
	}
	monitoring.SubmissionsGraded.Inc()

	s.Stats.Record(ctx, gradeCreditUserID(grader, submission.TeacherID), time.Now(), Delta{
		Submissions: SubmissionDelta{Graded: 1, Ungraded: -1},
		Results:     ResultDelta{Created: 1, Active: 1},
		Bands: &BandSample{
			Overall:   official.Overall,
			Reading:   official.Reading,
			Writing:   official.Writing,
			Speaking:  official.Speaking,
			Listening: official.Listening,
		},
	})
	return result, nil
}

// gradeCreditUserID picks whose aggregates a grading delta belongs to.
// A supervisor grading on a teacher's behalf credits the owning teacher,
// whose lifetime update then rolls up to the supervisor as usual.
func gradeCreditUserID(grader *model.User, teacherID uint) uint {
	if grader.Role == model.Supervisor && teacherID != 0 && teacherID != grader.ID {
		return teacherID
	}
	return grader.ID
}

func (s *ResultService) Get(id uint) (*model.Result, error) {
	result, err := s.ResultRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrResultNotFound
	}
	return result, err
}

func (s *ResultService) GetBySubmission(submissionID uint) (*model.Result, error) {
	result, err := s.ResultRepo.FindBySubmission(submissionID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrResultNotFound
	}
	return result, err
}

func (s *ResultService) ListByStudent(studentID uint) ([]*model.Result, error) {
	return s.ResultRepo.FindByStudent(studentID)
}

func (s *ResultService) ListByTeacher(teacherID uint) ([]*model.Result, error) {
	return s.ResultRepo.FindByTeacher(teacherID)
}
