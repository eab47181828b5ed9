package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/repository"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/util"

	"gorm.io/gorm"
)

type SubmissionService struct {
	SubmissionRepo *repository.SubmissionRepository
	LinkRepo       *repository.LinkRepository
	TestRepo       *repository.TestRepository
	Links          *LinkService
	Stats          *StatsService
}

func NewSubmissionService(
	submissionRepo *repository.SubmissionRepository,
	linkRepo *repository.LinkRepository,
	testRepo *repository.TestRepository,
	links *LinkService,
	stats *StatsService,
) *SubmissionService {
	return &SubmissionService{
		SubmissionRepo: submissionRepo,
		LinkRepo:       linkRepo,
		TestRepo:       testRepo,
		Links:          links,
		Stats:          stats,
	}
}

// Start claims a link use and opens a submission for the candidate. The
// submission is owned by the link's creating teacher for grading.
func (s *SubmissionService) Start(ctx context.Context, token string, student *model.User) (*model.Submission, error) {
	link, err := s.Links.FindByToken(token)
	if err != nil {
		return nil, err
	}
	if err := s.Links.Consume(ctx, link); err != nil {
		return nil, err
	}

	submission := &model.Submission{
		TestID:       link.TestID,
		LinkID:       link.ID,
		StudentID:    student.ID,
		TeacherID:    link.CreatedByID,
		SupervisorID: link.SupervisorID,
		StartedAt:    time.Now().UTC(),
	}
	if err := s.SubmissionRepo.Create(submission); err != nil {
		return nil, err
	}
	if err := s.TestRepo.IncrementSubmissions(link.TestID); err != nil {
		return nil, err
	}

	s.Stats.Record(ctx, link.CreatedByID, time.Now(), Delta{
		Submissions: SubmissionDelta{Created: 1, Ungraded: 1},
	})
	return submission, nil
}

type SaveAnswersInput struct {
	Module  model.Module    `json:"module" binding:"required"`
	Answers json.RawMessage `json:"answers" binding:"required"`
}

// SaveAnswers stores one module's answer map. Finished or scored
// submissions are immutable.
func (s *SubmissionService) SaveAnswers(id uint, studentID uint, in SaveAnswersInput) (*model.Submission, error) {
	submission, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if submission.StudentID != studentID {
		return nil, util.ErrSubmissionNotFound
	}
	if submission.IsScored || submission.FinishedAt != nil {
		return nil, util.ErrSubmissionIsScored
	}

	switch in.Module {
	case model.ModuleReading:
		submission.Answers.Reading = in.Answers
	case model.ModuleWriting:
		submission.Answers.Writing = in.Answers
	case model.ModuleListening:
		submission.Answers.Listening = in.Answers
	default:
		return nil, util.ErrModuleNotAllowed
	}

	if err := s.SubmissionRepo.UpdateAnswers(submission.ID, submission.Answers); err != nil {
		return nil, err
	}
	return submission, nil
}

// Finish closes the exam sitting.
func (s *SubmissionService) Finish(id uint, studentID uint) (*model.Submission, error) {
	submission, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if submission.StudentID != studentID {
		return nil, util.ErrSubmissionNotFound
	}
	if submission.FinishedAt != nil {
		return submission, nil
	}
	now := time.Now().UTC()
	submission.FinishedAt = &now
	if err := s.SubmissionRepo.Update(submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *SubmissionService) Get(id uint) (*model.Submission, error) {
	return s.find(id)
}

func (s *SubmissionService) ListByStudent(studentID uint) ([]*model.Submission, error) {
	return s.SubmissionRepo.FindByStudent(studentID)
}

func (s *SubmissionService) ListByTeacher(teacherID uint) ([]*model.Submission, error) {
	return s.SubmissionRepo.FindByTeacher(teacherID)
}

func (s *SubmissionService) ListUngraded(teacherID uint) ([]*model.Submission, error) {
	return s.SubmissionRepo.FindUngradedByTeacher(teacherID)
}

func (s *SubmissionService) find(id uint) (*model.Submission, error) {
	submission, err := s.SubmissionRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrSubmissionNotFound
	}
	return submission, err
}
