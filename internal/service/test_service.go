package service

import (
	"context"
	"time"

	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/repository"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/util"

	"gorm.io/gorm"
)

type TestService struct {
	TestRepo *repository.TestRepository
	PartRepo *repository.PartRepository
	Stats    *StatsService
}

func NewTestService(testRepo *repository.TestRepository, partRepo *repository.PartRepository, stats *StatsService) *TestService {
	return &TestService{
		TestRepo: testRepo,
		PartRepo: partRepo,
		Stats:    stats,
	}
}

type CreateTestInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Create builds a test with one empty part per authored module, so the
// editor always has somewhere to put content.
func (s *TestService) Create(ctx context.Context, in CreateTestInput, creator *model.User) (*model.Test, error) {
	test := &model.Test{
		Title:        in.Title,
		Description:  in.Description,
		Image:        in.Image,
		CreatedByID:  creator.ID,
		SupervisorID: creator.SupervisorID,
		Reading:      model.TestModule{PartsCount: 1, Duration: 60},
		Writing:      model.TestModule{PartsCount: 1, Duration: 60},
		Listening:    model.TestModule{PartsCount: 1, Duration: 30},
	}
	test.RecalculateTotalParts()

	err := s.TestRepo.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(test).Error; err != nil {
			return err
		}
		for _, m := range model.AuthoredModules {
			part := &model.Part{
				TestID:      test.ID,
				Module:      m,
				Number:      1,
				CreatedByID: creator.ID,
			}
			if err := tx.Create(part).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Stats.Record(ctx, creator.ID, time.Now(), Delta{Tests: TestDelta{Created: 1, Active: 1}})
	return test, nil
}

func (s *TestService) Get(id uint) (*model.Test, error) {
	test, err := s.TestRepo.FindByIDWithContent(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrTestNotFound
	}
	return test, err
}

func (s *TestService) ListByCreator(creatorID uint) ([]*model.Test, error) {
	return s.TestRepo.FindByCreator(creatorID)
}

func (s *TestService) ListBySupervisor(supervisorID uint) ([]*model.Test, error) {
	return s.TestRepo.FindBySupervisor(supervisorID)
}

type UpdateTestInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Durations   map[model.Module]int `json:"durations"`
}

func (s *TestService) Update(id uint, in UpdateTestInput) (*model.Test, error) {
	test, err := s.TestRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrTestNotFound
		}
		return nil, err
	}
	if in.Title != nil {
		test.Title = *in.Title
	}
	if in.Description != nil {
		test.Description = *in.Description
	}
	if in.Image != nil {
		test.Image = *in.Image
	}
	for m, d := range in.Durations {
		if mod := test.ModuleOf(m); mod != nil && d > 0 {
			mod.Duration = d
		}
	}
	if err := s.TestRepo.Update(test); err != nil {
		return nil, err
	}
	return test, nil
}

// Delete soft-deletes a test. Parts and sections stay in place so results
// can still be graded against the original content.
func (s *TestService) Delete(ctx context.Context, id uint) error {
	test, err := s.TestRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrTestNotFound
		}
		return err
	}
	if err := s.TestRepo.SoftDelete(id, time.Now().UTC()); err != nil {
		return err
	}
	s.Stats.Record(ctx, test.CreatedByID, time.Now(), Delta{Tests: TestDelta{Deleted: 1, Active: -1}})
	return nil
}

// Copy duplicates a test with all its parts and sections for a new owner.
func (s *TestService) Copy(ctx context.Context, id uint, owner *model.User) (*model.Test, error) {
	src, err := s.TestRepo.FindByIDWithContent(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrTestNotFound
		}
		return nil, err
	}

	dup := &model.Test{
		Title:          src.Title,
		Description:    src.Description,
		Image:          src.Image,
		CreatedByID:    owner.ID,
		SupervisorID:   owner.SupervisorID,
		OriginalTestID: &src.ID,
		Reading:        src.Reading,
		Writing:        src.Writing,
		Listening:      src.Listening,
		TotalParts:     src.TotalParts,
	}

	err = s.TestRepo.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(dup).Error; err != nil {
			return err
		}
		for i := range src.Parts {
			part := src.Parts[i]
			sections := part.Sections
			newPart := model.Part{
				TestID:         dup.ID,
				Module:         part.Module,
				Number:         part.Number,
				Description:    part.Description,
				TotalQuestions: part.TotalQuestions,
				CreatedByID:    owner.ID,
			}
			if err := tx.Create(&newPart).Error; err != nil {
				return err
			}
			for j := range sections {
				sec := sections[j]
				newSec := model.Section{
					PartID:         newPart.ID,
					TestID:         dup.ID,
					Module:         sec.Module,
					Type:           sec.Type,
					Title:          sec.Title,
					Description:    sec.Description,
					Content:        sec.Content,
					QuestionsCount: sec.QuestionsCount,
					CreatedByID:    owner.ID,
					SupervisorID:   owner.SupervisorID,
				}
				if err := tx.Create(&newSec).Error; err != nil {
					return err
				}
			}
		}
		return tx.Model(&model.Test{}).
			Where("id = ?", src.ID).
			Update("copy_count", gorm.Expr("copy_count + 1")).
			Error
	})
	if err != nil {
		return nil, err
	}

	s.Stats.Record(ctx, owner.ID, time.Now(), Delta{Tests: TestDelta{Created: 1, Active: 1}})
	return dup, nil
}
