package service

import (
	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/repository"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/util"

	"gorm.io/gorm"
)

const maxPartsPerModule = 6

type PartService struct {
	PartRepo *repository.PartRepository
	TestRepo *repository.TestRepository
}

func NewPartService(partRepo *repository.PartRepository, testRepo *repository.TestRepository) *PartService {
	return &PartService{
		PartRepo: partRepo,
		TestRepo: testRepo,
	}
}

// moduleAllowed reports whether a module carries authored parts.
func moduleAllowed(m model.Module) bool {
	for _, allowed := range model.AuthoredModules {
		if m == allowed {
			return true
		}
	}
	return false
}

// Add appends a new part at the end of a module's sequence.
func (s *PartService) Add(testID uint, module model.Module, description string, creatorID uint) (*model.Part, error) {
	if !moduleAllowed(module) {
		return nil, util.ErrModuleNotAllowed
	}
	test, err := s.TestRepo.FindByID(testID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrTestNotFound
		}
		return nil, err
	}

	count, err := s.PartRepo.CountByTestAndModule(testID, module)
	if err != nil {
		return nil, err
	}
	if count >= maxPartsPerModule {
		return nil, util.ErrMaxParts
	}

	part := &model.Part{
		TestID:      testID,
		Module:      module,
		Number:      int(count) + 1,
		Description: description,
		CreatedByID: creatorID,
	}
	if err := s.PartRepo.Create(part); err != nil {
		return nil, err
	}

	test.ModuleOf(module).PartsCount = int(count) + 1
	test.RecalculateTotalParts()
	if err := s.TestRepo.Update(test); err != nil {
		return nil, err
	}
	return part, nil
}

func (s *PartService) Get(id uint) (*model.Part, error) {
	part, err := s.PartRepo.FindByIDWithSections(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrPartNotFound
	}
	return part, err
}

func (s *PartService) Update(id uint, description string) (*model.Part, error) {
	part, err := s.PartRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrPartNotFound
		}
		return nil, err
	}
	part.Description = description
	if err := s.PartRepo.Update(part); err != nil {
		return nil, err
	}
	return part, nil
}

// Delete removes a part and renumbers the survivors so numbers stay
// contiguous from 1.
func (s *PartService) Delete(id uint) error {
	part, err := s.PartRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrPartNotFound
		}
		return err
	}
	if err := s.PartRepo.DeleteAndRenumber(part); err != nil {
		return err
	}

	test, err := s.TestRepo.FindByID(part.TestID)
	if err != nil {
		return err
	}
	if mod := test.ModuleOf(part.Module); mod != nil && mod.PartsCount > 0 {
		mod.PartsCount--
	}
	test.RecalculateTotalParts()
	return s.TestRepo.Update(test)
}

// RenumberAfterDelete computes the new number for each remaining part
// once the part holding deletedNumber is gone.
func RenumberAfterDelete(numbers []int, deletedNumber int) []int {
	out := make([]int, 0, len(numbers))
	for _, n := range numbers {
		switch {
		case n == deletedNumber:
			continue
		case n > deletedNumber:
			out = append(out, n-1)
		default:
			out = append(out, n)
		}
	}
	return out
}
