package service

import (
	"encoding/json"

	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/repository"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/scoring"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/util"

	"gorm.io/gorm"
)

type SectionService struct {
	SectionRepo *repository.SectionRepository
	PartRepo    *repository.PartRepository
}

func NewSectionService(sectionRepo *repository.SectionRepository, partRepo *repository.PartRepository) *SectionService {
	return &SectionService{
		SectionRepo: sectionRepo,
		PartRepo:    partRepo,
	}
}

type SectionInput struct {
	Type        model.SectionType `json:"type" binding:"required"`
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	Content     json.RawMessage   `json:"content"`
}

// Create validates the content payload against its declared type, derives
// the question count and appends the section to a part.
func (s *SectionService) Create(partID uint, in SectionInput, creator *model.User) (*model.Section, error) {
	part, err := s.PartRepo.FindByID(partID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrPartNotFound
		}
		return nil, err
	}

	content, err := scoring.DecodeContent(in.Type, in.Content)
	if err != nil {
		return nil, util.ErrInvalidProperty
	}

	section := &model.Section{
		PartID:         part.ID,
		TestID:         part.TestID,
		Module:         part.Module,
		Type:           in.Type,
		Title:          in.Title,
		Description:    in.Description,
		Content:        in.Content,
		QuestionsCount: content.Questions(),
		CreatedByID:    creator.ID,
		SupervisorID:   creator.SupervisorID,
	}
	if err := s.SectionRepo.Create(section); err != nil {
		return nil, err
	}
	if err := s.rollupPart(part.ID); err != nil {
		return nil, err
	}
	return section, nil
}

// Update replaces a section's payload, re-deriving the question count.
// The section type is fixed at creation.
func (s *SectionService) Update(id uint, in SectionInput) (*model.Section, error) {
	section, err := s.SectionRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrSectionNotFound
		}
		return nil, err
	}
	if in.Type != "" && in.Type != section.Type {
		return nil, util.ErrInvalidProperty
	}

	content, err := scoring.DecodeContent(section.Type, in.Content)
	if err != nil {
		return nil, util.ErrInvalidProperty
	}

	section.Title = in.Title
	section.Description = in.Description
	section.Content = in.Content
	section.QuestionsCount = content.Questions()
	if err := s.SectionRepo.Update(section); err != nil {
		return nil, err
	}
	if err := s.rollupPart(section.PartID); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *SectionService) Delete(id uint) error {
	section, err := s.SectionRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrSectionNotFound
		}
		return err
	}
	if err := s.SectionRepo.Delete(section); err != nil {
		return err
	}
	return s.rollupPart(section.PartID)
}

// rollupPart rewrites the part's question total as the sum of its
// sections' derived counts.
func (s *SectionService) rollupPart(partID uint) error {
	sections, err := s.SectionRepo.FindByPart(partID)
	if err != nil {
		return err
	}
	total := 0
	for _, sec := range sections {
		total += sec.QuestionsCount
	}
	return s.PartRepo.UpdateTotalQuestions(partID, total)
}
