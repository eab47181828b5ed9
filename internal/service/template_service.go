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

type TemplateService struct {
	TemplateRepo *repository.TemplateRepository
	Stats        *StatsService
}

func NewTemplateService(templateRepo *repository.TemplateRepository, stats *StatsService) *TemplateService {
	return &TemplateService{
		TemplateRepo: templateRepo,
		Stats:        stats,
	}
}

type TemplateInput struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Blueprint   json.RawMessage `json:"blueprint"`
}

func (s *TemplateService) Create(ctx context.Context, in TemplateInput, creatorID uint) (*model.Template, error) {
	template := &model.Template{
		Title:       in.Title,
		Description: in.Description,
		Blueprint:   in.Blueprint,
		CreatedByID: creatorID,
		IsActive:    true,
	}
	if err := s.TemplateRepo.Create(template); err != nil {
		return nil, err
	}
	s.Stats.Record(ctx, creatorID, time.Now(), Delta{Templates: TemplateDelta{Created: 1, Active: 1}})
	return template, nil
}

func (s *TemplateService) Get(id uint) (*model.Template, error) {
	template, err := s.TemplateRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrTemplateNotFound
	}
	return template, err
}

func (s *TemplateService) List() ([]*model.Template, error) {
	return s.TemplateRepo.FindActive()
}

func (s *TemplateService) Update(id uint, in TemplateInput) (*model.Template, error) {
	template, err := s.TemplateRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrTemplateNotFound
		}
		return nil, err
	}
	template.Title = in.Title
	template.Description = in.Description
	if in.Blueprint != nil {
		template.Blueprint = in.Blueprint
	}
	if err := s.TemplateRepo.Update(template); err != nil {
		return nil, err
	}
	return template, nil
}

func (s *TemplateService) Delete(ctx context.Context, id uint) error {
	template, err := s.TemplateRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrTemplateNotFound
		}
		return err
	}
	if err := s.TemplateRepo.Delete(template); err != nil {
		return err
	}
	s.Stats.Record(ctx, template.CreatedByID, time.Now(), Delta{Templates: TemplateDelta{Deleted: 1, Active: -1}})
	return nil
}
