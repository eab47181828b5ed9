package repository

import (
	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"

	"gorm.io/gorm"
)

type TemplateRepository struct {
	DB *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{DB: db}
}

func (r *TemplateRepository) Create(template *model.Template) error {
	return r.DB.Create(template).Error
}

func (r *TemplateRepository) FindByID(id uint) (*model.Template, error) {
	var template model.Template
	err := r.DB.First(&template, id).Error
	return &template, err
}

func (r *TemplateRepository) FindActive() ([]*model.Template, error) {
	var templates []*model.Template
	err := r.DB.Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&templates).Error
	return templates, err
}

// CountsByCreator tallies a user's templates for stat recomputation.
// Soft-deleted rows still count toward created.
func (r *TemplateRepository) CountsByCreator(userID uint) (model.TemplateStats, error) {
	var out model.TemplateStats
	var created, active int64
	if err := r.DB.Unscoped().Model(&model.Template{}).
		Where("created_by_id = ?", userID).
		Count(&created).Error; err != nil {
		return out, err
	}
	if err := r.DB.Model(&model.Template{}).
		Where("created_by_id = ? AND is_active = ?", userID, true).
		Count(&active).Error; err != nil {
		return out, err
	}
	out.Created = int(created)
	out.Active = int(active)
	out.Deleted = int(created) - int(active)
	return out, nil
}

func (r *TemplateRepository) Update(template *model.Template) error {
	return r.DB.Save(template).Error
}

func (r *TemplateRepository) Delete(template *model.Template) error {
	return r.DB.Delete(template).Error
}
