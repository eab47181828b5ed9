package repository

import (
	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"

	"gorm.io/gorm"
)

type SectionRepository struct {
	DB *gorm.DB
}

func NewSectionRepository(db *gorm.DB) *SectionRepository {
	return &SectionRepository{DB: db}
}

func (r *SectionRepository) Create(section *model.Section) error {
	return r.DB.Create(section).Error
}

func (r *SectionRepository) FindByID(id uint) (*model.Section, error) {
	var section model.Section
	err := r.DB.First(&section, id).Error
	return &section, err
}

func (r *SectionRepository) FindByPart(partID uint) ([]model.Section, error) {
	var sections []model.Section
	err := r.DB.Where("part_id = ?", partID).Order("id").Find(&sections).Error
	return sections, err
}

func (r *SectionRepository) Update(section *model.Section) error {
	return r.DB.Save(section).Error
}

func (r *SectionRepository) Delete(section *model.Section) error {
	return r.DB.Delete(section).Error
}
