package repository

import (
	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"

	"gorm.io/gorm"
)

type PartRepository struct {
	DB *gorm.DB
}

func NewPartRepository(db *gorm.DB) *PartRepository {
	return &PartRepository{DB: db}
}

func (r *PartRepository) Create(part *model.Part) error {
	return r.DB.Create(part).Error
}

func (r *PartRepository) FindByID(id uint) (*model.Part, error) {
	var part model.Part
	err := r.DB.First(&part, id).Error
	return &part, err
}

func (r *PartRepository) FindByIDWithSections(id uint) (*model.Part, error) {
	var part model.Part
	err := r.DB.
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("sections.id")
		}).
		First(&part, id).Error
	return &part, err
}

// FindByTestAndModule returns a module's parts ordered by their number.
func (r *PartRepository) FindByTestAndModule(testID uint, module model.Module) ([]model.Part, error) {
	var parts []model.Part
	err := r.DB.Where("test_id = ? AND module = ?", testID, module).
		Order("number").
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("sections.id")
		}).
		Find(&parts).Error
	return parts, err
}

func (r *PartRepository) CountByTestAndModule(testID uint, module model.Module) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Part{}).
		Where("test_id = ? AND module = ?", testID, module).
		Count(&count).Error
	return count, err
}

func (r *PartRepository) Update(part *model.Part) error {
	return r.DB.Save(part).Error
}

func (r *PartRepository) UpdateTotalQuestions(id uint, total int) error {
	return r.DB.Model(&model.Part{}).
		Where("id = ?", id).
		Update("total_questions", total).
		Error
}

// DeleteAndRenumber removes a part together with its sections and closes
// the numbering gap so part numbers stay contiguous from 1.
func (r *PartRepository) DeleteAndRenumber(part *model.Part) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("part_id = ?", part.ID).Delete(&model.Section{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(part).Error; err != nil {
			return err
		}
		return tx.Model(&model.Part{}).
			Where("test_id = ? AND module = ? AND number > ?", part.TestID, part.Module, part.Number).
			Update("number", gorm.Expr("number - 1")).
			Error
	})
}
