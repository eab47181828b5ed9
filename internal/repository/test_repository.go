package repository

import (
	"time"

	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"

	"gorm.io/gorm"
)

type TestRepository struct {
	DB *gorm.DB
}

func NewTestRepository(db *gorm.DB) *TestRepository {
	return &TestRepository{DB: db}
}

func (r *TestRepository) Create(test *model.Test) error {
	return r.DB.Create(test).Error
}

func (r *TestRepository) FindByID(id uint) (*model.Test, error) {
	var test model.Test
	err := r.DB.Where("is_deleted = ?", false).First(&test, id).Error
	return &test, err
}

// FindByIDWithContent loads a test with its parts and sections, parts
// ordered by number and sections in authoring order.
func (r *TestRepository) FindByIDWithContent(id uint) (*model.Test, error) {
	var test model.Test
	err := r.DB.Where("is_deleted = ?", false).
		Preload("Parts", func(db *gorm.DB) *gorm.DB {
			return db.Order("parts.module, parts.number")
		}).
		Preload("Parts.Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("sections.id")
		}).
		Preload("Audios").
		First(&test, id).Error
	return &test, err
}

func (r *TestRepository) FindByCreator(creatorID uint) ([]*model.Test, error) {
	var tests []*model.Test
	err := r.DB.Where("created_by_id = ? AND is_deleted = ?", creatorID, false).
		Order("created_at DESC").
		Find(&tests).Error
	return tests, err
}

func (r *TestRepository) FindBySupervisor(supervisorID uint) ([]*model.Test, error) {
	var tests []*model.Test
	err := r.DB.Where("supervisor_id = ? AND is_deleted = ?", supervisorID, false).
		Order("created_at DESC").
		Find(&tests).Error
	return tests, err
}

func (r *TestRepository) Update(test *model.Test) error {
	return r.DB.Save(test).Error
}

func (r *TestRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.DB.Model(&model.Test{}).Where("id = ?", id).Updates(fields).Error
}

// SoftDelete marks the test deleted without touching its parts so that
// existing submissions can still be graded against it.
func (r *TestRepository) SoftDelete(id uint, at time.Time) error {
	return r.DB.Model(&model.Test{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]interface{}{
			"is_deleted":   true,
			"deleted_time": at,
		}).Error
}

func (r *TestRepository) IncrementSubmissions(id uint) error {
	return r.DB.Model(&model.Test{}).
		Where("id = ?", id).
		Update("total_submissions", gorm.Expr("total_submissions + 1")).
		Error
}

// CountsByCreator tallies a user's tests for stat recomputation.
func (r *TestRepository) CountsByCreator(userID uint) (model.TestStats, error) {
	var out model.TestStats
	var created, deleted int64
	if err := r.DB.Model(&model.Test{}).
		Where("created_by_id = ?", userID).
		Count(&created).Error; err != nil {
		return out, err
	}
	if err := r.DB.Model(&model.Test{}).
		Where("created_by_id = ? AND is_deleted = ?", userID, true).
		Count(&deleted).Error; err != nil {
		return out, err
	}
	out.Created = int(created)
	out.Deleted = int(deleted)
	out.Active = int(created - deleted)
	return out, nil
}

func (r *TestRepository) IncrementCopyCount(id uint) error {
	return r.DB.Model(&model.Test{}).
		Where("id = ?", id).
		Update("copy_count", gorm.Expr("copy_count + 1")).
		Error
}
