package repository

import (
	"errors"
	"time"

	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"

	"gorm.io/gorm"
)

type ResultRepository struct {
	DB *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{DB: db}
}

// ErrAlreadyScored is returned by CreateForSubmission when the guarded
// update hits a submission that was scored concurrently.
var ErrAlreadyScored = errors.New("submission already scored")

// CreateForSubmission inserts the result and flips the submission to
// scored in one transaction. The update is guarded on is_scored so that
// two concurrent graders cannot both succeed: the loser's update matches
// no rows and the whole transaction rolls back.
func (r *ResultRepository) CreateForSubmission(result *model.Result) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(result).Error; err != nil {
			return err
		}
		now := time.Now().UTC()
		res := tx.Model(&model.Submission{}).
			Where("id = ? AND is_scored = ?", result.SubmissionID, false).
			Updates(map[string]interface{}{
				"is_scored": true,
				"scored_at": now,
				"result_id": result.ID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyScored
		}
		return nil
	})
}

func (r *ResultRepository) FindByID(id uint) (*model.Result, error) {
	var result model.Result
	err := r.DB.First(&result, id).Error
	return &result, err
}

func (r *ResultRepository) FindBySubmission(submissionID uint) (*model.Result, error) {
	var result model.Result
	err := r.DB.Where("submission_id = ?", submissionID).First(&result).Error
	return &result, err
}

func (r *ResultRepository) FindByStudent(studentID uint) ([]*model.Result, error) {
	var results []*model.Result
	err := r.DB.Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&results).Error
	return results, err
}

func (r *ResultRepository) FindByTeacher(teacherID uint) ([]*model.Result, error) {
	var results []*model.Result
	err := r.DB.Where("teacher_id = ?", teacherID).
		Order("created_at DESC").
		Find(&results).Error
	return results, err
}

// FindCreatedBetween returns a user's results created inside [from, to),
// oldest first, for stat recomputation.
func (r *ResultRepository) FindCreatedBetween(userID uint, from, to time.Time) ([]*model.Result, error) {
	var results []*model.Result
	err := r.DB.Where("created_by_id = ? AND created_at >= ? AND created_at < ?", userID, from, to).
		Order("created_at").
		Find(&results).Error
	return results, err
}

func (r *ResultRepository) FindByCreator(userID uint) ([]*model.Result, error) {
	var results []*model.Result
	err := r.DB.Where("created_by_id = ?", userID).
		Order("created_at").
		Find(&results).Error
	return results, err
}
