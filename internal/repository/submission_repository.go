package repository

import (
	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) Create(submission *model.Submission) error {
	return r.DB.Create(submission).Error
}

func (r *SubmissionRepository) FindByID(id uint) (*model.Submission, error) {
	var submission model.Submission
	err := r.DB.First(&submission, id).Error
	return &submission, err
}

func (r *SubmissionRepository) FindByStudent(studentID uint) ([]*model.Submission, error) {
	var submissions []*model.Submission
	err := r.DB.Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&submissions).Error
	return submissions, err
}

func (r *SubmissionRepository) FindByTeacher(teacherID uint) ([]*model.Submission, error) {
	var submissions []*model.Submission
	err := r.DB.Where("teacher_id = ?", teacherID).
		Order("created_at DESC").
		Find(&submissions).Error
	return submissions, err
}

func (r *SubmissionRepository) FindUngradedByTeacher(teacherID uint) ([]*model.Submission, error) {
	var submissions []*model.Submission
	err := r.DB.Where("teacher_id = ? AND is_scored = ?", teacherID, false).
		Order("created_at").
		Find(&submissions).Error
	return submissions, err
}

// CountsByTeacher tallies a teacher's submissions for stat recomputation.
func (r *SubmissionRepository) CountsByTeacher(teacherID uint) (model.SubmissionStats, error) {
	var out model.SubmissionStats
	var created, graded int64
	if err := r.DB.Model(&model.Submission{}).
		Where("teacher_id = ?", teacherID).
		Count(&created).Error; err != nil {
		return out, err
	}
	if err := r.DB.Model(&model.Submission{}).
		Where("teacher_id = ? AND is_scored = ?", teacherID, true).
		Count(&graded).Error; err != nil {
		return out, err
	}
	out.Created = int(created)
	out.Graded = int(graded)
	out.Ungraded = int(created - graded)
	return out, nil
}

func (r *SubmissionRepository) Update(submission *model.Submission) error {
	return r.DB.Save(submission).Error
}

func (r *SubmissionRepository) UpdateAnswers(id uint, answers model.ModuleAnswers) error {
	return r.DB.Model(&model.Submission{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"answers_reading":   answers.Reading,
			"answers_writing":   answers.Writing,
			"answers_listening": answers.Listening,
		}).Error
}
