package repository

import (
	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"

	"gorm.io/gorm"
)

type AudioRepository struct {
	DB *gorm.DB
}

func NewAudioRepository(db *gorm.DB) *AudioRepository {
	return &AudioRepository{DB: db}
}

func (r *AudioRepository) Create(audio *model.Audio) error {
	return r.DB.Create(audio).Error
}

func (r *AudioRepository) FindByID(id uint) (*model.Audio, error) {
	var audio model.Audio
	err := r.DB.First(&audio, id).Error
	return &audio, err
}

func (r *AudioRepository) FindByTest(testID uint) ([]*model.Audio, error) {
	var audios []*model.Audio
	err := r.DB.Where("test_id = ?", testID).Order("id").Find(&audios).Error
	return audios, err
}

func (r *AudioRepository) Delete(audio *model.Audio) error {
	return r.DB.Delete(audio).Error
}
