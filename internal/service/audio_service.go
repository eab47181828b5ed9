package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/repository"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/util"
	"github.com/yaxyobekuz/ielts-mock-backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AudioService struct {
	AudioRepo *repository.AudioRepository
	TestRepo  *repository.TestRepository
	Storage   StorageProvider
}

func NewAudioService(audioRepo *repository.AudioRepository, testRepo *repository.TestRepository, storage StorageProvider) *AudioService {
	return &AudioService{
		AudioRepo: audioRepo,
		TestRepo:  testRepo,
		Storage:   storage,
	}
}

// Upload stores a listening track, probes its duration and attaches it to
// a test. Probe failures are not fatal: the track is kept with unknown
// duration.
func (s *AudioService) Upload(ctx context.Context, testID uint, title string, file *multipart.FileHeader, creatorID uint) (*model.Audio, error) {
	if _, err := s.TestRepo.FindByID(testID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrTestNotFound
		}
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	// Spool to a temp file so ffprobe can read it.
	tmp, err := os.CreateTemp("", "audio-*"+filepath.Ext(file.Filename))
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, src); err != nil {
		return nil, err
	}

	var duration float64
	info, err := util.GetAudioInfo(tmp.Name())
	if err != nil {
		logger.Log.Warn("audio probe failed", zap.String("file", file.Filename), zap.Error(err))
	} else {
		duration = info.Duration
	}

	objectKey := fmt.Sprintf("audios/%d/%s%s", testID, uuid.NewString(), filepath.Ext(file.Filename))
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	url, err := s.Storage.Upload(ctx, objectKey, tmp, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	audio := &model.Audio{
		TestID:      testID,
		Title:       title,
		ObjectKey:   objectKey,
		URL:         url,
		Duration:    duration,
		Size:        file.Size,
		CreatedByID: creatorID,
	}
	if err := s.AudioRepo.Create(audio); err != nil {
		return nil, err
	}
	return audio, nil
}

func (s *AudioService) ListByTest(testID uint) ([]*model.Audio, error) {
	return s.AudioRepo.FindByTest(testID)
}

func (s *AudioService) Delete(ctx context.Context, id uint) error {
	audio, err := s.AudioRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrTestNotFound
		}
		return err
	}
	deadline, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := s.Storage.Delete(deadline, audio.ObjectKey); err != nil {
		logger.Log.Warn("audio object delete failed", zap.String("key", audio.ObjectKey), zap.Error(err))
	}
	return s.AudioRepo.Delete(audio)
}
