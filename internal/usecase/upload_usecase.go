package usecase

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"gamehub/internal/apperr"
	"gamehub/internal/entity"
	"gamehub/internal/repo/persistent"
	"gamehub/pkg/logger"
)

type UploadInput struct {
	FileName    string
	ContentType string
	Body        io.Reader
}

type UploadUseCase interface {
	Register(userID string, files []UploadInput) ([]*entity.TempUpload, error)
	List(userID string) ([]*entity.TempUpload, error)
	Clear(userID string) (string, error)
}

type uploadUseCase struct {
	uploads persistent.TempUploadRepository
	store   ObjectStore
	log     *logger.Logger
}

func NewUploadUseCase(
	uploads persistent.TempUploadRepository,
	store ObjectStore,
	log *logger.Logger,
) UploadUseCase {
	return &uploadUseCase{uploads: uploads, store: store, log: log}
}

func (uc *uploadUseCase) Register(userID string, files []UploadInput) ([]*entity.TempUpload, error) {
	if len(files) == 0 {
		return nil, apperr.Invalid("no files provided")
	}

	created := make([]*entity.TempUpload, 0, len(files))
	for i, file := range files {
		key := fmt.Sprintf("temp/%s/%d-%d%s", userID, time.Now().UnixNano(), i, filepath.Ext(file.FileName))
		url, err := uc.store.UploadFile(key, file.Body, file.ContentType)
		if err != nil {
			uc.log.Error("[uploads] object upload failed for %s: %v", userID, err)
			return nil, apperr.ErrInternal
		}

		upload := &entity.TempUpload{
			Key:          key,
			Name:         file.FileName,
			URL:          url,
			UploadedByID: userID,
		}
		if err := uc.uploads.Create(upload); err != nil {
			uc.log.Error("[uploads] registration failed for %s: %v", userID, err)
			return nil, apperr.ErrInternal
		}
		created = append(created, upload)
	}
	return created, nil
}

func (uc *uploadUseCase) List(userID string) ([]*entity.TempUpload, error) {
	uploads, err := uc.uploads.ListByUser(userID)
	if err != nil {
		uc.log.Error("[uploads] listing failed for %s: %v", userID, err)
		return nil, apperr.ErrInternal
	}
	return uploads, nil
}

// Clear removes every temp upload of the user: rows first, then the backing
// objects. A failed object delete is logged and skipped so one stale blob
// cannot wedge the reset.
func (uc *uploadUseCase) Clear(userID string) (string, error) {
	removed, err := uc.uploads.DeleteByUser(userID)
	if err != nil {
		uc.log.Error("[uploads] clear failed for %s: %v", userID, err)
		return "", apperr.ErrInternal
	}

	for _, upload := range removed {
		if upload.Key == "" {
			continue
		}
		if err := uc.store.DeleteFile(upload.Key); err != nil {
			uc.log.Warn("[uploads] object %s not removed: %v", upload.Key, err)
		}
	}
	return fmt.Sprintf("Removed %d uploads", len(removed)), nil
}
