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

	"github.com/google/uuid"
)

// ObjectStore is the blob storage surface the profile and upload flows need.
type ObjectStore interface {
	UploadFile(key string, body io.Reader, contentType string) (string, error)
	DeleteFile(key string) error
}

type AvatarInput struct {
	FileName    string
	ContentType string
	Body        io.Reader
}

type UserUseCase interface {
	Me(userID string) (*entity.User, error)
	GetUser(id string) (*entity.User, error)
	UpdateUsername(userID, username string) (*entity.User, error)
	UpdateAvatar(userID string, input AvatarInput) (*entity.User, error)
}

type userUseCase struct {
	users  persistent.UserRepository
	images persistent.ImageRepository
	store  ObjectStore
	log    *logger.Logger
}

func NewUserUseCase(
	users persistent.UserRepository,
	images persistent.ImageRepository,
	store ObjectStore,
	log *logger.Logger,
) UserUseCase {
	return &userUseCase{users: users, images: images, store: store, log: log}
}

func (uc *userUseCase) Me(userID string) (*entity.User, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		// A valid token whose account is gone or trashed is no longer a
		// session.
		if isNotFound(err) {
			return nil, apperr.ErrUnauthorized
		}
		uc.log.Error("[user] me lookup failed for %s: %v", userID, err)
		return nil, apperr.ErrInternal
	}
	return user, nil
}

func (uc *userUseCase) GetUser(id string) (*entity.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.ErrInvalidID
	}

	user, err := uc.users.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.ErrUserNotFound
		}
		uc.log.Error("[user] lookup failed for %s: %v", id, err)
		return nil, apperr.ErrInternal
	}
	if !user.IsActive {
		return nil, apperr.ErrUserNotFound
	}
	return user, nil
}

func (uc *userUseCase) UpdateUsername(userID, username string) (*entity.User, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.ErrUnauthorized
		}
		uc.log.Error("[user] lookup failed for %s: %v", userID, err)
		return nil, apperr.ErrInternal
	}

	if user.Username != username {
		taken, err := uc.users.UsernameTaken(username)
		if err != nil {
			uc.log.Error("[user] username lookup failed: %v", err)
			return nil, apperr.ErrInternal
		}
		if taken {
			return nil, apperr.ErrUsernameExists
		}
		if err := uc.users.UpdateUsername(userID, username); err != nil {
			uc.log.Error("[user] username update failed for %s: %v", userID, err)
			return nil, apperr.ErrInternal
		}
		user.Username = username
	}
	return user, nil
}

func (uc *userUseCase) UpdateAvatar(userID string, input AvatarInput) (*entity.User, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.ErrUnauthorized
		}
		uc.log.Error("[user] lookup failed for %s: %v", userID, err)
		return nil, apperr.ErrInternal
	}

	key := fmt.Sprintf("avatars/%s/%d%s", userID, time.Now().UnixNano(), filepath.Ext(input.FileName))
	url, err := uc.store.UploadFile(key, input.Body, input.ContentType)
	if err != nil {
		uc.log.Error("[user] avatar upload failed for %s: %v", userID, err)
		return nil, apperr.ErrInternal
	}

	if user.ImageID != "" {
		// One image row per user: replace the object and mutate the row
		// instead of accumulating orphaned records.
		image, err := uc.images.GetByID(user.ImageID)
		if err != nil {
			uc.log.Error("[user] avatar lookup failed for %s: %v", userID, err)
			return nil, apperr.ErrInternal
		}
		if image.Key != "" && image.Key != key {
			if err := uc.store.DeleteFile(image.Key); err != nil {
				uc.log.Warn("[user] stale avatar object %s not removed: %v", image.Key, err)
			}
		}
		image.Key = key
		image.Name = input.FileName
		image.URL = url
		if err := uc.images.Update(image); err != nil {
			uc.log.Error("[user] avatar update failed for %s: %v", userID, err)
			return nil, apperr.ErrInternal
		}
		user.Image = image
		return user, nil
	}

	image := &entity.Image{Key: key, Name: input.FileName, URL: url}
	if err := uc.images.Create(image); err != nil {
		uc.log.Error("[user] avatar create failed for %s: %v", userID, err)
		return nil, apperr.ErrInternal
	}
	if err := uc.users.SetImage(userID, image.ID); err != nil {
		uc.log.Error("[user] avatar attach failed for %s: %v", userID, err)
		return nil, apperr.ErrInternal
	}
	user.ImageID = image.ID
	user.Image = image
	return user, nil
}
