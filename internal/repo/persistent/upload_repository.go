package persistent

import (
	"gamehub/internal/entity"
	"gamehub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ImageRepository interface {
	Create(image *entity.Image) error
	GetByID(id string) (*entity.Image, error)
	// Update overwrites key/name/url of the existing row; avatar changes
	// mutate in place rather than creating new rows.
	Update(image *entity.Image) error
}

type imageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(image *entity.Image) error {
	imageModel := ToImageModel(image)
	if imageModel.ID == "" {
		imageModel.ID = uuid.New().String()
	}
	if err := r.db.Create(imageModel).Error; err != nil {
		return err
	}
	*image = *ToImageEntity(imageModel)
	return nil
}

func (r *imageRepository) GetByID(id string) (*entity.Image, error) {
	var imageModel model.ImageModel
	if err := r.db.Where("id = ?", id).First(&imageModel).Error; err != nil {
		return nil, err
	}
	return ToImageEntity(&imageModel), nil
}

func (r *imageRepository) Update(image *entity.Image) error {
	return r.db.Model(&model.ImageModel{}).Where("id = ?", image.ID).
		Updates(map[string]interface{}{
			"key":  image.Key,
			"name": image.Name,
			"url":  image.URL,
		}).Error
}

type TempUploadRepository interface {
	Create(upload *entity.TempUpload) error
	ListByUser(userID string) ([]*entity.TempUpload, error)
	// DeleteByUser removes every registration for the user and returns the
	// removed rows so the caller can clean up the stored objects.
	DeleteByUser(userID string) ([]*entity.TempUpload, error)
}

type tempUploadRepository struct {
	db *gorm.DB
}

func NewTempUploadRepository(db *gorm.DB) TempUploadRepository {
	return &tempUploadRepository{db: db}
}

func (r *tempUploadRepository) Create(upload *entity.TempUpload) error {
	uploadModel := &model.TempUploadModel{
		ID:           upload.ID,
		Key:          upload.Key,
		Name:         upload.Name,
		URL:          upload.URL,
		UploadedByID: upload.UploadedByID,
	}
	if uploadModel.ID == "" {
		uploadModel.ID = uuid.New().String()
	}
	if err := r.db.Create(uploadModel).Error; err != nil {
		return err
	}
	*upload = *ToTempUploadEntity(uploadModel)
	return nil
}

func (r *tempUploadRepository) ListByUser(userID string) ([]*entity.TempUpload, error) {
	var uploadModels []model.TempUploadModel
	if err := r.db.Where("uploaded_by_id = ?", userID).Order("created_at DESC").Find(&uploadModels).Error; err != nil {
		return nil, err
	}

	uploads := make([]*entity.TempUpload, len(uploadModels))
	for i := range uploadModels {
		uploads[i] = ToTempUploadEntity(&uploadModels[i])
	}
	return uploads, nil
}

func (r *tempUploadRepository) DeleteByUser(userID string) ([]*entity.TempUpload, error) {
	uploads, err := r.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if err := r.db.Where("uploaded_by_id = ?", userID).Delete(&model.TempUploadModel{}).Error; err != nil {
		return nil, err
	}
	return uploads, nil
}

type ImpersonationLogRepository interface {
	Create(adminID, impersonatedID string) error
}

type impersonationLogRepository struct {
	db *gorm.DB
}

func NewImpersonationLogRepository(db *gorm.DB) ImpersonationLogRepository {
	return &impersonationLogRepository{db: db}
}

func (r *impersonationLogRepository) Create(adminID, impersonatedID string) error {
	return r.db.Create(&model.ImpersonationLogModel{
		ID:             uuid.New().String(),
		AdminID:        adminID,
		ImpersonatedID: impersonatedID,
	}).Error
}
