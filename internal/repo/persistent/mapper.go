package persistent

import (
	"gamehub/internal/entity"
	"gamehub/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	googleID := ""
	if m.GoogleID != nil {
		googleID = *m.GoogleID
	}
	imageID := ""
	if m.ImageID != nil {
		imageID = *m.ImageID
	}

	return &entity.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		Password:     m.Password,
		Provider:     entity.AuthProvider(m.Provider),
		GoogleID:     googleID,
		ImageID:      imageID,
		Image:        ToImageEntity(m.Image),
		Roles:        entity.RolesFromNames(m.Roles),
		IsActive:     m.IsActive,
		TokenVersion: m.TokenVersion,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    m.DeletedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	var googleID *string
	if e.GoogleID != "" {
		googleID = &e.GoogleID
	}
	var imageID *string
	if e.ImageID != "" {
		imageID = &e.ImageID
	}

	return &model.UserModel{
		ID:           e.ID,
		Username:     e.Username,
		Email:        e.Email,
		Password:     e.Password,
		Provider:     string(e.Provider),
		GoogleID:     googleID,
		ImageID:      imageID,
		Roles:        entity.RoleNames(e.Roles),
		IsActive:     e.IsActive,
		TokenVersion: e.TokenVersion,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
		DeletedAt:    e.DeletedAt,
	}
}

func ToImageEntity(m *model.ImageModel) *entity.Image {
	if m == nil {
		return nil
	}

	return &entity.Image{
		ID:   m.ID,
		Key:  m.Key,
		Name: m.Name,
		URL:  m.URL,
	}
}

func ToImageModel(e *entity.Image) *model.ImageModel {
	if e == nil {
		return nil
	}

	return &model.ImageModel{
		ID:   e.ID,
		Key:  e.Key,
		Name: e.Name,
		URL:  e.URL,
	}
}

func ToTempUploadEntity(m *model.TempUploadModel) *entity.TempUpload {
	if m == nil {
		return nil
	}

	return &entity.TempUpload{
		ID:           m.ID,
		Key:          m.Key,
		Name:         m.Name,
		URL:          m.URL,
		UploadedByID: m.UploadedByID,
		CreatedAt:    m.CreatedAt,
	}
}

func ToImpersonationLogEntity(m *model.ImpersonationLogModel) *entity.ImpersonationLog {
	if m == nil {
		return nil
	}

	return &entity.ImpersonationLog{
		ID:             m.ID,
		AdminID:        m.AdminID,
		ImpersonatedID: m.ImpersonatedID,
		CreatedAt:      m.CreatedAt,
	}
}
