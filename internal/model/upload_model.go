package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TempUploadModel struct {
	ID           string `gorm:"type:uuid;primary_key"`
	Key          string `gorm:"not null"`
	Name         string `gorm:"not null"`
	URL          string `gorm:"type:varchar(500);not null"`
	UploadedByID string `gorm:"type:uuid;index;not null"`
	CreatedAt    time.Time
}

func (TempUploadModel) TableName() string {
	return "temp_uploads"
}

func (t *TempUploadModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

type ImpersonationLogModel struct {
	ID             string `gorm:"type:uuid;primary_key"`
	AdminID        string `gorm:"type:uuid;index;not null"`
	ImpersonatedID string `gorm:"type:uuid;index;not null"`
	CreatedAt      time.Time
}

func (ImpersonationLogModel) TableName() string {
	return "impersonation_logs"
}

func (l *ImpersonationLogModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
