package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// UserModel is the storage shape of a platform account. DeletedAt is a plain
// nullable column rather than gorm.DeletedAt: the trash is a first-class state
// with restore and unscoped admin listing, so scoping is enforced in the
// repository instead of by gorm callbacks.
type UserModel struct {
	ID           string         `gorm:"type:uuid;primary_key"`
	Username     string         `gorm:"not null"`
	Email        string         `gorm:"index;not null"`
	Password     string         `gorm:""`
	Provider     string         `gorm:"type:varchar(20);not null;default:'LOCAL'"`
	GoogleID     *string        `gorm:"uniqueIndex"`
	ImageID      *string        `gorm:"type:uuid"`
	Image        *ImageModel    `gorm:"foreignKey:ImageID"`
	Roles        pq.StringArray `gorm:"type:text[];not null;default:'{USER}'"`
	IsActive     bool           `gorm:"default:true"`
	TokenVersion int            `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time `gorm:"index"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

type ImageModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	Key       string
	Name      string
	URL       string `gorm:"type:varchar(500)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ImageModel) TableName() string {
	return "images"
}

func (i *ImageModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}
