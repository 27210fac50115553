package entity

import "time"

type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

type User struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	Password     string       `json:"-"`
	Provider     AuthProvider `json:"provider"`
	GoogleID     string       `json:"-"`
	ImageID      string       `json:"image_id"`
	Image        *Image       `json:"image,omitempty"`
	Roles        []Role       `json:"roles"`
	IsActive     bool         `json:"is_active"`
	TokenVersion int          `json:"token_version"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	DeletedAt    *time.Time   `json:"deleted_at,omitempty"`
}

// IsDeleted reports whether the account sits in the trash (soft-deleted).
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// IsProtected reports whether the account is shielded from destructive
// actions by plain-ADMIN actors.
func (u *User) IsProtected() bool {
	return HasAdminOrSuperAdmin(u.Roles)
}

// Actor identifies the authenticated caller of a lifecycle operation.
type Actor struct {
	ID    string
	Roles []Role
}
