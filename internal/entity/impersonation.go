package entity

import "time"

// ImpersonationLog is an append-only audit record written every time a super
// admin assumes another user's identity.
type ImpersonationLog struct {
	ID             string    `json:"id"`
	AdminID        string    `json:"admin_id"`
	ImpersonatedID string    `json:"impersonated_id"`
	CreatedAt      time.Time `json:"created_at"`
}
