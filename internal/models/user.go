package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a portal account. Local accounts carry a password hash; single
// sign-on accounts carry the OIDC subject instead.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Sub          string    `json:"sub,omitempty"` // OIDC subject identifier
	Email        string    `json:"email,omitempty"`
	Name         string    `json:"name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DisplayName returns the label shown in greetings and status headers.
func (u *User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// IsSSO returns true if the account was provisioned through OIDC.
func (u *User) IsSSO() bool {
	return u.Sub != ""
}
