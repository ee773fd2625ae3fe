package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents an authenticated actor: the site owner (admin) or an
// ordinary signed-in visitor who can post in the guestbook.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"display_name"`
	AvatarURL    *string   `json:"avatar_url"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAdmin reports whether this user may perform admin operations.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
