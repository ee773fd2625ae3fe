package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ProfileID is the fixed primary key of the singleton profile row.
// There is exactly one profile per deployment; Upsert targets this id
// instead of "select first row, branch".
const ProfileID = 1

var ErrProfileNotFound = errors.New("profile not found")

// Profile is the site owner's public profile.
type Profile struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Headline  string    `json:"headline"`
	Bio       string    `json:"bio"`
	Email     string    `json:"email"`
	Location  string    `json:"location"`
	AvatarURL *string   `json:"avatar_url"`
	ResumeURL *string   `json:"resume_url"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpsertProfileRequest carries the full profile; the upsert contract is
// create-if-absent, update-if-present.
type UpsertProfileRequest struct {
	Name     string `json:"name" binding:"required"`
	Headline string `json:"headline"`
	Bio      string `json:"bio"`
	Email    string `json:"email" binding:"required"`
	Location string `json:"location"`
}

func (r UpsertProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(2, 100),
		),
		validation.Field(&r.Headline, validation.Length(0, 200)),
		validation.Field(&r.Bio, validation.Length(0, 5000)),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Location, validation.Length(0, 100)),
	)
}
