package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

var ErrMessageNotFound = errors.New("message not found")

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	IsRead  bool      `json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}

type ContactMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject"`
	Body    string `json:"body" binding:"required"`
}

func (r ContactMessageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Subject, validation.Length(0, 200)),
		validation.Field(&r.Body,
			validation.Required.Error("body is required"),
			validation.Length(1, 5000),
		),
	)
}
