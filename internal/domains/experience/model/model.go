package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

var ErrExperienceNotFound = errors.New("experience not found")

const (
	TypeWork      = "work"
	TypeEducation = "education"
)

// Experience is a timeline entry. Work and education entries live in the
// same table but form two independent reorderable lists, one per type.
type Experience struct {
	ID           uuid.UUID  `json:"id"`
	Type         string     `json:"type"`
	Title        string     `json:"title"`
	Organization string     `json:"organization"`
	Location     string     `json:"location"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date"` // nil while ongoing
	Description  string     `json:"description"`
	SortOrder    int        `json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ExperienceRequest struct {
	Type         string     `json:"type" binding:"required"`
	Title        string     `json:"title" binding:"required"`
	Organization string     `json:"organization" binding:"required"`
	Location     string     `json:"location"`
	StartDate    time.Time  `json:"start_date" binding:"required"`
	EndDate      *time.Time `json:"end_date"`
	Description  string     `json:"description"`
}

func (r ExperienceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Type,
			validation.Required.Error("type is required"),
			validation.In(TypeWork, TypeEducation).Error("type must be work or education"),
		),
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 150),
		),
		validation.Field(&r.Organization,
			validation.Required.Error("organization is required"),
			validation.Length(1, 150),
		),
		validation.Field(&r.Location, validation.Length(0, 100)),
		validation.Field(&r.StartDate, validation.Required.Error("start_date is required")),
		validation.Field(&r.Description, validation.Length(0, 5000)),
		validation.Field(&r.EndDate, validation.By(r.endAfterStart)),
	)
}

func (r ExperienceRequest) endAfterStart(value interface{}) error {
	end, _ := value.(*time.Time)
	if end != nil && end.Before(r.StartDate) {
		return errors.New("end_date must not be before start_date")
	}
	return nil
}
