package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

var ErrSkillNotFound = errors.New("skill not found")

// Skill is one entry in a category-scoped reorderable list. Ordering is
// per category: the frontend renders each category as its own column and
// drag-reorder only moves items within one.
type Skill struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Level     int       `json:"level"`
	Icon      string    `json:"icon"`
	SortOrder int       `json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SkillRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
	Level    int    `json:"level"`
	Icon     string `json:"icon"`
}

func (r SkillRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 80),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.Length(1, 50),
		),
		validation.Field(&r.Level,
			validation.Required.Error("level is required"),
			validation.Min(1).Error("level must be between 1 and 5"),
			validation.Max(5).Error("level must be between 1 and 5"),
		),
		validation.Field(&r.Icon, validation.Length(0, 50)),
	)
}
