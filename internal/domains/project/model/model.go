package model

import (
	"time"

	"github.com/google/uuid"
)

// Project is a portfolio project. Projects form one ungrouped ordered
// collection; only published projects appear on the public site.
type Project struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	RepoURL     *string   `json:"repo_url"`
	DemoURL     *string   `json:"demo_url"`
	ImageURL    *string   `json:"image_url"`
	IsFeatured  bool      `json:"is_featured"`
	IsPublished bool      `json:"is_published"`
	SortOrder   int       `json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
