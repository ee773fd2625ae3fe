package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type ProjectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	RepoURL     *string  `json:"repo_url"`
	DemoURL     *string  `json:"demo_url"`
	IsFeatured  bool     `json:"is_featured"`
	IsPublished bool     `json:"is_published"`
}

func (r ProjectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(2, 150),
		),
		validation.Field(&r.Summary, validation.Length(0, 300)),
		validation.Field(&r.Description, validation.Length(0, 20000)),
		validation.Field(&r.Tags,
			validation.Length(0, 20),
			validation.Each(validation.Length(1, 40)),
		),
		validation.Field(&r.RepoURL,
			validation.When(r.RepoURL != nil, is.URL.Error("invalid repo url")),
		),
		validation.Field(&r.DemoURL,
			validation.When(r.DemoURL != nil, is.URL.Error("invalid demo url")),
		),
	)
}
