package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const maxMessageLength = 1000

type PostEntryRequest struct {
	Message string `json:"message" binding:"required"`
}

func (r PostEntryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Message,
			validation.Required.Error("message is required"),
			validation.Length(1, maxMessageLength),
		),
	)
}

type SetApprovedRequest struct {
	IsApproved *bool `json:"is_approved"`
}

func (r SetApprovedRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.IsApproved, validation.NotNil.Error("is_approved is required")),
	)
}

// ToggleLikeResult is returned by the like endpoint: the viewer's new
// state for the entry and its fresh total.
type ToggleLikeResult struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}

// ModerationList is the admin view: every top-level entry regardless of
// approval, plus how many still await review.
type ModerationList struct {
	Entries      []*EntryWithCounts `json:"entries"`
	PendingCount int                `json:"pending_count"`
}
