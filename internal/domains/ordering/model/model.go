package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Error codes
const (
	ErrCodeUnknownCollection = "ORD001"
	ErrCodeGroupRequired     = "ORD002"
)

// Errors
var (
	ErrUnknownCollection = errors.New("unknown collection")
	ErrGroupRequired     = errors.New("this collection is reordered per group")
)

// ReorderItem pairs an id with the position the client computed for it.
// Submission order is canonical: the service rewrites SortOrder to the
// item's index regardless of the value sent.
type ReorderItem struct {
	ID        uuid.UUID `json:"id"`
	SortOrder int       `json:"sort_order"`
}

// ReorderRequest carries the full ordered id list for one group of a
// collection after a drag-and-drop in the dashboard.
type ReorderRequest struct {
	Group string        `json:"group"`
	Items []ReorderItem `json:"items" binding:"required"`
}

func (r ReorderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Items,
			validation.Required.Error("items is required"),
			validation.By(noDuplicateIDs),
		),
	)
}

func noDuplicateIDs(value interface{}) error {
	items, _ := value.([]ReorderItem)
	seen := make(map[uuid.UUID]struct{}, len(items))
	for _, item := range items {
		if item.ID == uuid.Nil {
			return errors.New("item id is required")
		}
		if _, dup := seen[item.ID]; dup {
			return errors.New("duplicate item id")
		}
		seen[item.ID] = struct{}{}
	}
	return nil
}
