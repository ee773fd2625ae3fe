package repository

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/guestbook/model"
)

type GuestbookRepository interface {
	CreateEntry(ctx context.Context, entry *model.GuestbookEntry) error
	GetEntryByID(ctx context.Context, id uuid.UUID) (*model.GuestbookEntry, error)

	// DeleteEntryCascade removes an entry together with its replies and
	// every like on any of them, in one transaction.
	DeleteEntryCascade(ctx context.Context, id uuid.UUID) error

	// ListApprovedTopLevel returns approved top-level entries with
	// like and reply counts, newest first. Results are cached until the
	// next guestbook mutation.
	ListApprovedTopLevel(ctx context.Context) ([]*model.EntryWithCounts, error)

	// ListReplies returns all replies to one entry with like counts,
	// oldest first.
	ListReplies(ctx context.Context, parentID uuid.UUID) ([]*model.EntryWithCounts, error)

	// ListAllTopLevel returns every top-level entry for moderation,
	// newest first, plus the number of entries awaiting approval.
	ListAllTopLevel(ctx context.Context) ([]*model.EntryWithCounts, int, error)

	SetApproved(ctx context.Context, id uuid.UUID, approved bool) error

	// InsertLike returns model.ErrAlreadyLiked when the (entry, user)
	// pair already exists.
	InsertLike(ctx context.Context, like *model.GuestbookLike) error

	// DeleteLike reports whether a like row was actually removed.
	DeleteLike(ctx context.Context, entryID, userID uuid.UUID) (bool, error)

	CountLikes(ctx context.Context, entryID uuid.UUID) (int, error)

	// ListLikedEntryIDs returns the subset of entryIDs the user has liked.
	ListLikedEntryIDs(ctx context.Context, userID uuid.UUID, entryIDs []uuid.UUID) ([]uuid.UUID, error)
}
