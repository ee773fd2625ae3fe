package model

import (
	"time"

	"github.com/google/uuid"
)

// GuestbookEntry is a visitor-authored post. Top-level entries have a
// nil ParentID; replies point at a top-level entry and may not be
// replied to themselves. DisplayName and AvatarURL are snapshots of the
// author's profile at posting time so old entries keep the name they
// were signed with.
type GuestbookEntry struct {
	ID          uuid.UUID  `json:"id"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty"`
	UserID      uuid.UUID  `json:"user_id"`
	DisplayName string     `json:"display_name"`
	AvatarURL   string     `json:"avatar_url"`
	Message     string     `json:"message"`
	IsApproved  bool       `json:"is_approved"`
	CreatedAt   time.Time  `json:"created_at"`
}

// GuestbookLike records one user liking one entry. The store enforces
// UNIQUE(entry_id, user_id); like counts are always computed from these
// rows, never stored on the entry.
type GuestbookLike struct {
	ID        uuid.UUID `json:"id"`
	EntryID   uuid.UUID `json:"entry_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// EntryWithCounts is the read shape: an entry plus its join-computed
// aggregates and, when a viewer is known, whether that viewer liked it.
type EntryWithCounts struct {
	GuestbookEntry
	LikeCount     int  `json:"like_count"`
	ReplyCount    int  `json:"reply_count"`
	LikedByViewer bool `json:"liked_by_viewer"`
}
