package model

import "errors"

// Error codes
const (
	ErrCodeEntryNotFound      = "GBK001"
	ErrCodeCannotReplyToReply = "GBK002"
	ErrCodeForbidden          = "GBK003"
)

// Errors
var (
	ErrEntryNotFound      = errors.New("guestbook entry not found")
	ErrCannotReplyToReply = errors.New("replies cannot be replied to")
	ErrForbidden          = errors.New("not allowed to modify this entry")

	// ErrAlreadyLiked never escapes the service; a duplicate like from a
	// concurrent request is reported as a successful "liked" state.
	ErrAlreadyLiked = errors.New("entry already liked")
)
