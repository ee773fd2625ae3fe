package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/guestbook/model"
	"portfolio-backend/internal/domains/guestbook/repository"
	usermodel "portfolio-backend/internal/domains/user/model"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/pkg/cache"
)

// AuthorDirectory resolves the posting user's current account so each
// entry can snapshot the display name and avatar at posting time. The
// user repository satisfies it.
type AuthorDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*usermodel.User, error)
}

// GuestbookService implements the threaded guestbook: top-level entries,
// single-level replies, per-user like toggling, and admin moderation.
type GuestbookService interface {
	PostEntry(ctx context.Context, identity middleware.Identity, req model.PostEntryRequest) (*model.GuestbookEntry, error)
	PostReply(ctx context.Context, identity middleware.Identity, parentID uuid.UUID, req model.PostEntryRequest) (*model.GuestbookEntry, error)
	DeleteEntry(ctx context.Context, identity middleware.Identity, entryID uuid.UUID) error
	ToggleLike(ctx context.Context, identity middleware.Identity, entryID uuid.UUID) (*model.ToggleLikeResult, error)

	// ListApproved returns the public wall. When viewer is non-nil each
	// entry carries whether that viewer liked it.
	ListApproved(ctx context.Context, viewer *middleware.Identity) ([]*model.EntryWithCounts, error)
	ListReplies(ctx context.Context, parentID uuid.UUID, viewer *middleware.Identity) ([]*model.EntryWithCounts, error)

	ListForModeration(ctx context.Context) (*model.ModerationList, error)
	SetApproved(ctx context.Context, entryID uuid.UUID, approved bool) error
}

type guestbookService struct {
	guestbookRepo repository.GuestbookRepository
	authors       AuthorDirectory
	invalidator   cache.Invalidator
}

func NewGuestbookService(guestbookRepo repository.GuestbookRepository, authors AuthorDirectory, invalidator cache.Invalidator) GuestbookService {
	return &guestbookService{
		guestbookRepo: guestbookRepo,
		authors:       authors,
		invalidator:   invalidator,
	}
}

func (s *guestbookService) PostEntry(ctx context.Context, identity middleware.Identity, req model.PostEntryRequest) (*model.GuestbookEntry, error) {
	return s.post(ctx, identity, nil, req)
}

func (s *guestbookService) PostReply(ctx context.Context, identity middleware.Identity, parentID uuid.UUID, req model.PostEntryRequest) (*model.GuestbookEntry, error) {
	parent, err := s.guestbookRepo.GetEntryByID(ctx, parentID)
	if err != nil {
		return nil, err
	}

	// One level of threading only: a reply can never be a parent.
	if parent.ParentID != nil {
		return nil, model.ErrCannotReplyToReply
	}

	return s.post(ctx, identity, &parentID, req)
}

func (s *guestbookService) post(ctx context.Context, identity middleware.Identity, parentID *uuid.UUID, req model.PostEntryRequest) (*model.GuestbookEntry, error) {
	req.Message = strings.TrimSpace(req.Message)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	author, err := s.authors.GetByID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	entry := &model.GuestbookEntry{
		ID:          uuid.New(),
		ParentID:    parentID,
		UserID:      author.ID,
		DisplayName: author.DisplayName,
		Message:     req.Message,
		IsApproved:  false,
		CreatedAt:   time.Now(),
	}
	if author.AvatarURL != nil {
		entry.AvatarURL = *author.AvatarURL
	}

	if err := s.guestbookRepo.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}

	if err := s.invalidator.Invalidate(ctx, cache.TagGuestbook); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *guestbookService) DeleteEntry(ctx context.Context, identity middleware.Identity, entryID uuid.UUID) error {
	entry, err := s.guestbookRepo.GetEntryByID(ctx, entryID)
	if err != nil {
		return err
	}

	if entry.UserID != identity.UserID && !identity.IsAdmin() {
		return model.ErrForbidden
	}

	// The cascade runs for replies too; the reply-scoped steps are then
	// no-ops, which keeps the delete path uniform.
	if err := s.guestbookRepo.DeleteEntryCascade(ctx, entryID); err != nil {
		return err
	}

	return s.invalidator.Invalidate(ctx, cache.TagGuestbook)
}

func (s *guestbookService) ToggleLike(ctx context.Context, identity middleware.Identity, entryID uuid.UUID) (*model.ToggleLikeResult, error) {
	if _, err := s.guestbookRepo.GetEntryByID(ctx, entryID); err != nil {
		return nil, err
	}

	// Unlike first: if a like row existed and is now gone, we are done.
	removed, err := s.guestbookRepo.DeleteLike(ctx, entryID, identity.UserID)
	if err != nil {
		return nil, err
	}

	liked := false
	if !removed {
		like := &model.GuestbookLike{
			ID:        uuid.New(),
			EntryID:   entryID,
			UserID:    identity.UserID,
			CreatedAt: time.Now(),
		}

		err := s.guestbookRepo.InsertLike(ctx, like)
		switch {
		case err == nil:
			liked = true
		case errors.Is(err, model.ErrAlreadyLiked):
			// A concurrent request inserted the row between our delete
			// and insert. The user wanted the entry liked; it is.
			liked = true
		default:
			return nil, err
		}
	}

	count, err := s.guestbookRepo.CountLikes(ctx, entryID)
	if err != nil {
		return nil, err
	}

	if err := s.invalidator.Invalidate(ctx, cache.TagGuestbook); err != nil {
		return nil, err
	}

	return &model.ToggleLikeResult{Liked: liked, LikeCount: count}, nil
}

func (s *guestbookService) ListApproved(ctx context.Context, viewer *middleware.Identity) ([]*model.EntryWithCounts, error) {
	entries, err := s.guestbookRepo.ListApprovedTopLevel(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.markViewerLikes(ctx, entries, viewer); err != nil {
		return nil, err
	}

	return entries, nil
}

func (s *guestbookService) ListReplies(ctx context.Context, parentID uuid.UUID, viewer *middleware.Identity) ([]*model.EntryWithCounts, error) {
	if _, err := s.guestbookRepo.GetEntryByID(ctx, parentID); err != nil {
		return nil, err
	}

	entries, err := s.guestbookRepo.ListReplies(ctx, parentID)
	if err != nil {
		return nil, err
	}

	if err := s.markViewerLikes(ctx, entries, viewer); err != nil {
		return nil, err
	}

	return entries, nil
}

func (s *guestbookService) ListForModeration(ctx context.Context) (*model.ModerationList, error) {
	entries, pending, err := s.guestbookRepo.ListAllTopLevel(ctx)
	if err != nil {
		return nil, err
	}

	return &model.ModerationList{Entries: entries, PendingCount: pending}, nil
}

func (s *guestbookService) SetApproved(ctx context.Context, entryID uuid.UUID, approved bool) error {
	if err := s.guestbookRepo.SetApproved(ctx, entryID, approved); err != nil {
		return err
	}

	return s.invalidator.Invalidate(ctx, cache.TagGuestbook)
}

func (s *guestbookService) markViewerLikes(ctx context.Context, entries []*model.EntryWithCounts, viewer *middleware.Identity) error {
	if viewer == nil || len(entries) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}

	liked, err := s.guestbookRepo.ListLikedEntryIDs(ctx, viewer.UserID, ids)
	if err != nil {
		return err
	}

	likedSet := make(map[uuid.UUID]struct{}, len(liked))
	for _, id := range liked {
		likedSet[id] = struct{}{}
	}

	for _, e := range entries {
		_, e.LikedByViewer = likedSet[e.ID]
	}

	return nil
}
