package service

import (
	"context"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/guestbook/model"
	usermodel "portfolio-backend/internal/domains/user/model"
	"portfolio-backend/internal/shared/middleware"
)

// =====================================================
// FAKES
// =====================================================

type likeKey struct {
	entryID uuid.UUID
	userID  uuid.UUID
}

// fakeGuestbookRepo is an in-memory stand-in that mirrors the real
// repository's contract, including the unique-like constraint and the
// cascade delete.
type fakeGuestbookRepo struct {
	entries map[uuid.UUID]*model.GuestbookEntry
	likes   map[likeKey]*model.GuestbookLike

	// forceLikeConflict makes the next InsertLike fail the way the real
	// store does when a concurrent request won the race.
	forceLikeConflict bool
}

func newFakeGuestbookRepo() *fakeGuestbookRepo {
	return &fakeGuestbookRepo{
		entries: make(map[uuid.UUID]*model.GuestbookEntry),
		likes:   make(map[likeKey]*model.GuestbookLike),
	}
}

func (f *fakeGuestbookRepo) CreateEntry(_ context.Context, entry *model.GuestbookEntry) error {
	copied := *entry
	f.entries[entry.ID] = &copied
	return nil
}

func (f *fakeGuestbookRepo) GetEntryByID(_ context.Context, id uuid.UUID) (*model.GuestbookEntry, error) {
	entry, ok := f.entries[id]
	if !ok {
		return nil, model.ErrEntryNotFound
	}
	copied := *entry
	return &copied, nil
}

func (f *fakeGuestbookRepo) DeleteEntryCascade(_ context.Context, id uuid.UUID) error {
	if _, ok := f.entries[id]; !ok {
		return model.ErrEntryNotFound
	}

	var doomed []uuid.UUID
	doomed = append(doomed, id)
	for _, e := range f.entries {
		if e.ParentID != nil && *e.ParentID == id {
			doomed = append(doomed, e.ID)
		}
	}

	for _, entryID := range doomed {
		for key := range f.likes {
			if key.entryID == entryID {
				delete(f.likes, key)
			}
		}
		delete(f.entries, entryID)
	}

	return nil
}

func (f *fakeGuestbookRepo) ListApprovedTopLevel(_ context.Context) ([]*model.EntryWithCounts, error) {
	var out []*model.EntryWithCounts
	for _, e := range f.entries {
		if e.ParentID == nil && e.IsApproved {
			out = append(out, f.withCounts(e))
		}
	}
	return out, nil
}

func (f *fakeGuestbookRepo) ListReplies(_ context.Context, parentID uuid.UUID) ([]*model.EntryWithCounts, error) {
	var out []*model.EntryWithCounts
	for _, e := range f.entries {
		if e.ParentID != nil && *e.ParentID == parentID {
			out = append(out, f.withCounts(e))
		}
	}
	return out, nil
}

func (f *fakeGuestbookRepo) ListAllTopLevel(_ context.Context) ([]*model.EntryWithCounts, int, error) {
	var out []*model.EntryWithCounts
	pending := 0
	for _, e := range f.entries {
		if !e.IsApproved {
			pending++
		}
		if e.ParentID == nil {
			out = append(out, f.withCounts(e))
		}
	}
	return out, pending, nil
}

func (f *fakeGuestbookRepo) SetApproved(_ context.Context, id uuid.UUID, approved bool) error {
	entry, ok := f.entries[id]
	if !ok {
		return model.ErrEntryNotFound
	}
	entry.IsApproved = approved
	return nil
}

func (f *fakeGuestbookRepo) InsertLike(_ context.Context, like *model.GuestbookLike) error {
	if f.forceLikeConflict {
		f.forceLikeConflict = false
		return model.ErrAlreadyLiked
	}

	key := likeKey{entryID: like.EntryID, userID: like.UserID}
	if _, exists := f.likes[key]; exists {
		return model.ErrAlreadyLiked
	}
	copied := *like
	f.likes[key] = &copied
	return nil
}

func (f *fakeGuestbookRepo) DeleteLike(_ context.Context, entryID, userID uuid.UUID) (bool, error) {
	key := likeKey{entryID: entryID, userID: userID}
	if _, exists := f.likes[key]; !exists {
		return false, nil
	}
	delete(f.likes, key)
	return true, nil
}

func (f *fakeGuestbookRepo) CountLikes(_ context.Context, entryID uuid.UUID) (int, error) {
	count := 0
	for key := range f.likes {
		if key.entryID == entryID {
			count++
		}
	}
	return count, nil
}

func (f *fakeGuestbookRepo) ListLikedEntryIDs(_ context.Context, userID uuid.UUID, entryIDs []uuid.UUID) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, entryID := range entryIDs {
		if _, ok := f.likes[likeKey{entryID: entryID, userID: userID}]; ok {
			out = append(out, entryID)
		}
	}
	return out, nil
}

func (f *fakeGuestbookRepo) withCounts(e *model.GuestbookEntry) *model.EntryWithCounts {
	likeCount := 0
	for key := range f.likes {
		if key.entryID == e.ID {
			likeCount++
		}
	}

	replyCount := 0
	for _, other := range f.entries {
		if other.ParentID != nil && *other.ParentID == e.ID {
			replyCount++
		}
	}

	copied := *e
	return &model.EntryWithCounts{
		GuestbookEntry: copied,
		LikeCount:      likeCount,
		ReplyCount:     replyCount,
	}
}

type fakeAuthors struct {
	users map[uuid.UUID]*usermodel.User
}

func (f *fakeAuthors) GetByID(_ context.Context, id uuid.UUID) (*usermodel.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, usermodel.ErrUserNotFound
	}
	return u, nil
}

type fakeInvalidator struct {
	calls int
	err   error
}

func (f *fakeInvalidator) Invalidate(_ context.Context, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.calls++
	return nil
}

// =====================================================
// FIXTURE
// =====================================================

type guestbookFixture struct {
	repo    *fakeGuestbookRepo
	authors *fakeAuthors
	inv     *fakeInvalidator
	svc     GuestbookService
}

func newGuestbookFixture() *guestbookFixture {
	repo := newFakeGuestbookRepo()
	authors := &fakeAuthors{users: make(map[uuid.UUID]*usermodel.User)}
	inv := &fakeInvalidator{}
	return &guestbookFixture{
		repo:    repo,
		authors: authors,
		inv:     inv,
		svc:     NewGuestbookService(repo, authors, inv),
	}
}

func (fx *guestbookFixture) addUser(name, role string) middleware.Identity {
	id := uuid.New()
	avatar := "https://cdn.example.com/" + name + ".png"
	fx.authors.users[id] = &usermodel.User{
		ID:          id,
		Email:       name + "@example.com",
		DisplayName: name,
		AvatarURL:   &avatar,
		Role:        role,
		IsActive:    true,
	}
	return middleware.Identity{
		UserID:      id,
		Email:       name + "@example.com",
		DisplayName: name,
		Role:        role,
	}
}

func (fx *guestbookFixture) postApproved(t *testing.T, author middleware.Identity, message string) *model.GuestbookEntry {
	t.Helper()
	entry, err := fx.svc.PostEntry(context.Background(), author, model.PostEntryRequest{Message: message})
	require.NoError(t, err)
	require.NoError(t, fx.svc.SetApproved(context.Background(), entry.ID, true))
	return entry
}

// =====================================================
// POSTING
// =====================================================

func TestPostEntrySnapshotsAuthorAndStartsUnapproved(t *testing.T) {
	fx := newGuestbookFixture()
	alice := fx.addUser("alice", "user")

	entry, err := fx.svc.PostEntry(context.Background(), alice, model.PostEntryRequest{Message: "  hello there  "})
	require.NoError(t, err)

	assert.Nil(t, entry.ParentID)
	assert.Equal(t, "hello there", entry.Message)
	assert.Equal(t, "alice", entry.DisplayName)
	assert.Equal(t, "https://cdn.example.com/alice.png", entry.AvatarURL)
	assert.False(t, entry.IsApproved)
	assert.Equal(t, 1, fx.inv.calls)
}

func TestPostEntryRejectsBlankMessage(t *testing.T) {
	fx := newGuestbookFixture()
	alice := fx.addUser("alice", "user")

	_, err := fx.svc.PostEntry(context.Background(), alice, model.PostEntryRequest{Message: "   \t  "})

	var vErrs validation.Errors
	assert.ErrorAs(t, err, &vErrs)
}

func TestPostReplyToTopLevelEntry(t *testing.T) {
	fx := newGuestbookFixture()
	alice := fx.addUser("alice", "user")
	bob := fx.addUser("bob", "user")

	parent := fx.postApproved(t, alice, "first!")

	reply, err := fx.svc.PostReply(context.Background(), bob, parent.ID, model.PostEntryRequest{Message: "welcome"})
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, parent.ID, *reply.ParentID)
}

func TestPostReplyToReplyIsRejected(t *testing.T) {
	fx := newGuestbookFixture()
	alice := fx.addUser("alice", "user")
	bob := fx.addUser("bob", "user")

	parent := fx.postApproved(t, alice, "first!")
	reply, err := fx.svc.PostReply(context.Background(), bob, parent.ID, model.PostEntryRequest{Message: "welcome"})
	require.NoError(t, err)

	_, err = fx.svc.PostReply(context.Background(), alice, reply.ID, model.PostEntryRequest{Message: "thanks"})
	assert.ErrorIs(t, err, model.ErrCannotReplyToReply)
}

func TestPostReplyToMissingEntry(t *testing.T) {
	fx := newGuestbookFixture()
	alice := fx.addUser("alice", "user")

	_, err := fx.svc.PostReply(context.Background(), alice, uuid.New(), model.PostEntryRequest{Message: "hello?"})
	assert.ErrorIs(t, err, model.ErrEntryNotFound)
}

// =====================================================
// LIKES
// =====================================================

func TestToggleLikeFlipsStateEachCall(t *testing.T) {
	fx := newGuestbookFixture()
	alice := fx.addUser("alice", "user")
	bob := fx.addUser("bob", "user")

	entry := fx.postApproved(t, alice, "like me")

	result, err := fx.svc.ToggleLike(context.Background(), bob, entry.ID)
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, 1, result.LikeCount)

	result, err = fx.svc.ToggleLike(context.Background(), bob, entry.ID)
	require.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Equal(t, 0, result.LikeCount)

	// An even number of toggles always lands back at the initial state.
	result, err = fx.svc.ToggleLike(context.Background(), bob, entry.ID)
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, 1, result.LikeCount)
}

func TestToggleLikeCountsArePerUser(t *testing.T) {
	fx := newGuestbookFixture()
	alice := fx.addUser("alice", "user")
	bob := fx.addUser("bob", "user")
	carol := fx.addUser("carol", "user")

	entry := fx.postApproved(t, alice, "popular")

	_, err := fx.svc.ToggleLike(context.Background(), bob, entry.ID)
	require.NoError(t, err)
	result, err := fx.svc.ToggleLike(context.Background(), carol, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.LikeCount)

	// Bob unliking does not touch Carol's like.
	result, err = fx.svc.ToggleLike(context.Background(), bob, entry.ID)
	require.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Equal(t, 1, result.LikeCount)
}

func TestToggleLikeOnMissingEntry(t *testing.T) {
	fx := newGuestbookFixture()
	bob := fx.addUser("bob", "user")

	_, err := fx.svc.ToggleLike(context.Background(), bob, uuid.New())
	assert.ErrorIs(t, err, model.ErrEntryNotFound)
}

func TestToggleLikeTreatsConcurrentDuplicateAsLiked(t *testing.T) {
	fx := newGuestbookFixture()
	alice := fx.addUser("alice", "user")
	bob := fx.addUser("bob", "user")

	entry := fx.postApproved(t, alice, "race me")

	// A concurrent request inserts the like between the service's delete
	// and insert. The insert conflicts, and the user still ends up with
	// the entry liked.
	fx.repo.forceLikeConflict = true

	result, err := fx.svc.ToggleLike(context.Background(), bob, entry.ID)
	require.NoError(t, err)
	assert.True(t, result.Liked)
}

// =====================================================
// DELETION
// =====================================================

func TestDeleteEntryCascadesRepliesAndLikes(t *testing.T) {
	fx := newGuestbookFixture()
	alice := fx.addUser("alice", "user")
	bob := fx.addUser("bob", "user")

	entry := fx.postApproved(t, alice, "doomed")
	reply, err := fx.svc.PostReply(context.Background(), bob, entry.ID, model.PostEntryRequest{Message: "me too"})
	require.NoError(t, err)

	_, err = fx.svc.ToggleLike(context.Background(), bob, entry.ID)
	require.NoError(t, err)
	_, err = fx.svc.ToggleLike(context.Background(), alice, reply.ID)
	require.NoError(t, err)

	require.NoError(t, fx.svc.DeleteEntry(context.Background(), alice, entry.ID))

	assert.Empty(t, fx.repo.entries)
	assert.Empty(t, fx.repo.likes)
}

func TestDeleteEntryOnlyAuthorOrAdmin(t *testing.T) {
	fx := newGuestbookFixture()
	alice := fx.addUser("alice", "user")
	bob := fx.addUser("bob", "user")
	admin := fx.addUser("root", "admin")

	entry := fx.postApproved(t, alice, "mine")

	err := fx.svc.DeleteEntry(context.Background(), bob, entry.ID)
	assert.ErrorIs(t, err, model.ErrForbidden)

	// Admin can delete anyone's entry.
	assert.NoError(t, fx.svc.DeleteEntry(context.Background(), admin, entry.ID))
}

// =====================================================
// LISTING AND MODERATION
// =====================================================

func TestListApprovedHidesPendingEntries(t *testing.T) {
	fx := newGuestbookFixture()
	alice := fx.addUser("alice", "user")

	fx.postApproved(t, alice, "visible")
	_, err := fx.svc.PostEntry(context.Background(), alice, model.PostEntryRequest{Message: "pending"})
	require.NoError(t, err)

	entries, err := fx.svc.ListApproved(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "visible", entries[0].Message)
}

func TestListApprovedMarksViewerLikes(t *testing.T) {
	fx := newGuestbookFixture()
	alice := fx.addUser("alice", "user")
	bob := fx.addUser("bob", "user")

	liked := fx.postApproved(t, alice, "liked one")
	fx.postApproved(t, alice, "other one")

	_, err := fx.svc.ToggleLike(context.Background(), bob, liked.ID)
	require.NoError(t, err)

	entries, err := fx.svc.ListApproved(context.Background(), &bob)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	for _, e := range entries {
		if e.ID == liked.ID {
			assert.True(t, e.LikedByViewer)
		} else {
			assert.False(t, e.LikedByViewer)
		}
	}
}

func TestModerationListCountsPending(t *testing.T) {
	fx := newGuestbookFixture()
	alice := fx.addUser("alice", "user")

	fx.postApproved(t, alice, "approved")
	_, err := fx.svc.PostEntry(context.Background(), alice, model.PostEntryRequest{Message: "pending 1"})
	require.NoError(t, err)
	_, err = fx.svc.PostEntry(context.Background(), alice, model.PostEntryRequest{Message: "pending 2"})
	require.NoError(t, err)

	list, err := fx.svc.ListForModeration(context.Background())
	require.NoError(t, err)
	assert.Len(t, list.Entries, 3)
	assert.Equal(t, 2, list.PendingCount)
}

// =====================================================
// END TO END
// =====================================================

func TestGuestbookLifecycle(t *testing.T) {
	fx := newGuestbookFixture()
	u1 := fx.addUser("u1", "user")
	u2 := fx.addUser("u2", "user")
	u3 := fx.addUser("u3", "user")

	// U1 posts; nothing is public yet.
	entry, err := fx.svc.PostEntry(context.Background(), u1, model.PostEntryRequest{Message: "hello world"})
	require.NoError(t, err)

	public, err := fx.svc.ListApproved(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, public)

	// The owner approves; the entry appears.
	require.NoError(t, fx.svc.SetApproved(context.Background(), entry.ID, true))

	public, err = fx.svc.ListApproved(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, public, 1)

	// U2 likes, then unlikes, then likes again.
	result, err := fx.svc.ToggleLike(context.Background(), u2, entry.ID)
	require.NoError(t, err)
	assert.True(t, result.Liked)

	result, err = fx.svc.ToggleLike(context.Background(), u2, entry.ID)
	require.NoError(t, err)
	assert.False(t, result.Liked)

	result, err = fx.svc.ToggleLike(context.Background(), u2, entry.ID)
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, 1, result.LikeCount)

	// U3 replies; the public wall reflects one reply.
	_, err = fx.svc.PostReply(context.Background(), u3, entry.ID, model.PostEntryRequest{Message: "nice to meet you"})
	require.NoError(t, err)

	public, err = fx.svc.ListApproved(context.Background(), &u2)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, 1, public[0].LikeCount)
	assert.Equal(t, 1, public[0].ReplyCount)
	assert.True(t, public[0].LikedByViewer)

	replies, err := fx.svc.ListReplies(context.Background(), entry.ID, nil)
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, "nice to meet you", replies[0].Message)
}
