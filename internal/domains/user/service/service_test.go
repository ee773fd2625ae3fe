package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/user/model"
	"portfolio-backend/pkg/jwt"
)

type fakeUserRepo struct {
	byID    map[uuid.UUID]*model.User
	byEmail map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[uuid.UUID]*model.User),
		byEmail: make(map[string]*model.User),
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	if _, exists := f.byEmail[strings.ToLower(u.Email)]; exists {
		return model.ErrEmailTaken
	}
	copied := *u
	f.byID[u.ID] = &copied
	f.byEmail[strings.ToLower(u.Email)] = &copied
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := f.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) List(_ context.Context, _, _ int) ([]*model.User, int, error) {
	var out []*model.User
	for _, u := range f.byID {
		out = append(out, u)
	}
	return out, len(out), nil
}

func (f *fakeUserRepo) UpdateRole(_ context.Context, id uuid.UUID, role string) error {
	u, ok := f.byID[id]
	if !ok {
		return model.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (f *fakeUserRepo) UpdateStatus(_ context.Context, id uuid.UUID, isActive bool) error {
	u, ok := f.byID[id]
	if !ok {
		return model.ErrUserNotFound
	}
	u.IsActive = isActive
	return nil
}

func newTestService() (UserService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	manager := jwt.NewManager("test-secret", 15*time.Minute, 72*time.Hour)
	return NewUserService(repo, manager), repo
}

func register(t *testing.T, svc UserService, email, password string) *model.LoginResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:       email,
		Password:    password,
		DisplayName: "Visitor",
	})
	require.NoError(t, err)
	return resp
}

func TestRegisterIssuesTokensAndDefaultsToUserRole(t *testing.T) {
	svc, _ := newTestService()

	resp := register(t, svc, "visitor@example.com", "s3cret-pass")

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, model.RoleUser, resp.User.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()

	register(t, svc, "visitor@example.com", "s3cret-pass")

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:       "visitor@example.com",
		Password:    "another-pass",
		DisplayName: "Impostor",
	})
	assert.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestLoginWithCorrectPassword(t *testing.T) {
	svc, _ := newTestService()
	register(t, svc, "visitor@example.com", "s3cret-pass")

	resp, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "visitor@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestLoginWithWrongPassword(t *testing.T) {
	svc, _ := newTestService()
	register(t, svc, "visitor@example.com", "s3cret-pass")

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "visitor@example.com",
		Password: "wrong-pass",
	})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestLoginWithUnknownEmailHidesExistence(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever-pass",
	})

	// Same error as a wrong password so the endpoint cannot be used to
	// probe which emails are registered.
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, repo := newTestService()
	resp := register(t, svc, "visitor@example.com", "s3cret-pass")

	require.NoError(t, repo.UpdateStatus(context.Background(), resp.User.ID, false))

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "visitor@example.com",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, model.ErrUserDisabled)
}

func TestRefreshRoundTrip(t *testing.T) {
	svc, _ := newTestService()
	resp := register(t, svc, "visitor@example.com", "s3cret-pass")

	refreshed, err := svc.Refresh(context.Background(), resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, resp.User.ID, refreshed.User.ID)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newTestService()
	resp := register(t, svc, "visitor@example.com", "s3cret-pass")

	_, err := svc.Refresh(context.Background(), resp.AccessToken)
	assert.Error(t, err)
}
