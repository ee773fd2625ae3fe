package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/project/model"
)

type fakeProjectRepo struct {
	byID   map[uuid.UUID]*model.Project
	bySlug map[string]*model.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{
		byID:   make(map[uuid.UUID]*model.Project),
		bySlug: make(map[string]*model.Project),
	}
}

func (f *fakeProjectRepo) Create(_ context.Context, p *model.Project) error {
	if _, exists := f.bySlug[p.Slug]; exists {
		return model.ErrSlugTaken
	}
	copied := *p
	f.byID[p.ID] = &copied
	f.bySlug[p.Slug] = &copied
	return nil
}

func (f *fakeProjectRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Project, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, model.ErrProjectNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProjectRepo) GetBySlug(_ context.Context, slug string) (*model.Project, error) {
	p, ok := f.bySlug[slug]
	if !ok {
		return nil, model.ErrProjectNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProjectRepo) Update(_ context.Context, p *model.Project) error {
	old, ok := f.byID[p.ID]
	if !ok {
		return model.ErrProjectNotFound
	}
	if other, exists := f.bySlug[p.Slug]; exists && other.ID != p.ID {
		return model.ErrSlugTaken
	}
	delete(f.bySlug, old.Slug)
	copied := *p
	f.byID[p.ID] = &copied
	f.bySlug[p.Slug] = &copied
	return nil
}

func (f *fakeProjectRepo) UpdateImageURL(_ context.Context, id uuid.UUID, url string) error {
	p, ok := f.byID[id]
	if !ok {
		return model.ErrProjectNotFound
	}
	p.ImageURL = &url
	return nil
}

func (f *fakeProjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	p, ok := f.byID[id]
	if !ok {
		return model.ErrProjectNotFound
	}
	delete(f.bySlug, p.Slug)
	delete(f.byID, id)
	return nil
}

func (f *fakeProjectRepo) ListPublished(_ context.Context) ([]*model.Project, error) {
	var out []*model.Project
	for _, p := range f.byID {
		if p.IsPublished {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) ListAll(_ context.Context) ([]*model.Project, error) {
	var out []*model.Project
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, nil
}

type fakeBlobStore struct {
	uploads map[string][]byte
}

func (f *fakeBlobStore) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	if f.uploads == nil {
		f.uploads = make(map[string][]byte)
	}
	f.uploads[key] = data
	return "https://cdn.example.com/" + key, nil
}

func (f *fakeBlobStore) Delete(_ context.Context, _ string) error { return nil }

type fakeInvalidator struct {
	calls int
}

func (f *fakeInvalidator) Invalidate(_ context.Context, _ string) error {
	f.calls++
	return nil
}

func newProjectFixture() (ProjectService, *fakeProjectRepo, *fakeBlobStore) {
	repo := newFakeProjectRepo()
	blobs := &fakeBlobStore{}
	return NewProjectService(repo, blobs, &fakeInvalidator{}), repo, blobs
}

func projectRequest(title string, published bool) model.ProjectRequest {
	return model.ProjectRequest{
		Title:       title,
		Summary:     "A short summary",
		Description: "A longer description",
		Tags:        []string{"go", "postgres"},
		IsPublished: published,
	}
}

func TestCreateProjectGeneratesSlugFromTitle(t *testing.T) {
	svc, _, _ := newProjectFixture()

	p, err := svc.Create(context.Background(), projectRequest("Café Résumé Builder!", true))
	require.NoError(t, err)
	assert.Equal(t, "cafe-resume-builder", p.Slug)
}

func TestCreateProjectDuplicateTitle(t *testing.T) {
	svc, _, _ := newProjectFixture()

	_, err := svc.Create(context.Background(), projectRequest("My Project", true))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), projectRequest("My Project", true))
	assert.ErrorIs(t, err, model.ErrSlugTaken)
}

func TestUpdateProjectRegeneratesSlug(t *testing.T) {
	svc, _, _ := newProjectFixture()

	p, err := svc.Create(context.Background(), projectRequest("Old Name", true))
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), p.ID, projectRequest("New Name", true))
	require.NoError(t, err)
	assert.Equal(t, "new-name", updated.Slug)

	// Old slug no longer resolves.
	_, err = svc.GetBySlug(context.Background(), "old-name")
	assert.ErrorIs(t, err, model.ErrProjectNotFound)
}

func TestGetBySlugHidesUnpublishedProjects(t *testing.T) {
	svc, _, _ := newProjectFixture()

	_, err := svc.Create(context.Background(), projectRequest("Secret Project", false))
	require.NoError(t, err)

	_, err = svc.GetBySlug(context.Background(), "secret-project")
	assert.ErrorIs(t, err, model.ErrProjectNotFound)
}

func TestUploadImageStoresURLOnProject(t *testing.T) {
	svc, repo, blobs := newProjectFixture()

	p, err := svc.Create(context.Background(), projectRequest("Imaged", true))
	require.NoError(t, err)

	url, err := svc.UploadImage(context.Background(), p.ID, []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.NotEmpty(t, url)
	assert.Len(t, blobs.uploads, 1)

	stored, err := repo.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ImageURL)
	assert.Equal(t, url, *stored.ImageURL)
}

func TestUploadImageForMissingProject(t *testing.T) {
	svc, _, blobs := newProjectFixture()

	_, err := svc.UploadImage(context.Background(), uuid.New(), []byte("png-bytes"), "image/png")
	assert.ErrorIs(t, err, model.ErrProjectNotFound)
	assert.Empty(t, blobs.uploads)
}
