package service

import (
	"context"
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/ordering/model"
)

// fakeRow is one reorderable record as the fake store sees it.
type fakeRow struct {
	group     string
	sortOrder int
}

// fakeOrderingRepo mirrors the real repository's skip-missing and
// group-scoping behavior against an in-memory table.
type fakeOrderingRepo struct {
	tables map[string]map[uuid.UUID]*fakeRow
	err    error
}

func newFakeOrderingRepo() *fakeOrderingRepo {
	return &fakeOrderingRepo{tables: make(map[string]map[uuid.UUID]*fakeRow)}
}

func (f *fakeOrderingRepo) add(table string, id uuid.UUID, group string, sortOrder int) {
	if f.tables[table] == nil {
		f.tables[table] = make(map[uuid.UUID]*fakeRow)
	}
	f.tables[table][id] = &fakeRow{group: group, sortOrder: sortOrder}
}

func (f *fakeOrderingRepo) Reorder(_ context.Context, table, groupCol, group string, ids []uuid.UUID) (int, error) {
	if f.err != nil {
		return 0, f.err
	}

	updated := 0
	for position, id := range ids {
		row, ok := f.tables[table][id]
		if !ok {
			continue
		}
		if groupCol != "" && row.group != group {
			continue
		}
		row.sortOrder = position
		updated++
	}
	return updated, nil
}

type fakeInvalidator struct {
	tags []string
	err  error
}

func (f *fakeInvalidator) Invalidate(_ context.Context, tag string) error {
	if f.err != nil {
		return f.err
	}
	f.tags = append(f.tags, tag)
	return nil
}

func reorderItems(ids ...uuid.UUID) []model.ReorderItem {
	items := make([]model.ReorderItem, len(ids))
	for i, id := range ids {
		// Deliberately bogus client-side positions; submission order is
		// what counts.
		items[i] = model.ReorderItem{ID: id, SortOrder: 99 - i}
	}
	return items
}

func TestReorderAssignsDensePositionsBySubmissionOrder(t *testing.T) {
	repo := newFakeOrderingRepo()
	inv := &fakeInvalidator{}
	svc := NewOrderingService(repo, inv)

	a, b, c := uuid.New(), uuid.New(), uuid.New()
	repo.add("projects", a, "", 0)
	repo.add("projects", b, "", 1)
	repo.add("projects", c, "", 2)

	updated, err := svc.Reorder(context.Background(), "projects", model.ReorderRequest{
		Items: reorderItems(c, a, b),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, updated)

	assert.Equal(t, 0, repo.tables["projects"][c].sortOrder)
	assert.Equal(t, 1, repo.tables["projects"][a].sortOrder)
	assert.Equal(t, 2, repo.tables["projects"][b].sortOrder)
	assert.Equal(t, []string{"projects"}, inv.tags)
}

func TestReorderIsIdempotent(t *testing.T) {
	repo := newFakeOrderingRepo()
	svc := NewOrderingService(repo, &fakeInvalidator{})

	a, b := uuid.New(), uuid.New()
	repo.add("social_links", a, "", 5)
	repo.add("social_links", b, "", 9)

	req := model.ReorderRequest{Items: reorderItems(b, a)}

	for i := 0; i < 3; i++ {
		updated, err := svc.Reorder(context.Background(), "socials", req)
		require.NoError(t, err)
		assert.Equal(t, 2, updated)
	}

	assert.Equal(t, 0, repo.tables["social_links"][b].sortOrder)
	assert.Equal(t, 1, repo.tables["social_links"][a].sortOrder)
}

func TestReorderScopesToGroup(t *testing.T) {
	repo := newFakeOrderingRepo()
	svc := NewOrderingService(repo, &fakeInvalidator{})

	golang, docker, postgres := uuid.New(), uuid.New(), uuid.New()
	english := uuid.New()
	repo.add("skills", golang, "backend", 0)
	repo.add("skills", docker, "backend", 1)
	repo.add("skills", postgres, "backend", 2)
	repo.add("skills", english, "language", 0)

	updated, err := svc.Reorder(context.Background(), "skills", model.ReorderRequest{
		Group: "backend",
		Items: reorderItems(postgres, golang, docker),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, updated)

	assert.Equal(t, 0, repo.tables["skills"][postgres].sortOrder)
	assert.Equal(t, 1, repo.tables["skills"][golang].sortOrder)
	assert.Equal(t, 2, repo.tables["skills"][docker].sortOrder)

	// The other group is untouched.
	assert.Equal(t, 0, repo.tables["skills"][english].sortOrder)
}

func TestReorderSkipsIDsFromAnotherGroup(t *testing.T) {
	repo := newFakeOrderingRepo()
	svc := NewOrderingService(repo, &fakeInvalidator{})

	backendSkill := uuid.New()
	languageSkill := uuid.New()
	repo.add("skills", backendSkill, "backend", 0)
	repo.add("skills", languageSkill, "language", 7)

	updated, err := svc.Reorder(context.Background(), "skills", model.ReorderRequest{
		Group: "backend",
		Items: reorderItems(languageSkill, backendSkill),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	// The foreign id is skipped but positions still follow submission
	// index, so the backend skill lands at 1.
	assert.Equal(t, 1, repo.tables["skills"][backendSkill].sortOrder)
	assert.Equal(t, 7, repo.tables["skills"][languageSkill].sortOrder)
}

func TestReorderSkipsDeletedIDs(t *testing.T) {
	repo := newFakeOrderingRepo()
	svc := NewOrderingService(repo, &fakeInvalidator{})

	a := uuid.New()
	repo.add("experiences", a, "work", 3)

	updated, err := svc.Reorder(context.Background(), "experiences", model.ReorderRequest{
		Group: "work",
		Items: reorderItems(uuid.New(), a),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
	assert.Equal(t, 1, repo.tables["experiences"][a].sortOrder)
}

func TestReorderUnknownCollection(t *testing.T) {
	svc := NewOrderingService(newFakeOrderingRepo(), &fakeInvalidator{})

	_, err := svc.Reorder(context.Background(), "books", model.ReorderRequest{
		Items: reorderItems(uuid.New()),
	})
	assert.ErrorIs(t, err, model.ErrUnknownCollection)
}

func TestReorderGroupedCollectionRequiresGroup(t *testing.T) {
	svc := NewOrderingService(newFakeOrderingRepo(), &fakeInvalidator{})

	_, err := svc.Reorder(context.Background(), "skills", model.ReorderRequest{
		Items: reorderItems(uuid.New()),
	})
	assert.ErrorIs(t, err, model.ErrGroupRequired)
}

func TestReorderRejectsEmptyAndDuplicateItems(t *testing.T) {
	svc := NewOrderingService(newFakeOrderingRepo(), &fakeInvalidator{})

	_, err := svc.Reorder(context.Background(), "projects", model.ReorderRequest{})
	var vErrs validation.Errors
	assert.ErrorAs(t, err, &vErrs)

	id := uuid.New()
	_, err = svc.Reorder(context.Background(), "projects", model.ReorderRequest{
		Items: []model.ReorderItem{{ID: id}, {ID: id}},
	})
	assert.ErrorAs(t, err, &vErrs)
}

func TestReorderFailsWhenInvalidationFails(t *testing.T) {
	repo := newFakeOrderingRepo()
	a := uuid.New()
	repo.add("projects", a, "", 0)

	inv := &fakeInvalidator{err: errors.New("redis down")}
	svc := NewOrderingService(repo, inv)

	_, err := svc.Reorder(context.Background(), "projects", model.ReorderRequest{
		Items: reorderItems(a),
	})
	assert.Error(t, err)
}
