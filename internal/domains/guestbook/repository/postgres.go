package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/guestbook/model"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/database"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresGuestbookRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresGuestbookRepository(pool *pgxpool.Pool, c cache.Cache) GuestbookRepository {
	return &postgresGuestbookRepository{pool: pool, cache: c}
}

const entryColumns = `
	id, parent_id, user_id, display_name, avatar_url, message,
	is_approved, created_at
`

// entryWithCountsQuery joins per-entry like and reply totals onto the
// row. Counts are computed here, never stored, so they cannot drift.
const entryWithCountsQuery = `
	SELECT e.id, e.parent_id, e.user_id, e.display_name, e.avatar_url,
	       e.message, e.is_approved, e.created_at,
	       COALESCE(l.like_count, 0), COALESCE(r.reply_count, 0)
	FROM guestbook_entries e
	LEFT JOIN (
		SELECT entry_id, COUNT(*) AS like_count
		FROM guestbook_likes
		GROUP BY entry_id
	) l ON l.entry_id = e.id
	LEFT JOIN (
		SELECT parent_id, COUNT(*) AS reply_count
		FROM guestbook_entries
		WHERE parent_id IS NOT NULL
		GROUP BY parent_id
	) r ON r.parent_id = e.id
`

var approvedEntriesCacheKey = cache.Key(cache.TagGuestbook, "approved")

func scanEntry(row pgx.Row) (*model.GuestbookEntry, error) {
	entry := &model.GuestbookEntry{}
	err := row.Scan(
		&entry.ID,
		&entry.ParentID,
		&entry.UserID,
		&entry.DisplayName,
		&entry.AvatarURL,
		&entry.Message,
		&entry.IsApproved,
		&entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to scan guestbook entry: %w", err)
	}
	return entry, nil
}

func scanEntryWithCounts(row pgx.Row) (*model.EntryWithCounts, error) {
	entry := &model.EntryWithCounts{}
	err := row.Scan(
		&entry.ID,
		&entry.ParentID,
		&entry.UserID,
		&entry.DisplayName,
		&entry.AvatarURL,
		&entry.Message,
		&entry.IsApproved,
		&entry.CreatedAt,
		&entry.LikeCount,
		&entry.ReplyCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to scan guestbook entry: %w", err)
	}
	return entry, nil
}

func (r *postgresGuestbookRepository) CreateEntry(ctx context.Context, entry *model.GuestbookEntry) error {
	query := `
		INSERT INTO guestbook_entries (
			id, parent_id, user_id, display_name, avatar_url, message,
			is_approved, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.ParentID,
		entry.UserID,
		entry.DisplayName,
		entry.AvatarURL,
		entry.Message,
		entry.IsApproved,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create guestbook entry: %w", err)
	}

	return nil
}

func (r *postgresGuestbookRepository) GetEntryByID(ctx context.Context, id uuid.UUID) (*model.GuestbookEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM guestbook_entries WHERE id = $1`
	return scanEntry(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresGuestbookRepository) DeleteEntryCascade(ctx context.Context, id uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		// Likes on replies first, then likes on the entry itself, then
		// the replies, then the entry. Each step is a no-op when the
		// entry has no children.
		if _, err := tx.Exec(ctx, `
			DELETE FROM guestbook_likes
			WHERE entry_id IN (SELECT id FROM guestbook_entries WHERE parent_id = $1)
		`, id); err != nil {
			return fmt.Errorf("failed to delete reply likes: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM guestbook_likes WHERE entry_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete entry likes: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM guestbook_entries WHERE parent_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete replies: %w", err)
		}

		result, err := tx.Exec(ctx, `DELETE FROM guestbook_entries WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete guestbook entry: %w", err)
		}

		if result.RowsAffected() == 0 {
			return model.ErrEntryNotFound
		}

		return nil
	})
}

func (r *postgresGuestbookRepository) ListApprovedTopLevel(ctx context.Context) ([]*model.EntryWithCounts, error) {
	var cached []*model.EntryWithCounts
	if found, err := r.cache.Get(ctx, approvedEntriesCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	query := entryWithCountsQuery + `
		WHERE e.parent_id IS NULL AND e.is_approved = true
		ORDER BY e.created_at DESC
	`

	entries, err := r.listWithCounts(ctx, query)
	if err != nil {
		return nil, err
	}

	_ = r.cache.Set(ctx, approvedEntriesCacheKey, entries, 5*time.Minute)

	return entries, nil
}

func (r *postgresGuestbookRepository) ListReplies(ctx context.Context, parentID uuid.UUID) ([]*model.EntryWithCounts, error) {
	query := entryWithCountsQuery + `
		WHERE e.parent_id = $1
		ORDER BY e.created_at ASC
	`

	return r.listWithCounts(ctx, query, parentID)
}

func (r *postgresGuestbookRepository) ListAllTopLevel(ctx context.Context) ([]*model.EntryWithCounts, int, error) {
	query := entryWithCountsQuery + `
		WHERE e.parent_id IS NULL
		ORDER BY e.created_at DESC
	`

	entries, err := r.listWithCounts(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	var pending int
	err = r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM guestbook_entries WHERE is_approved = false
	`).Scan(&pending)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count pending entries: %w", err)
	}

	return entries, pending, nil
}

func (r *postgresGuestbookRepository) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	result, err := r.pool.Exec(ctx, `
		UPDATE guestbook_entries SET is_approved = $2 WHERE id = $1
	`, id, approved)
	if err != nil {
		return fmt.Errorf("failed to update approval: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrEntryNotFound
	}

	return nil
}

func (r *postgresGuestbookRepository) InsertLike(ctx context.Context, like *model.GuestbookLike) error {
	query := `
		INSERT INTO guestbook_likes (id, entry_id, user_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query, like.ID, like.EntryID, like.UserID, like.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrAlreadyLiked
		}
		return fmt.Errorf("failed to insert like: %w", err)
	}

	return nil
}

func (r *postgresGuestbookRepository) DeleteLike(ctx context.Context, entryID, userID uuid.UUID) (bool, error) {
	result, err := r.pool.Exec(ctx, `
		DELETE FROM guestbook_likes WHERE entry_id = $1 AND user_id = $2
	`, entryID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete like: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *postgresGuestbookRepository) CountLikes(ctx context.Context, entryID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM guestbook_likes WHERE entry_id = $1
	`, entryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}

	return count, nil
}

func (r *postgresGuestbookRepository) ListLikedEntryIDs(ctx context.Context, userID uuid.UUID, entryIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(entryIDs) == 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT entry_id FROM guestbook_likes
		WHERE user_id = $1 AND entry_id = ANY($2)
	`, userID, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list liked entries: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan liked entry id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (r *postgresGuestbookRepository) listWithCounts(ctx context.Context, query string, args ...interface{}) ([]*model.EntryWithCounts, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list guestbook entries: %w", err)
	}
	defer rows.Close()

	var entries []*model.EntryWithCounts
	for rows.Next() {
		entry, err := scanEntryWithCounts(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
