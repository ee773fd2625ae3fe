package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/message/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresMessageRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresMessageRepository(pool *pgxpool.Pool) MessageRepository {
	return &postgresMessageRepository{pool: pool}
}

const messageColumns = `
	id, name, email, subject, body, is_read, created_at
`

func scanMessage(row pgx.Row) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{}
	err := row.Scan(
		&msg.ID,
		&msg.Name,
		&msg.Email,
		&msg.Subject,
		&msg.Body,
		&msg.IsRead,
		&msg.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to scan message: %w", err)
	}
	return msg, nil
}

func (r *postgresMessageRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (
			id, name, email, subject, body, is_read, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		msg.ID,
		msg.Name,
		msg.Email,
		msg.Subject,
		msg.Body,
		msg.IsRead,
		msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	return nil
}

func (r *postgresMessageRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error) {
	query := `SELECT ` + messageColumns + ` FROM contact_messages WHERE id = $1`
	return scanMessage(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresMessageRepository) List(ctx context.Context, onlyUnread bool, page, limit int) ([]*model.ContactMessage, int, error) {
	where := ""
	if onlyUnread {
		where = `WHERE is_read = false`
	}

	query := `
		SELECT ` + messageColumns + `
		FROM contact_messages ` + where + `
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	offset := (page - 1) * limit
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var msgs []*model.ContactMessage
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, 0, err
		}
		msgs = append(msgs, msg)
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages `+where).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count messages: %w", err)
	}

	return msgs, total, nil
}

func (r *postgresMessageRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `UPDATE contact_messages SET is_read = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrMessageNotFound
	}

	return nil
}

func (r *postgresMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrMessageNotFound
	}

	return nil
}
