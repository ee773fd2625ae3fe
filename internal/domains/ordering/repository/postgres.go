package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/pkg/database"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresOrderingRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresOrderingRepository(pool *pgxpool.Pool) OrderingRepository {
	return &postgresOrderingRepository{pool: pool}
}

// Reorder runs every position write in a single transaction so readers
// either see the old order or the new one, never a mix. Table and group
// column names come from the collection registry, never from request
// input, so interpolating them is safe.
func (r *postgresOrderingRepository) Reorder(ctx context.Context, table, groupCol, group string, ids []uuid.UUID) (int, error) {
	updated := 0

	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		query := fmt.Sprintf(`UPDATE %s SET sort_order = $1, updated_at = NOW() WHERE id = $2`, table)
		if groupCol != "" {
			query += fmt.Sprintf(` AND %s = $3`, groupCol)
		}

		for position, id := range ids {
			args := []interface{}{position, id}
			if groupCol != "" {
				args = append(args, group)
			}

			result, err := tx.Exec(ctx, query, args...)
			if err != nil {
				return fmt.Errorf("failed to reorder %s: %w", table, err)
			}

			// Zero rows means the id was deleted since the client loaded
			// the list, or sits in a different group. Skip it; the rest
			// of the submission still applies.
			updated += int(result.RowsAffected())
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return updated, nil
}
