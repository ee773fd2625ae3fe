package repository

import (
	"context"

	"github.com/google/uuid"
)

type OrderingRepository interface {
	// Reorder writes dense positions 0..n-1 onto the given rows in one
	// transaction, in slice order. When groupCol is set, only rows whose
	// group column matches group are touched. Ids that match no row are
	// skipped. Returns the number of rows actually updated.
	Reorder(ctx context.Context, table, groupCol, group string, ids []uuid.UUID) (int, error)
}
