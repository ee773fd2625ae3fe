package service

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/ordering/model"
	"portfolio-backend/internal/domains/ordering/repository"
	"portfolio-backend/pkg/cache"
)

// OrderingService persists drag-and-drop reorders from the dashboard.
// One service covers every reorderable collection via the registry.
type OrderingService interface {
	// Reorder rewrites the positions of one collection (or one group of
	// a grouped collection) to match the submitted order and returns the
	// number of rows updated.
	Reorder(ctx context.Context, collection string, req model.ReorderRequest) (int, error)
}

type orderingService struct {
	orderingRepo repository.OrderingRepository
	invalidator  cache.Invalidator
}

func NewOrderingService(orderingRepo repository.OrderingRepository, invalidator cache.Invalidator) OrderingService {
	return &orderingService{
		orderingRepo: orderingRepo,
		invalidator:  invalidator,
	}
}

func (s *orderingService) Reorder(ctx context.Context, collection string, req model.ReorderRequest) (int, error) {
	col, ok := model.Collections[collection]
	if !ok {
		return 0, model.ErrUnknownCollection
	}

	if col.GroupCol != "" && req.Group == "" {
		return 0, model.ErrGroupRequired
	}

	if err := req.Validate(); err != nil {
		return 0, err
	}

	// Submission order is canonical: whatever sort_order values the
	// client sent, rows end up at dense positions 0..n-1 by index.
	ids := make([]uuid.UUID, len(req.Items))
	for i, item := range req.Items {
		ids[i] = item.ID
	}

	updated, err := s.orderingRepo.Reorder(ctx, col.Table, col.GroupCol, req.Group, ids)
	if err != nil {
		return 0, err
	}

	if err := s.invalidator.Invalidate(ctx, col.CacheTag); err != nil {
		return 0, err
	}

	return updated, nil
}
