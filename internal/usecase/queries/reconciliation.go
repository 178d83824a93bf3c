package queries

import (
	"context"

	"github.com/google/uuid"
)

type FindingReadStore interface {
	FindByRun(ctx context.Context, runID uuid.UUID) ([]*ReconciliationFindingView, error)
}

type ReconciliationQueries interface {
	ListFindings(ctx context.Context, runID uuid.UUID) ([]*ReconciliationFindingView, error)
}

type reconciliationQueriesImpl struct {
	store FindingReadStore
}

func NewReconciliationQueries(store FindingReadStore) ReconciliationQueries {
	return &reconciliationQueriesImpl{store: store}
}

func (q *reconciliationQueriesImpl) ListFindings(ctx context.Context, runID uuid.UUID) ([]*ReconciliationFindingView, error) {
	return q.store.FindByRun(ctx, runID)
}
