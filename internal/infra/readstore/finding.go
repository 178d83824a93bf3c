package readstore

import (
	"context"
	"encoding/json"

	"orbital-booking/internal/infra"
	sqlc "orbital-booking/internal/infra/sqlc/generated"
	"orbital-booking/internal/pkg/pgconv"
	"orbital-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type FindingReadQueries interface {
	ListReconciliationFindingsByRun(ctx context.Context, db sqlc.DBTX, runID uuid.UUID) ([]sqlc.ReconciliationFindings, error)
}

type FindingReadStore struct {
	queries FindingReadQueries
	db      sqlc.DBTX
}

func NewFindingReadStore(queries FindingReadQueries, db sqlc.DBTX) *FindingReadStore {
	return &FindingReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *FindingReadStore) FindByRun(ctx context.Context, runID uuid.UUID) ([]*queries.ReconciliationFindingView, error) {
	rows, err := s.queries.ListReconciliationFindingsByRun(ctx, s.db, runID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reconciliation findings", err)
	}

	result := make([]*queries.ReconciliationFindingView, len(rows))
	for i, row := range rows {
		var detail map[string]any
		if len(row.Detail) > 0 {
			if err := json.Unmarshal(row.Detail, &detail); err != nil {
				return nil, infra.WrapRepoErr("invalid finding detail", err)
			}
		}
		result[i] = &queries.ReconciliationFindingView{
			ID:        row.ID,
			RunID:     row.RunID,
			Kind:      row.Kind,
			SubjectID: row.SubjectID,
			RouteID:   pgconv.UUIDPtrFromPgtype(row.RouteID),
			Detail:    detail,
			Corrected: row.Corrected,
			CreatedAt: row.CreatedAt.Time,
		}
	}
	return result, nil
}
