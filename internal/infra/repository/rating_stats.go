package repository

import (
	"context"

	"orbital-booking/internal/infra"
	sqlc "orbital-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type RatingStatsQueries interface {
	RecalcDestinationRatingStats(ctx context.Context, db sqlc.DBTX, destinationID uuid.UUID) error
}

type RatingStatsRepository struct {
	q  RatingStatsQueries
	db sqlc.DBTX
}

func NewRatingStatsRepository(q RatingStatsQueries, db sqlc.DBTX) *RatingStatsRepository {
	return &RatingStatsRepository{q: q, db: db}
}

func (r *RatingStatsRepository) RecalcDestinationRatingStats(ctx context.Context, tx sqlc.DBTX, destinationID uuid.UUID) error {
	if err := r.q.RecalcDestinationRatingStats(ctx, tx, destinationID); err != nil {
		return infra.WrapRepoErr("failed to recalc destination rating stats", err)
	}
	return nil
}
