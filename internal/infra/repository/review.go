package repository

import (
	"context"

	"orbital-booking/internal/domain/review"
	"orbital-booking/internal/infra"
	"orbital-booking/internal/infra/repository/converter"
	sqlc "orbital-booking/internal/infra/sqlc/generated"
)

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReviewParams) error
}

type ReviewRepository struct {
	queries ReviewWriteQueries
	db      sqlc.DBTX
}

func NewReviewRepository(queries ReviewWriteQueries, db sqlc.DBTX) *ReviewRepository {
	return &ReviewRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error {
	if err := r.queries.CreateReview(ctx, tx, converter.ReviewToCreateParams(rev)); err != nil {
		wrapped := infra.WrapRepoErr("failed to create review", err)
		if infra.IsKind(wrapped, infra.KindDuplicateKey) {
			return review.ErrReviewAlreadyExists
		}
		return wrapped
	}
	return nil
}
