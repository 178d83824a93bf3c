package readstore

import (
	"context"

	"orbital-booking/internal/infra"
	sqlc "orbital-booking/internal/infra/sqlc/generated"
	"orbital-booking/internal/pkg/pgconv"
	"orbital-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewViewQueries interface {
	ListReviewsByDestination(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByDestinationParams) ([]sqlc.ListReviewsByDestinationRow, error)
	GetDestinationRatingStats(ctx context.Context, db sqlc.DBTX, destinationID uuid.UUID) (sqlc.DestinationRatingStats, error)
}

type ReviewReadStore struct {
	queries ReviewViewQueries
	db      sqlc.DBTX
}

func NewReviewReadStore(queries ReviewViewQueries, db sqlc.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) FindByDestination(ctx context.Context, destinationID uuid.UUID, minRating *int, after *queries.Keyset, limit int32) ([]*queries.ReviewListItem, error) {
	params := sqlc.ListReviewsByDestinationParams{
		DestinationID: destinationID,
		MinRating:     toPgInt4(minRating),
		Lim:           limit,
	}
	if after != nil {
		params.AfterCreatedAt = pgconv.TimeToPgtype(after.CreatedAt)
		params.AfterID = pgconv.UUIDToPgtype(after.ID)
	}

	rows, err := r.queries.ListReviewsByDestination(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by destination", err)
	}

	result := make([]*queries.ReviewListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReviewListItem{
			ID:            row.ID,
			UserID:        row.UserID,
			UserEmail:     row.UserEmail.String,
			ReservationID: row.ReservationID,
			Rating:        row.Rating,
			Comment:       row.Comment,
			CreatedAt:     row.CreatedAt.Time,
		}
	}
	return result, nil
}

func (r *ReviewReadStore) GetDestinationRatingStats(ctx context.Context, destinationID uuid.UUID) (*queries.DestinationRatingStats, error) {
	row, err := r.queries.GetDestinationRatingStats(ctx, r.db, destinationID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			// no review yet
			return &queries.DestinationRatingStats{DestinationID: destinationID}, nil
		}
		return nil, infra.WrapRepoErr("failed to get destination rating stats", err)
	}

	avg, err := pgconv.Float64FromNumeric(row.AverageRating)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid average rating", err)
	}

	return &queries.DestinationRatingStats{
		DestinationID: row.DestinationID,
		TotalReviews:  row.TotalReviews,
		AverageRating: avg,
		Rating1Count:  row.Rating1Count,
		Rating2Count:  row.Rating2Count,
		Rating3Count:  row.Rating3Count,
		Rating4Count:  row.Rating4Count,
		Rating5Count:  row.Rating5Count,
		UpdatedAt:     row.UpdatedAt.Time,
	}, nil
}

func toPgInt4(v *int) pgtype.Int4 {
	if v == nil {
		return pgtype.Int4{Valid: false}
	}
	return pgtype.Int4{Int32: pgconv.IntToInt32(*v), Valid: true}
}
