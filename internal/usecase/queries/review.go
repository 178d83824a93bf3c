package queries

import (
	"context"

	"orbital-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReviewFilters struct {
	MinRating *int
}

type ReviewReadStore interface {
	FindByDestination(ctx context.Context, destinationID uuid.UUID, minRating *int, after *Keyset, limit int32) ([]*ReviewListItem, error)
	GetDestinationRatingStats(ctx context.Context, destinationID uuid.UUID) (*DestinationRatingStats, error)
}

type ReviewQueries interface {
	ListByDestination(ctx context.Context, destinationID uuid.UUID, filters ReviewFilters, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error)
	GetDestinationRatingStats(ctx context.Context, destinationID uuid.UUID) (*DestinationRatingStats, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

func (q *reviewQueriesImpl) ListByDestination(ctx context.Context, destinationID uuid.UUID, filters ReviewFilters, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error) {
	after, err := keysetFrom(cursor)
	if err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	rows, err := q.store.FindByDestination(ctx, destinationID, filters.MinRating, after, pgconv.IntToInt32(limit+1))
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *reviewQueriesImpl) GetDestinationRatingStats(ctx context.Context, destinationID uuid.UUID) (*DestinationRatingStats, error) {
	return q.store.GetDestinationRatingStats(ctx, destinationID)
}
