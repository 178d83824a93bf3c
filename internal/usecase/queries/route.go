package queries

import (
	"context"
	"errors"

	"orbital-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRouteNotFound = errs.Class("route not found", errs.ErrNotFound)

type RouteReadStore interface {
	FindAvailability(ctx context.Context, routeID uuid.UUID) (*RouteAvailabilityView, error)
}

type RouteQueries interface {
	GetAvailability(ctx context.Context, routeID uuid.UUID) (*RouteAvailabilityView, error)
}

type routeQueriesImpl struct {
	store RouteReadStore
}

func NewRouteQueries(store RouteReadStore) RouteQueries {
	return &routeQueriesImpl{store: store}
}

// GetAvailability also reports inactive routes so operators can see them;
// booking still refuses inactive routes.
func (q *routeQueriesImpl) GetAvailability(ctx context.Context, routeID uuid.UUID) (*RouteAvailabilityView, error) {
	view, err := q.store.FindAvailability(ctx, routeID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, ErrRouteNotFound
		}
		return nil, err
	}
	return view, nil
}
