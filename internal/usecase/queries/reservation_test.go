//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"orbital-booking/internal/domain/user"
	"orbital-booking/internal/infra"
	"orbital-booking/internal/pkg/errs"
	"orbital-booking/internal/usecase/queries"
	"orbital-booking/tests/common/builder"
	queriesmock "orbital-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	testCases := []struct {
		name      string
		actorID   uuid.UUID
		actorRole user.Role
		storeErr  error
		errIs     error
	}{
		{name: "owner reads own reservation", actorID: ownerID, actorRole: user.RoleCustomer},
		{name: "operator reads any reservation", actorID: uuid.New(), actorRole: user.RoleOperator},
		{name: "admin reads any reservation", actorID: uuid.New(), actorRole: user.RoleAdmin},
		{name: "other customer is refused", actorID: uuid.New(), actorRole: user.RoleCustomer, errIs: queries.ErrReservationAccess},
		{
			name:     "missing reservation maps to not found",
			actorID:  ownerID,
			storeErr: infra.NewRepoErr(infra.KindNotFound, "reservation not found"),
			errIs:    queries.ErrReservationNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockReservationReadStore(ctrl)
			q := queries.NewReservationQueries(store)

			view := builder.NewReservationBuilder().WithUserID(ownerID).BuildView()
			if tc.storeErr != nil {
				store.EXPECT().FindByID(ctx, view.ID).Return(nil, tc.storeErr)
			} else {
				store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
			}

			result, err := q.GetByID(ctx, tc.actorID, tc.actorRole, view.ID)

			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, result)
		})
	}

	t.Run("forbidden is its own class", func(t *testing.T) {
		assert.ErrorIs(t, queries.ErrReservationAccess, errs.ErrForbidden)
		assert.ErrorIs(t, queries.ErrReservationNotFound, errs.ErrNotFound)
	})
}

func TestReservationQueries_ListByUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	items := func(n int) []*queries.ReservationListItem {
		out := make([]*queries.ReservationListItem, n)
		base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		for i := range out {
			item := builder.NewReservationBuilder().WithUserID(userID).BuildListItem()
			item.CreatedAt = base.Add(-time.Duration(i) * time.Minute)
			out[i] = item
		}
		return out
	}

	t.Run("more rows than the limit yields a next cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		q := queries.NewReservationQueries(store)

		rows := items(3)
		store.EXPECT().FindByUser(ctx, userID, (*queries.Keyset)(nil), int32(3)).Return(rows, nil)

		page, next, err := q.ListByUser(ctx, userID, nil, 2)
		require.NoError(t, err)
		assert.Len(t, page, 2)
		require.NotNil(t, next)

		createdAt, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, id)
		assert.True(t, rows[1].CreatedAt.Equal(createdAt))
	})

	t.Run("last page has no cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		q := queries.NewReservationQueries(store)

		store.EXPECT().FindByUser(ctx, userID, gomock.Any(), int32(queries.DefaultListLimit+1)).Return(items(1), nil)

		page, next, err := q.ListByUser(ctx, userID, nil, 0)
		require.NoError(t, err)
		assert.Len(t, page, 1)
		assert.Nil(t, next)
	})

	t.Run("cursor decoded into keyset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		q := queries.NewReservationQueries(store)

		at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
		afterID := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(at, afterID)}

		store.EXPECT().FindByUser(ctx, userID, gomock.Cond(func(k *queries.Keyset) bool {
			return k != nil && k.CreatedAt.Equal(at) && k.ID == afterID
		}), int32(21)).Return(nil, nil)

		page, next, err := q.ListByUser(ctx, userID, cursor, 20)
		require.NoError(t, err)
		assert.Empty(t, page)
		assert.Nil(t, next)
	})

	t.Run("garbage cursor is invalid input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		q := queries.NewReservationQueries(store)

		_, _, err := q.ListByUser(ctx, userID, &queries.Cursor{After: "not-a-cursor"}, 20)
		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})
}
