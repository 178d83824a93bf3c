package repository

import (
	"context"

	"orbital-booking/internal/domain/payment"
	"orbital-booking/internal/infra"
	sqlc "orbital-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type PaymentWriteQueries interface {
	TransitionPaymentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionPaymentStatusParams) ([]uuid.UUID, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

// FlagRefunds moves completed payments of the reservation to refunded and
// returns their ids. Moving money back is the payment service's job.
func (r *PaymentRepository) FlagRefunds(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.queries.TransitionPaymentStatus(ctx, tx, sqlc.TransitionPaymentStatusParams{
		ToStatus:      payment.StatusRefunded.String(),
		ReservationID: reservationID,
		FromStatus:    payment.StatusCompleted.String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to flag payments for refund", err)
	}
	return ids, nil
}
