package commands

import (
	"context"
	"errors"

	"orbital-booking/internal/domain/reservation"
	domreview "orbital-booking/internal/domain/review"
	"orbital-booking/internal/pkg/clock"
	"orbital-booking/internal/pkg/errs"
	"orbital-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type CreateReviewRequest struct {
	DestinationID uuid.UUID
	ReservationID uuid.UUID
	Rating        int
	Comment       string
}

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error)
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

// CreateReview stores one review per completed reservation and refreshes the
// destination's rating stats in the same unit of work.
func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error) {
	ctx, span := tracer.Start(ctx, "review.create", trace.WithAttributes(
		attribute.String("reservation.id", req.ReservationID.String()),
		attribute.String("destination.id", req.DestinationID.String()),
	))
	defer span.End()

	rating, err := domreview.NewRating(req.Rating)
	if err != nil {
		return nil, err
	}
	comment, err := domreview.NewComment(req.Comment)
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		services := &domreview.Services{
			EligibilityChecker: &eligibility{ctx: ctx, reads: tx.Reads()},
		}

		rev, derr := domreview.NewReview(services, userID, req.DestinationID, req.ReservationID, rating, comment, uc.clock.Now())
		if derr != nil {
			return derr
		}

		if derr = tx.Reviews().Create(ctx, tx.DB(), rev); derr != nil {
			return derr
		}
		if derr = tx.RatingStats().RecalcDestinationRatingStats(ctx, tx.DB(), req.DestinationID); derr != nil {
			return derr
		}

		createdID = rev.ID()
		return enqueueEvent(ctx, tx, TopicReviewCreated, ReviewEvent{
			ReviewID:      rev.ID(),
			DestinationID: rev.DestinationID(),
			ReservationID: rev.ReservationID(),
			Rating:        rev.Rating().Value(),
			OccurredAt:    rev.CreatedAt(),
		}, uc.clock.Now())
	})
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	return &CreateReviewResult{ReviewID: createdID}, nil
}

// eligibility reads through the enclosing transaction.
type eligibility struct {
	ctx   context.Context
	reads shared.CommandReads
}

func (e *eligibility) CanPostReview(input domreview.EligibilityInput) error {
	snap, err := e.reads.ReservationReviewContext(e.ctx, input.ReservationID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return ErrReservationNotFound
		}
		return err
	}
	if snap.UserID != input.UserID || snap.DestinationID != input.DestinationID {
		return domreview.ErrReservationNotEligible
	}
	if snap.Status != reservation.StatusCompleted {
		return domreview.ErrReservationNotEligible
	}
	return nil
}
