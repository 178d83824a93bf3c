package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"orbital-booking/internal/domain/reservation"
	"orbital-booking/internal/pkg/clock"
	"orbital-booking/internal/pkg/errs"
	"orbital-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrRouteNotFound       = errs.Class("route not found", errs.ErrNotFound)
	ErrActivityNotFound    = errs.Class("activity not found", errs.ErrNotFound)
	ErrReservationNotFound = errs.Class("reservation not found", errs.ErrNotFound)
)

const (
	canceledMessage        = "reservation canceled"
	alreadyCanceledMessage = "reservation was already canceled"
)

var tracer = otel.Tracer("orbital-booking/usecase/commands")

type ActivityLine struct {
	ActivityID uuid.UUID
	Quantity   int
}

type CreateReservationRequest struct {
	RouteID    uuid.UUID
	Passengers int
	Activities []ActivityLine
}

type CreateReservationResult struct {
	ReservationID      uuid.UUID
	Status             reservation.Status
	RouteSubtotal      reservation.Money
	ActivitiesSubtotal reservation.Money
	Total              reservation.Money
	AvailableSeats     int
}

type CancelReservationResult struct {
	ReservationID uuid.UUID
	Message       string
	// AlreadyCanceled marks a repeated cancel that changed nothing.
	AlreadyCanceled    bool
	RefundedPaymentIDs []uuid.UUID
	// AvailableSeats is nil when a repeated cancel cannot read the route.
	AvailableSeats *int
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, req CreateReservationRequest, userID uuid.UUID) (*CreateReservationResult, error)
	CancelReservation(ctx context.Context, reservationID, userID uuid.UUID) (*CancelReservationResult, error)
	ConfirmReservation(ctx context.Context, reservationID uuid.UUID) error
	CompleteReservation(ctx context.Context, reservationID uuid.UUID) error
}

type reservationUseCaseImpl struct {
	uow     shared.UnitOfWork
	factory *reservation.Factory
	clock   clock.Clock
}

func NewReservationUseCase(uow shared.UnitOfWork, factory *reservation.Factory, clk clock.Clock) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:     uow,
		factory: factory,
		clock:   clk,
	}
}

// CreateReservation prices the request against the catalog and books it in
// one unit of work: the seat debit, the reservation, its line items and the
// created event commit together or not at all.
func (uc *reservationUseCaseImpl) CreateReservation(ctx context.Context, req CreateReservationRequest, userID uuid.UUID) (*CreateReservationResult, error) {
	ctx, span := tracer.Start(ctx, "reservation.create", trace.WithAttributes(
		attribute.String("route.id", req.RouteID.String()),
		attribute.Int("passengers", req.Passengers),
		attribute.Int("activities", len(req.Activities)),
	))
	defer span.End()

	var result *CreateReservationResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		route, err := tx.Reads().RouteSnapshot(ctx, req.RouteID)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return ErrRouteNotFound
			}
			return err
		}

		passengers, err := reservation.NewPassengerCount(req.Passengers)
		if err != nil {
			return err
		}
		requests, err := toActivityRequests(req.Activities)
		if err != nil {
			return err
		}
		unitPrices, err := resolveActivityPrices(ctx, tx.Reads(), requests)
		if err != nil {
			return err
		}

		res, err := uc.factory.CreateReservation(route.Spec(), userID, passengers, requests, unitPrices)
		if err != nil {
			return err
		}

		remaining, err := tx.Inventory().ReserveSeats(ctx, tx.DB(), route.ID, passengers.Int())
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return ErrRouteNotFound
			}
			return err
		}

		if err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			return err
		}

		if err := enqueueEvent(ctx, tx, TopicReservationCreated, newReservationEvent(res, nil), uc.clock.Now()); err != nil {
			return err
		}

		result = &CreateReservationResult{
			ReservationID:      res.ID(),
			Status:             res.Status(),
			RouteSubtotal:      res.RouteSubtotal(),
			ActivitiesSubtotal: res.ActivitiesSubtotal(),
			Total:              res.Total(),
			AvailableSeats:     remaining,
		}
		return nil
	})
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.String("reservation.id", result.ReservationID.String()))
	return result, nil
}

// CancelReservation releases the reservation's seats exactly once. A second
// cancel of the same reservation reports success without touching anything.
func (uc *reservationUseCaseImpl) CancelReservation(ctx context.Context, reservationID, userID uuid.UUID) (*CancelReservationResult, error) {
	ctx, span := tracer.Start(ctx, "reservation.cancel", trace.WithAttributes(
		attribute.String("reservation.id", reservationID.String()),
	))
	defer span.End()

	var result *CancelReservationResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := loadForUpdate(ctx, tx, reservationID)
		if err != nil {
			return err
		}
		if !res.IsOwnedBy(userID) {
			return reservation.ErrNotOwner
		}

		from := res.Status()
		if err := res.Cancel(uc.clock.Now()); err != nil {
			if errors.Is(err, reservation.ErrAlreadyCanceled) {
				result = &CancelReservationResult{
					ReservationID:   reservationID,
					Message:         alreadyCanceledMessage,
					AlreadyCanceled: true,
				}
				seats, err := tx.Reads().AvailableSeats(ctx, res.RouteID())
				switch {
				case err == nil:
					result.AvailableSeats = &seats
				case errors.Is(err, errs.ErrNotFound):
					slog.Warn("canceled reservation references a missing route",
						slog.String("reservation_id", reservationID.String()),
						slog.String("route_id", res.RouteID().String()))
				default:
					return err
				}
				return nil
			}
			return err
		}

		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), res, from); err != nil {
			return err
		}

		release, err := tx.Inventory().ReleaseSeats(ctx, tx.DB(), res.RouteID(), res.Passengers().Int())
		if err != nil {
			return err
		}
		if release.Overflow > 0 {
			if err := recordReleaseOverCap(ctx, tx, res, release); err != nil {
				return err
			}
		}

		refunded, err := tx.Payments().FlagRefunds(ctx, tx.DB(), res.ID())
		if err != nil {
			return err
		}

		if err := enqueueEvent(ctx, tx, TopicReservationCancelled, newReservationEvent(res, refunded), uc.clock.Now()); err != nil {
			return err
		}

		result = &CancelReservationResult{
			ReservationID:      reservationID,
			Message:            canceledMessage,
			RefundedPaymentIDs: refunded,
			AvailableSeats:     &release.Available,
		}
		return nil
	})
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Bool("reservation.already_canceled", result.AlreadyCanceled),
		attribute.Int("payments.refunded", len(result.RefundedPaymentIDs)),
	)
	return result, nil
}

func (uc *reservationUseCaseImpl) ConfirmReservation(ctx context.Context, reservationID uuid.UUID) error {
	return uc.transition(ctx, "reservation.confirm", reservationID, TopicReservationConfirmed, (*reservation.Reservation).Confirm)
}

func (uc *reservationUseCaseImpl) CompleteReservation(ctx context.Context, reservationID uuid.UUID) error {
	return uc.transition(ctx, "reservation.complete", reservationID, TopicReservationCompleted, (*reservation.Reservation).Complete)
}

// transition applies a seat-neutral state change. Only cancel moves seats.
func (uc *reservationUseCaseImpl) transition(
	ctx context.Context,
	spanName string,
	reservationID uuid.UUID,
	topic string,
	apply func(*reservation.Reservation, time.Time) error,
) error {
	ctx, span := tracer.Start(ctx, spanName, trace.WithAttributes(
		attribute.String("reservation.id", reservationID.String()),
	))
	defer span.End()

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := loadForUpdate(ctx, tx, reservationID)
		if err != nil {
			return err
		}

		from := res.Status()
		if err := apply(res, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), res, from); err != nil {
			return err
		}
		return enqueueEvent(ctx, tx, topic, newReservationEvent(res, nil), uc.clock.Now())
	})
	if err != nil {
		recordError(span, err)
	}
	return err
}

func loadForUpdate(ctx context.Context, tx shared.Tx, reservationID uuid.UUID) (*reservation.Reservation, error) {
	res, err := tx.Reservations().LoadForUpdate(ctx, tx.DB(), reservationID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return res, nil
}

func toActivityRequests(lines []ActivityLine) ([]reservation.ActivityRequest, error) {
	requests := make([]reservation.ActivityRequest, 0, len(lines))
	for _, line := range lines {
		req, err := reservation.NewActivityRequest(line.ActivityID, line.Quantity)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// resolveActivityPrices reads every unit price from the catalog. Prices sent
// by the client are never used.
func resolveActivityPrices(ctx context.Context, reads shared.CommandReads, requests []reservation.ActivityRequest) (map[uuid.UUID]reservation.Money, error) {
	prices := make(map[uuid.UUID]reservation.Money, len(requests))
	for _, req := range requests {
		if _, ok := prices[req.ActivityID()]; ok {
			continue
		}
		price, err := reads.ActivityPrice(ctx, req.ActivityID())
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return nil, errs.Classify(errs.Wrapf(err, "activity %s", req.ActivityID()), ErrActivityNotFound)
			}
			return nil, err
		}
		prices[req.ActivityID()] = price
	}
	return prices, nil
}

func recordReleaseOverCap(ctx context.Context, tx shared.Tx, res *reservation.Reservation, release shared.SeatRelease) error {
	routeID := res.RouteID()
	return tx.Reconciliation().RecordFinding(ctx, tx.DB(), shared.Finding{
		RunID:     uuid.Nil,
		Kind:      shared.FindingSeatOverCap,
		SubjectID: res.ID(),
		RouteID:   &routeID,
		Detail: map[string]any{
			"released":    res.Passengers().Int(),
			"overflow":    release.Overflow,
			"total_seats": release.Total,
		},
	})
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if errors.Is(err, errs.ErrStorageFailure) {
		slog.Error("reservation command failed", "error", err.Error())
	}
}
