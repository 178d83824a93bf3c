package reconcile

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"orbital-booking/internal/domain/inventory"
	"orbital-booking/internal/pkg/clock"
	"orbital-booking/internal/pkg/config"
	"orbital-booking/internal/pkg/errs"
	"orbital-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

var ErrRouteBusy = errs.New("route is being reconciled elsewhere")

var tracer = otel.Tracer("orbital-booking/usecase/reconcile")

// RouteLocker grants at most one reconciliation of a route at a time across
// processes. The returned func releases the lock.
type RouteLocker interface {
	TryLock(ctx context.Context, routeID uuid.UUID, ttl time.Duration) (func(context.Context), bool, error)
}

type RouteDrift struct {
	RouteID    uuid.UUID `json:"route_id"`
	TotalSeats int       `json:"total_seats"`
	Stored     int       `json:"stored"`
	Expected   int       `json:"expected"`
	Overbooked bool      `json:"overbooked"`
	Corrected  bool      `json:"corrected"`
}

type Report struct {
	RunID         uuid.UUID       `json:"run_id"`
	StartedAt     time.Time       `json:"started_at"`
	FinishedAt    time.Time       `json:"finished_at"`
	RoutesScanned int             `json:"routes_scanned"`
	RoutesSkipped int             `json:"routes_skipped"`
	RoutesFailed  int             `json:"routes_failed"`
	Drifts        []RouteDrift    `json:"drifts"`
	Orphans       []shared.Orphan `json:"orphans"`
	DateRepairs   []DateRepair    `json:"date_repairs"`
}

// Guard is the Consistency Guard. It runs out of band and never on the
// request path; each route is checked in its own short transaction.
type Guard struct {
	uow    shared.UnitOfWork
	locker RouteLocker
	clock  clock.Clock
	cfg    config.ReconcileConfig
	flight singleflight.Group
}

func NewGuard(uow shared.UnitOfWork, locker RouteLocker, clk clock.Clock, cfg config.ReconcileConfig) *Guard {
	return &Guard{
		uow:    uow,
		locker: locker,
		clock:  clk,
		cfg:    cfg,
	}
}

// Run checks every route's seat counter, then scans for orphaned references
// and repairs missing or inverted travel dates.
func (g *Guard) Run(ctx context.Context) (*Report, error) {
	ctx, span := tracer.Start(ctx, "reconcile.run")
	defer span.End()

	report := &Report{RunID: uuid.New(), StartedAt: g.clock.Now()}
	span.SetAttributes(attribute.String("reconcile.run_id", report.RunID.String()))

	var routeIDs []uuid.UUID
	err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ids, err := tx.Reconciliation().ListRouteIDs(ctx, tx.DB())
		routeIDs = ids
		return err
	})
	if err != nil {
		return nil, g.fail(span, err)
	}

	if err := g.reconcileRoutes(ctx, report, routeIDs); err != nil {
		return nil, g.fail(span, err)
	}

	orphans, err := g.scanOrphans(ctx, report.RunID)
	if err != nil {
		return nil, g.fail(span, err)
	}
	report.Orphans = orphans

	repairs, err := g.repairDates(ctx, report.RunID)
	if err != nil {
		return nil, g.fail(span, err)
	}
	report.DateRepairs = repairs

	report.FinishedAt = g.clock.Now()
	span.SetAttributes(
		attribute.Int("reconcile.routes", report.RoutesScanned),
		attribute.Int("reconcile.drifts", len(report.Drifts)),
		attribute.Int("reconcile.orphans", len(report.Orphans)),
		attribute.Int("reconcile.date_repairs", len(report.DateRepairs)),
	)
	slog.Info("reconciliation finished",
		slog.String("run_id", report.RunID.String()),
		slog.Int("routes", report.RoutesScanned),
		slog.Int("skipped", report.RoutesSkipped),
		slog.Int("failed", report.RoutesFailed),
		slog.Int("drifts", len(report.Drifts)),
		slog.Int("orphans", len(report.Orphans)),
		slog.Int("date_repairs", len(report.DateRepairs)))
	return report, nil
}

func (g *Guard) reconcileRoutes(ctx context.Context, report *Report, routeIDs []uuid.UUID) error {
	var mu sync.Mutex
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(g.cfg.Concurrency, 1))

	for _, routeID := range routeIDs {
		eg.Go(func() error {
			drift, err := g.ReconcileRoute(egctx, report.RunID, routeID)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case errors.Is(err, ErrRouteBusy):
				report.RoutesSkipped++
			case err != nil:
				if ctxErr := egctx.Err(); ctxErr != nil {
					return ctxErr
				}
				report.RoutesFailed++
				slog.Error("route reconciliation failed", "route_id", routeID.String(), "error", err.Error())
			default:
				report.RoutesScanned++
				if drift != nil {
					report.Drifts = append(report.Drifts, *drift)
				}
			}
			return nil
		})
	}
	return eg.Wait()
}

type flightResult struct {
	runID uuid.UUID
	drift *RouteDrift
}

// ReconcileRoute compares one route's stored counter with the seats held by
// its pendiente and confirmada reservations. It returns nil when they agree
// and ErrRouteBusy when another runner holds the route. A caller that joins
// an in-process check started by a different run also gets ErrRouteBusy,
// since the findings were recorded under that run.
func (g *Guard) ReconcileRoute(ctx context.Context, runID, routeID uuid.UUID) (*RouteDrift, error) {
	v, err, _ := g.flight.Do(routeID.String(), func() (any, error) {
		unlock, ok, err := g.locker.TryLock(ctx, routeID, g.cfg.LockTTL)
		if err != nil {
			return flightResult{runID: runID}, err
		}
		if !ok {
			return flightResult{runID: runID}, ErrRouteBusy
		}
		defer unlock(context.WithoutCancel(ctx))

		drift, err := g.reconcileRoute(ctx, runID, routeID)
		return flightResult{runID: runID, drift: drift}, err
	})
	res, _ := v.(flightResult)
	if res.runID != runID {
		return nil, ErrRouteBusy
	}
	if err != nil {
		return nil, err
	}
	return res.drift, nil
}

func (g *Guard) reconcileRoute(ctx context.Context, runID, routeID uuid.UUID) (*RouteDrift, error) {
	var result *RouteDrift
	err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		repo := tx.Reconciliation()

		total, stored, err := repo.LockRouteSeats(ctx, tx.DB(), routeID)
		if err != nil {
			return err
		}
		active, err := repo.SumActivePassengers(ctx, tx.DB(), routeID)
		if err != nil {
			return err
		}

		drift := inventory.ComputeDrift(total, stored, active)
		if !drift.HasDrift() {
			return nil
		}

		result = &RouteDrift{
			RouteID:    routeID,
			TotalSeats: total,
			Stored:     drift.Stored,
			Expected:   drift.Expected,
			Overbooked: drift.Overbooked,
		}

		if g.cfg.Fix && drift.Stored != drift.Expected {
			seats, err := inventory.NewSeats(total, drift.Expected)
			if err != nil {
				return err
			}
			if err := repo.SetAvailableSeats(ctx, tx.DB(), routeID, seats.Available()); err != nil {
				return err
			}
			result.Corrected = true
		}

		kind := shared.FindingSeatDrift
		if drift.Overbooked {
			kind = shared.FindingOverbooked
		}
		slog.Warn("seat counter drift",
			slog.String("route_id", routeID.String()),
			slog.String("kind", string(kind)),
			slog.Int("stored", drift.Stored),
			slog.Int("expected", drift.Expected),
			slog.Int("active_passengers", active),
			slog.Bool("corrected", result.Corrected))

		return repo.RecordFinding(ctx, tx.DB(), shared.Finding{
			RunID:     runID,
			Kind:      kind,
			SubjectID: routeID,
			RouteID:   &routeID,
			Detail: map[string]any{
				"total_seats":       total,
				"stored":            drift.Stored,
				"expected":          drift.Expected,
				"active_passengers": active,
			},
			Corrected: result.Corrected,
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// scanOrphans only reports. Deleting or re-pointing rows needs a human.
func (g *Guard) scanOrphans(ctx context.Context, runID uuid.UUID) ([]shared.Orphan, error) {
	var orphans []shared.Orphan
	err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Reconciliation().ListOrphans(ctx, tx.DB())
		if err != nil {
			return err
		}
		for _, o := range found {
			slog.Warn("orphaned reference",
				slog.String("kind", string(o.Kind)),
				slog.String("subject_id", o.SubjectID.String()),
				slog.String("reference_id", o.ReferenceID.String()))

			err := tx.Reconciliation().RecordFinding(ctx, tx.DB(), shared.Finding{
				RunID:     runID,
				Kind:      shared.FindingOrphan,
				SubjectID: o.SubjectID,
				Detail: map[string]any{
					"orphan_kind":  string(o.Kind),
					"reference_id": o.ReferenceID.String(),
				},
			})
			if err != nil {
				return err
			}
		}
		orphans = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orphans, nil
}

func (g *Guard) repairDates(ctx context.Context, runID uuid.UUID) ([]DateRepair, error) {
	fallback, err := g.cfg.ParsedDefaultDate()
	if err != nil {
		return nil, errs.Classify(errs.Wrap(err, "parse default travel date"), errs.ErrInvalidInput)
	}

	var repairs []DateRepair
	err = g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		invalid, err := tx.Reconciliation().ListInvalidDates(ctx, tx.DB())
		if err != nil {
			return err
		}

		for _, row := range invalid {
			repair := PlanDateRepair(row, fallback)
			if err := tx.Reconciliation().UpdateTravelDates(ctx, tx.DB(), row.ReservationID, repair.Dates); err != nil {
				return err
			}

			routeID := row.RouteID
			err := tx.Reconciliation().RecordFinding(ctx, tx.DB(), shared.Finding{
				RunID:     runID,
				Kind:      shared.FindingDateRepair,
				SubjectID: row.ReservationID,
				RouteID:   &routeID,
				Detail: map[string]any{
					"source":         string(repair.Source),
					"departure_date": repair.Dates.Departure().Format(time.DateOnly),
					"return_date":    repair.Dates.Return().Format(time.DateOnly),
				},
				Corrected: true,
			})
			if err != nil {
				return err
			}
			repairs = append(repairs, repair)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return repairs, nil
}

func (g *Guard) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
