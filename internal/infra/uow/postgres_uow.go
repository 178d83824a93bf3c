package uow

import (
	"context"
	"errors"
	"log/slog"

	"orbital-booking/internal/domain/reservation"
	"orbital-booking/internal/infra/readstore"
	"orbital-booking/internal/infra/repository"
	sqlc "orbital-booking/internal/infra/sqlc/generated"
	"orbital-booking/internal/pkg/errs"
	"orbital-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var errReadOnlyBegin = errs.New("failed to begin read-only transaction")

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted is enough here: seat counters are protected by conditional
// updates and reservation rows by SELECT ... FOR UPDATE.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	_, err := shared.RunInTx(ctx, u.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(dbtx sqlc.DBTX) (struct{}, error) {
		return struct{}{}, fn(ctx, &pgTx{dbtx: dbtx, uow: u})
	})
	return err
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Classify(errs.Mark(err, errReadOnlyBegin), errs.ErrStorageFailure)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	inventory      shared.InventoryLedger
	reservations   shared.ReservationRepository
	payments       shared.PaymentRepository
	reviews        shared.ReviewRepository
	ratingStats    shared.RatingStatsRepository
	notifications  shared.NotificationRepository
	reconciliation shared.ReconciliationRepository
	commandReads   shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Inventory() shared.InventoryLedger {
	if t.inventory == nil {
		t.inventory = repository.NewInventoryRepository(t.uow.q, t.dbtx)
	}
	return t.inventory
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservations == nil {
		t.reservations = repository.NewReservationRepository(t.uow.q, t.dbtx)
	}
	return t.reservations
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.payments == nil {
		t.payments = repository.NewPaymentRepository(t.uow.q, t.dbtx)
	}
	return t.payments
}

func (t *pgTx) Reviews() shared.ReviewRepository {
	if t.reviews == nil {
		t.reviews = repository.NewReviewRepository(t.uow.q, t.dbtx)
	}
	return t.reviews
}

func (t *pgTx) RatingStats() shared.RatingStatsRepository {
	if t.ratingStats == nil {
		t.ratingStats = repository.NewRatingStatsRepository(t.uow.q, t.dbtx)
	}
	return t.ratingStats
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notifications == nil {
		t.notifications = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notifications
}

func (t *pgTx) Reconciliation() shared.ReconciliationRepository {
	if t.reconciliation == nil {
		t.reconciliation = repository.NewReconciliationRepository(t.uow.q, t.dbtx)
	}
	return t.reconciliation
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	catalogStore     *readstore.CatalogReadStore
	reservationStore *readstore.ReservationReadStore
}

func (r *commandReads) catalog() *readstore.CatalogReadStore {
	if r.catalogStore == nil {
		r.catalogStore = readstore.NewCatalogReadStore(r.uow.q, r.dbtx)
	}
	return r.catalogStore
}

func (r *commandReads) RouteSnapshot(ctx context.Context, routeID uuid.UUID) (*shared.RouteSnapshot, error) {
	return r.catalog().RouteSnapshot(ctx, routeID)
}

func (r *commandReads) ActivityPrice(ctx context.Context, activityID uuid.UUID) (reservation.Money, error) {
	return r.catalog().ActivityPrice(ctx, activityID)
}

func (r *commandReads) AvailableSeats(ctx context.Context, routeID uuid.UUID) (int, error) {
	view, err := r.catalog().FindAvailability(ctx, routeID)
	if err != nil {
		return 0, err
	}
	return int(view.AvailableSeats), nil
}

func (r *commandReads) ReservationReviewContext(ctx context.Context, reservationID uuid.UUID) (*shared.ReservationReviewSnapshot, error) {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.uow.q, r.dbtx)
	}
	return r.reservationStore.ReviewContext(ctx, reservationID)
}
