package shared

import (
	"context"
	"errors"
	"log/slog"

	sqlc "orbital-booking/internal/infra/sqlc/generated"
	"orbital-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrTransactionBegin  = errs.New("failed to begin transaction")
	ErrTransactionCommit = errs.New("failed to commit transaction")
)

// RunInTx runs fn in a single transaction and commits only if fn succeeds.
// There is no retry: a failed attempt is fully rolled back and reported.
func RunInTx[T any](ctx context.Context, db *pgxpool.Pool, opts pgx.TxOptions, fn func(tx sqlc.DBTX) (T, error)) (T, error) {
	var zero T

	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return zero, errs.Classify(errs.Mark(err, ErrTransactionBegin), errs.ErrStorageFailure)
	}

	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			// Only log rollback errors for uncommitted transactions
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback transaction", "error", rollbackErr)
			}
		}
	}()

	result, err := fn(tx)
	if err != nil {
		return zero, err
	}

	if err = tx.Commit(ctx); err != nil {
		return zero, errs.Classify(errs.Mark(err, ErrTransactionCommit), errs.ErrStorageFailure)
	}

	return result, nil
}
