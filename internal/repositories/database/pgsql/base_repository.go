package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oclock/event_backend/internal/apperrors"
	portsrepo "github.com/oclock/event_backend/internal/core/ports/repositories"
)

// txCtxKey carries an open transaction through the context so that every
// repository call made inside TxManager.WithinTx joins it.
type txCtxKey struct{}

// querier is the subset of pgx operations shared by the pool and an open
// transaction. Repositories issue all queries through it.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// q returns the transaction from the context if one is open, the pool
// otherwise.
func (r *BaseRepository) q(ctx context.Context) querier {
	if tx, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		return tx
	}
	return r.Pool
}

// PgxTxManager runs functions inside a single database transaction.
type PgxTxManager struct {
	pool *pgxpool.Pool
}

func newPgxTxManager(pool *pgxpool.Pool) portsrepo.TxManager {
	return &PgxTxManager{pool: pool}
}

var _ portsrepo.TxManager = (*PgxTxManager)(nil)

// WithinTx begins a transaction, stores it in the context and runs fn. Any
// error from fn rolls the whole transaction back. Nested calls join the
// already open transaction.
func (m *PgxTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txCtx := context.WithValue(ctx, txCtxKey{}, tx)
	if err := fn(txCtx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// mapPgError translates unique and foreign key violations into the stable
// constraint error so handlers can report them as conflicts.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505", "23503":
			return fmt.Errorf("%w: %s", apperrors.ErrDatabaseConstraint, pgErr.ConstraintName)
		}
	}
	return err
}
