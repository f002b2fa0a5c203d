package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Builder builds statements with PostgreSQL $n placeholders.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Querier is implemented by both *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txCtxKey struct{}

func withTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

func txFromCtx(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txCtxKey{}).(pgx.Tx)
	return tx, ok
}

// QuerierFromCtx returns the transaction started by TxManager.RunInTx when
// ctx carries one, otherwise pool.
func QuerierFromCtx(ctx context.Context, pool *pgxpool.Pool) Querier {
	if tx, ok := txFromCtx(ctx); ok {
		return tx
	}
	return pool
}

// QueryRow builds b and runs it on the querier of ctx. A build failure is
// returned by the row's Scan.
func QueryRow(ctx context.Context, pool *pgxpool.Pool, b sq.Sqlizer) pgx.Row {
	query, args, err := b.ToSql()
	if err != nil {
		return errRow{err: fmt.Errorf("build query: %w", err)}
	}
	return QuerierFromCtx(ctx, pool).QueryRow(ctx, query, args...)
}

// Query builds b and runs it on the querier of ctx.
func Query(ctx context.Context, pool *pgxpool.Pool, b sq.Sqlizer) (pgx.Rows, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return QuerierFromCtx(ctx, pool).Query(ctx, query, args...)
}

// Exec builds b and executes it on the querier of ctx.
func Exec(ctx context.Context, pool *pgxpool.Pool, b sq.Sqlizer) (pgconn.CommandTag, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build statement: %w", err)
	}
	return QuerierFromCtx(ctx, pool).Exec(ctx, query, args...)
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }
