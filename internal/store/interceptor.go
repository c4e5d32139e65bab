package store

import (
	"context"
	"database/sql"

	"go.uber.org/zap"
)

// QueryInterceptor is the subset of *sql.DB used by the stores.
type QueryInterceptor interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type loggingInterceptor struct {
	db *sql.DB
}

// NewQueryInterceptor wraps db so that every statement is logged at debug level.
func NewQueryInterceptor(db *sql.DB) QueryInterceptor {
	return &loggingInterceptor{db: db}
}

func (l *loggingInterceptor) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	zap.S().Named("store").Debugw("query", "sql", query, "args", args)
	return l.db.QueryContext(ctx, query, args...)
}

func (l *loggingInterceptor) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	zap.S().Named("store").Debugw("query row", "sql", query, "args", args)
	return l.db.QueryRowContext(ctx, query, args...)
}

func (l *loggingInterceptor) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	zap.S().Named("store").Debugw("exec", "sql", query, "args", args)
	return l.db.ExecContext(ctx, query, args...)
}

func (l *loggingInterceptor) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	zap.S().Named("store").Debug("begin transaction")
	return l.db.BeginTx(ctx, opts)
}
