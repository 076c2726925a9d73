package core

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

type DBOption func(*sql.DB)

func WithMaxOpenConns(n int) DBOption {
	return func(db *sql.DB) {
		db.SetMaxOpenConns(n)
	}
}

func WithMaxIdleConns(n int) DBOption {
	return func(db *sql.DB) {
		db.SetMaxIdleConns(n)
	}
}

func WithConnMaxLifetime(d time.Duration) DBOption {
	return func(db *sql.DB) {
		db.SetConnMaxLifetime(d)
	}
}

// OpenDB opens the postgres connection pool shared by every handler and
// verifies it is reachable.
func OpenDB(ctx context.Context, databaseURL string, opts ...DBOption) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}

	for _, opt := range opts {
		opt(db)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to reach database")
	}

	return db, nil
}

type TransactionOption func(*sql.TxOptions)

func WithIsolationLevel(isolationLevel sql.IsolationLevel) TransactionOption {
	return func(opts *sql.TxOptions) {
		opts.Isolation = isolationLevel
	}
}

func Tx(
	ctx context.Context,
	db *sql.DB,
	transaction func(context.Context, *sql.Tx) error,
	opts ...TransactionOption,
) (err error) {
	options := sql.TxOptions{}

	for _, opt := range opts {
		opt(&options)
	}

	tx, err := db.BeginTx(ctx, &options)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("transaction panicked with: %v", r)
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				err = errors.Wrapf(err, "rollback failed: %v", rollbackErr)
			}
		}
	}()

	err = transaction(ctx, tx)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf("%s: %w", rollbackErr.Error(), err)
		}

		return err
	}

	return tx.Commit()
}
