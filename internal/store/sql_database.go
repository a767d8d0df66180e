package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/vibe-vault/internal/logger"
	"github.com/MKhiriev/vibe-vault/migrations"
	"github.com/sethvargo/go-retry"
)

const (
	maxTxRetries = 3
	txRetryBase  = 50 * time.Millisecond
)

// DB wraps *sql.DB with the dialect-specific pieces the repositories need:
// a squirrel statement builder with the right placeholder format and an
// error classifier.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	// lowerFunc is the SQL function that folds case the same way
	// strings.ToLower does.
	lowerFunc          string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// querier is the subset shared by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txCtxKey struct{}

// conn returns the transaction carried by ctx, or the pool.
func (db *DB) conn(ctx context.Context) querier {
	if tx, ok := ctx.Value(txCtxKey{}).(*sql.Tx); ok {
		return tx
	}

	return db.DB
}

// Migrate applies the embedded schema for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect, db.logger.Migrations())
}

// WithinTx implements [Transactor]. A call made with a context that already
// carries a transaction joins it. Otherwise fn runs in a new transaction that
// is retried with exponential backoff while the failure is classified as
// [Retryable].
func (db *DB) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txCtxKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	log := logger.FromContext(ctx)
	backoff := retry.WithMaxRetries(maxTxRetries, retry.NewExponential(txRetryBase))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := db.runTx(ctx, fn)
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			log.Warn().Err(err).Str("func", "DB.WithinTx").Int("attempt", attempt).Msg("retrying transaction")
			return retry.RetryableError(err)
		}

		return err
	})
}

func (db *DB) runTx(ctx context.Context, fn func(ctx context.Context) error) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "DB.runTx").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err := fn(context.WithValue(ctx, txCtxKey{}, tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "DB.runTx").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
