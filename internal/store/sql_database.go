package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/species-sync/internal/logger"
	"github.com/MKhiriev/species-sync/migrations"
)

// ReadSnapshot is used by every multi-query read (bundle, incremental) so
// all of its statements observe the same committed state.
var ReadSnapshot = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// IsRetryable reports whether the classifier considers err transient.
func (db *DB) IsRetryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}

// WithinTx implements [Transactor]. A panic inside fn rolls the transaction
// back and is re-raised.
func (db *DB) WithinTx(ctx context.Context, opts *sql.TxOptions, fn func(repos *Repositories) error) (err error) {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		log.Err(err).Str("func", "DB.WithinTx").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(newRepositories(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Err(rbErr).Str("func", "DB.WithinTx").Msg("failed to rollback transaction")
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "DB.WithinTx").
			Bool("retryable", db.IsRetryable(err)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
