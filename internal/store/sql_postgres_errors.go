package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells a caller whether a failed database operation is
// worth repeating. The sync core never retries on its own; the value is
// logged so operators and clients can tell transient failures apart.
type ErrorClassification int

const (
	// NonRetryable is the default for unknown errors, constraint violations
	// and malformed queries.
	NonRetryable ErrorClassification = iota

	// Retryable marks connection loss, serialization failures and lock
	// contention on the version counter.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] by inspecting the
// SQLSTATE of a *pgconn.PgError.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that are not PostgreSQL
// driver errors are [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

// ClassifyPgError maps a SQLSTATE to an [ErrorClassification].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
//
// Retryable:
//   - Class 08: connection exceptions
//   - Class 40: transaction rollback, serialization failure, deadlock
//   - 55P03 lock_not_available (contended version counter with lock_timeout set)
//   - 57P01 admin_shutdown, 57P03 cannot_connect_now
//
// Everything else, including class 22, 23 and 42, is [NonRetryable].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection:
		return Retryable

	case pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected:
		return Retryable

	case pgerrcode.LockNotAvailable:
		return Retryable

	case pgerrcode.AdminShutdown,
		pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}
