package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSpeciesNotFound is returned when an update or delete targets a
	// species_id that has no row in any locale table.
	ErrSpeciesNotFound = errors.New("species was not found")

	// ErrMediaNotFound is returned when an update or delete targets a
	// media_id that does not exist.
	ErrMediaNotFound = errors.New("media was not found")

	// ErrUnknownLocale is returned when a locale has no backing table.
	ErrUnknownLocale = errors.New("unknown locale")

	// ErrCounterMissing is returned by Append when the version counter row
	// is absent, which means migrations have not run.
	ErrCounterMissing = errors.New("version counter row is missing")

	// ErrReplicaNotInitialized is returned by the client replica before the
	// first bundle has been applied.
	ErrReplicaNotInitialized = errors.New("replica has no sync state")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
