package store

import (
	"database/sql"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithinTx_Commit(t *testing.T) {
	db, mock := newTestDB(t)
	storeDB := newDBFromSQL(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(version\), 0\) FROM changelog`).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(int64(4)))
	mock.ExpectCommit()

	var latest int64
	err := storeDB.WithinTx(testContext(), nil, func(repos *Repositories) error {
		var err error
		latest, err = repos.Changelog.MaxVersion(testContext())
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), latest)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	db, mock := newTestDB(t)
	storeDB := newDBFromSQL(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	errFn := errors.New("validation failed")
	err := storeDB.WithinTx(testContext(), nil, func(*Repositories) error { return errFn })
	assert.ErrorIs(t, err, errFn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	db, mock := newTestDB(t)
	storeDB := newDBFromSQL(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = storeDB.WithinTx(testContext(), nil, func(*Repositories) error { panic("boom") })
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_BeginAndCommitErrors(t *testing.T) {
	t.Run("begin fails", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

		err := newDBFromSQL(db).WithinTx(testContext(), nil, func(*Repositories) error { return nil })
		assert.ErrorIs(t, err, ErrBeginningTransaction)
	})

	t.Run("commit fails", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})

		storeDB := newDBFromSQL(db)
		err := storeDB.WithinTx(testContext(), nil, func(*Repositories) error { return nil })
		assert.ErrorIs(t, err, ErrCommitingTransaction)
		assert.True(t, storeDB.IsRetryable(err))
	})
}

func TestWithinTx_PassesTxOptions(t *testing.T) {
	assert.Equal(t, sql.LevelRepeatableRead, ReadSnapshot.Isolation)
	assert.True(t, ReadSnapshot.ReadOnly)
}

func TestClassify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("x"), want: NonRetryable},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: Retryable},
		{name: "serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, want: Retryable},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: Retryable},
		{name: "lock not available", err: &pgconn.PgError{Code: pgerrcode.LockNotAvailable}, want: Retryable},
		{name: "wrapped admin shutdown", err: errors.Join(ErrExecutingQuery, &pgconn.PgError{Code: pgerrcode.AdminShutdown}), want: Retryable},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: NonRetryable},
		{name: "undefined table", err: &pgconn.PgError{Code: pgerrcode.UndefinedTable}, want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}
