package store

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/species-sync/models"
)

func TestMediaListByIDs(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	db, mock := newTestDB(t)
	repo := NewMediaRepository(newDBFromSQL(db))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT media_id, species_id, download_link, streaming_link, alt_text, updated_at FROM media WHERE media_id IN ($1,$2,$3) ORDER BY media_id`)).
		WithArgs(int64(1), int64(2), int64(3)).
		WillReturnRows(sqlmock.NewRows(mediaColumns).
			AddRow(int64(1), int64(10), "https://dl/1", "https://st/1", "leaf", now).
			AddRow(int64(3), int64(10), "https://dl/3", "", "", nil))

	got, err := repo.ListByIDs(testContext(), []int64{1, 2, 3})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "https://dl/1", got[0].DownloadLink)
	assert.Nil(t, got[1].UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMediaCreate(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	db, mock := newTestDB(t)
	repo := NewMediaRepository(newDBFromSQL(db))

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO media`)).
		WithArgs(int64(10), "https://dl", "https://st", "bark").
		WillReturnRows(sqlmock.NewRows([]string{"media_id", "updated_at"}).AddRow(int64(77), now))

	got, err := repo.Create(testContext(), models.Media{SpeciesID: 10, DownloadLink: "https://dl", StreamingLink: "https://st", AltText: "bark"})
	require.NoError(t, err)
	assert.Equal(t, int64(77), got.MediaID)
	assert.Equal(t, now, *got.UpdatedAt)
}

func TestMediaUpdate(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "success"},
		{name: "not found", err: sql.ErrNoRows, wantErr: ErrMediaNotFound},
		{name: "db failure", err: errors.New("boom"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewMediaRepository(newDBFromSQL(db))

			exp := mock.ExpectQuery(regexp.QuoteMeta(`UPDATE media`)).
				WithArgs(int64(10), "a", "b", "c", int64(5))
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(time.Now()))
			}

			_, err := repo.Update(testContext(), models.Media{MediaID: 5, SpeciesID: 10, DownloadLink: "a", StreamingLink: "b", AltText: "c"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestMediaDelete_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMediaRepository(newDBFromSQL(db))

	mock.ExpectExec(regexp.QuoteMeta(deleteMedia)).WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(testContext(), 5), ErrMediaNotFound)
}
