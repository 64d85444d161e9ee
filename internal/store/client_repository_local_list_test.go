package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/models"
)

func newTestLocalListRepo(t *testing.T) (*localListRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.NewLogger("test")
	repo := &localListRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

var selectListQuery = regexp.QuoteMeta("SELECT value FROM local_storage WHERE key = ?")

func TestLocalListRepository_GetList(t *testing.T) {
	repo, mock, db := newTestLocalListRepo(t)
	defer db.Close()

	mock.ExpectQuery(selectListQuery).
		WithArgs("todos").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`[{"id":1}]`))

	list, err := repo.GetList(context.Background(), models.ResourceTodos)

	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1}]`, string(list))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalListRepository_GetList_NoRow(t *testing.T) {
	repo, mock, db := newTestLocalListRepo(t)
	defer db.Close()

	mock.ExpectQuery(selectListQuery).
		WithArgs("diary").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	list, err := repo.GetList(context.Background(), models.ResourceDiary)

	require.NoError(t, err)
	assert.Nil(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalListRepository_GetList_QueryError(t *testing.T) {
	repo, mock, db := newTestLocalListRepo(t)
	defer db.Close()

	mock.ExpectQuery(selectListQuery).
		WithArgs("mood").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.GetList(context.Background(), models.ResourceMood)

	assert.ErrorIs(t, err, ErrScanningRow)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalListRepository_SetList(t *testing.T) {
	repo, mock, db := newTestLocalListRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO local_storage").
		WithArgs("mood", `[{"mood":"😸"}]`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SetList(context.Background(), models.ResourceMood, json.RawMessage(`[{"mood":"😸"}]`))

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalListRepository_SetList_ExecError(t *testing.T) {
	repo, mock, db := newTestLocalListRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO local_storage").
		WithArgs("diary", `[]`).
		WillReturnError(errors.New("database is locked"))

	err := repo.SetList(context.Background(), models.ResourceDiary, json.RawMessage(`[]`))

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_buildSetListQuery_Upserts(t *testing.T) {
	query, args, err := buildSetListQuery(models.ResourceTodos, []byte(`[]`))

	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO local_storage")
	assert.Contains(t, query, "ON CONFLICT(key) DO UPDATE SET value = excluded.value")
	assert.Equal(t, []any{"todos", "[]"}, args)
}

func Test_buildGetListQuery(t *testing.T) {
	query, args, err := buildGetListQuery(models.ResourceDiary)

	require.NoError(t, err)
	assert.Equal(t, "SELECT value FROM local_storage WHERE key = ?", query)
	assert.Equal(t, []any{"diary"}, args)
}
