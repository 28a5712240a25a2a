package kv

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kv_entries (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRepository_Contract(t *testing.T) {
	testRepositoryContract(t, NewSQLiteRepository(setupSQLiteDB(t)))
}

func TestSQLiteRepository_DBErrorsWrapped(t *testing.T) {
	db := setupSQLiteDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Close())

	_, err := r.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to get kv[k]")
	require.ErrorContains(t, r.Set(ctx, "k", []byte("v")), "failed to set kv[k]")
	require.ErrorContains(t, r.Delete(ctx, "k"), "failed to delete kv[k]")
}

func TestSQLRepository_CloseRunsCloser(t *testing.T) {
	called := false
	r := NewSQLiteRepository(setupSQLiteDB(t)).WithCloser(func() error {
		called = true
		return nil
	})
	require.NoError(t, r.Close())
	assert.True(t, called)

	require.NoError(t, NewSQLiteRepository(setupSQLiteDB(t)).Close())
}

func newPostgresWithMock(t *testing.T) (*SQLRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestPostgresRepository_Get(t *testing.T) {
	r, mock := newPostgresWithMock(t)

	mock.ExpectQuery(`^SELECT value FROM kv_entries WHERE key = \$1$`).
		WithArgs("users").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{}`)))

	v, err := r.Get(context.Background(), "users")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), v)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Get_NoRows(t *testing.T) {
	r, mock := newPostgresWithMock(t)

	mock.ExpectQuery(`SELECT value FROM kv_entries`).
		WithArgs("absent").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, v)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Get_DBError(t *testing.T) {
	r, mock := newPostgresWithMock(t)

	mock.ExpectQuery(`SELECT value FROM kv_entries`).
		WithArgs("k").
		WillReturnError(errors.New("db down"))

	_, err := r.Get(context.Background(), "k")
	require.ErrorContains(t, err, "failed to get kv[k]: db down")
}

func TestPostgresRepository_SetUpserts(t *testing.T) {
	r, mock := newPostgresWithMock(t)

	mock.ExpectExec(`(?s)INSERT INTO kv_entries \(key, value\) VALUES \(\$1, \$2\)\s+ON CONFLICT \(key\) DO UPDATE SET value = EXCLUDED.value`).
		WithArgs("k", []byte("v")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, r.Set(context.Background(), "k", []byte("v")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Delete(t *testing.T) {
	r, mock := newPostgresWithMock(t)

	mock.ExpectExec(`^DELETE FROM kv_entries WHERE key = \$1$`).
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM kv_entries`).
		WithArgs("k").
		WillReturnError(errors.New("boom"))

	require.NoError(t, r.Delete(context.Background(), "k"))
	require.ErrorContains(t, r.Delete(context.Background(), "k"), "failed to delete kv[k]: boom")
	require.NoError(t, mock.ExpectationsWereMet())
}
