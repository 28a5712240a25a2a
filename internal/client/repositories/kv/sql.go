package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/interviewdesk/internal/dbx"
)

type sqlQueries struct {
	get    string
	upsert string
	delete string
}

var (
	sqliteQueries = sqlQueries{
		get: `SELECT value FROM kv_entries WHERE key = ?`,
		upsert: `
		INSERT INTO kv_entries (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`,
		delete: `DELETE FROM kv_entries WHERE key = ?`,
	}

	postgresQueries = sqlQueries{
		get: `SELECT value FROM kv_entries WHERE key = $1`,
		upsert: `
		INSERT INTO kv_entries (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`,
		delete: `DELETE FROM kv_entries WHERE key = $1`,
	}
)

// SQLRepository stores keys in the kv_entries table created by the embedded
// migrations. The same code serves SQLite and PostgreSQL; only the
// placeholder style differs.
type SQLRepository struct {
	db      dbx.DBTX
	queries sqlQueries
	closer  func() error
}

func NewSQLiteRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, queries: sqliteQueries}
}

func NewPostgresRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, queries: postgresQueries}
}

// WithCloser makes Close release the underlying connection pool.
func (r *SQLRepository) WithCloser(fn func() error) *SQLRepository {
	r.closer = fn
	return r
}

func (r *SQLRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, r.queries.get, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLRepository) Set(ctx context.Context, key string, value []byte) error {
	if _, err := r.db.ExecContext(ctx, r.queries.upsert, key, value); err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, r.queries.delete, key); err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLRepository) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer()
}
