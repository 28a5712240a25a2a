// Package storage opens the key-value backend selected in the configuration,
// running schema migrations for the SQL backends.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/dmitrijs2005/interviewdesk/internal/client/config"
	"github.com/dmitrijs2005/interviewdesk/internal/client/migrations"
	"github.com/dmitrijs2005/interviewdesk/internal/client/repositories/kv"
	"github.com/dmitrijs2005/interviewdesk/internal/filex"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Open builds the repository for cfg.StorageBackend.
func Open(ctx context.Context, cfg *config.Config) (kv.Repository, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return kv.NewMemoryRepository(), nil

	case config.BackendFile:
		if err := filex.EnsureParentDir(cfg.StoragePath); err != nil {
			return nil, err
		}
		return kv.NewFileRepository(cfg.StoragePath), nil

	case config.BackendSQLite:
		if err := filex.EnsureParentDir(cfg.StoragePath); err != nil {
			return nil, err
		}
		db, err := InitDatabase(ctx, "sqlite", cfg.StoragePath)
		if err != nil {
			return nil, err
		}
		return kv.NewSQLiteRepository(db).WithCloser(db.Close), nil

	case config.BackendPostgres:
		db, err := InitDatabase(ctx, "pgx", cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		return kv.NewPostgresRepository(db).WithCloser(db.Close), nil

	case config.BackendRedis:
		client, err := kv.DialRedis(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, err
		}
		return kv.NewRedisRepository(client, cfg.KeyPrefix), nil

	case config.BackendS3:
		client, err := kv.NewS3Client(ctx, kv.S3Options{
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
		})
		if err != nil {
			return nil, err
		}
		return kv.NewS3Repository(client, cfg.S3Bucket, cfg.KeyPrefix), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// InitDatabase opens driverName/dsn and applies the embedded migrations for
// that driver. The returned pool is owned by the caller.
func InitDatabase(ctx context.Context, driverName, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := RunMigrations(ctx, db, driverName); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}
	return db, nil
}

// RunMigrations applies the embedded migrations for driverName ("sqlite" or
// "pgx"). Running it again on an up-to-date database is a no-op.
func RunMigrations(ctx context.Context, db *sql.DB, driverName string) error {
	var (
		fsys    fs.FS
		dialect string
		dir     string
	)
	switch driverName {
	case "sqlite":
		fsys, dialect, dir = migrations.SQLite, "sqlite3", "sqlite"
	case "pgx":
		fsys, dialect, dir = migrations.Postgres, "postgres", "postgres"
	default:
		return fmt.Errorf("no migrations for driver %q", driverName)
	}

	goose.SetBaseFS(fsys)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, dir)
}
