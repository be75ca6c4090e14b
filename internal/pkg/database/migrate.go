package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	gooseDatabase "github.com/pressly/goose/v3/database"
)

//go:embed migrations/postgres/*.sql
var postgresMigrations embed.FS

//go:embed migrations/sqlite/*.sql
var sqliteMigrations embed.FS

// MigratePostgreSQL applies pending migrations through a database/sql view of the pool.
func MigratePostgreSQL(ctx context.Context, db *DB) error {
	sqlDB := stdlib.OpenDBFromPool(db.Pool)
	defer sqlDB.Close()

	return migrate(ctx, sqlDB, gooseDatabase.DialectPostgres, postgresMigrations, "migrations/postgres")
}

func MigrateSQLite(ctx context.Context, db *sql.DB) error {
	return migrate(ctx, db, gooseDatabase.DialectSQLite3, sqliteMigrations, "migrations/sqlite")
}

func migrate(ctx context.Context, db *sql.DB, dialect gooseDatabase.Dialect, fsys embed.FS, dir string) error {
	migrations, err := fs.Sub(fsys, dir)
	if err != nil {
		return fmt.Errorf("open migrations dir %s: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, db, migrations)
	if err != nil {
		return fmt.Errorf("create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	for _, res := range results {
		slog.Info("Migration applied", "dialect", dialect, "version", res.Source.Version, "duration", res.Duration)
	}
	return nil
}
