package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/lock"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrations trả về thư mục migrations đã embed (root = migrations/)
func Migrations() (fs.FS, error) {
	return fs.Sub(migrationFiles, "migrations")
}

// Migrate apply các goose migration chưa chạy, version lưu trong goose_db_version.
// Postgres session lock serialize các instance khởi động cùng lúc.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	fsys, err := Migrations()
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	locker, err := lock.NewPostgresSessionLocker()
	if err != nil {
		return fmt.Errorf("create migration locker: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys,
		goose.WithSessionLocker(locker),
	)
	if err != nil {
		return fmt.Errorf("create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	for _, r := range results {
		log.Info().
			Int64("version", r.Source.Version).
			Str("file", r.Source.Path).
			Dur("duration", r.Duration).
			Msg("[DATABASE] Migration applied")
	}

	return nil
}
