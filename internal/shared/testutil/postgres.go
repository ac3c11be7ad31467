// Package testutil chứa helper cho integration test chạy trên PostgreSQL thật.
package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"sofa-backend/internal/infrastructure/database"
)

// EnvDatabaseURL trỏ tới database dùng riêng cho test, mọi bảng sẽ bị truncate
const EnvDatabaseURL = "TEST_DATABASE_URL"

// NewPool mở pool tới TEST_DATABASE_URL, chạy migration và dọn sạch dữ liệu.
// Test bị skip khi biến môi trường không được set.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv(EnvDatabaseURL)
	if dsn == "" {
		t.Skipf("%s not set, skipping integration test", EnvDatabaseURL)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, pool.Ping(ctx))
	require.NoError(t, database.Migrate(ctx, pool))
	Truncate(t, pool)

	return pool
}

// Truncate xoá dữ liệu của mọi bảng domain và reset sequence
func Truncate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`TRUNCATE watching, progress, favorites, episodes, shows, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}
