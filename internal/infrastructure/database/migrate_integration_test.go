package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sofa-backend/internal/infrastructure/database"
	"sofa-backend/internal/shared/testutil"
)

func TestMigrate_Idempotent(t *testing.T) {
	pool := testutil.NewPool(t)
	ctx := context.Background()

	// NewPool đã migrate một lần
	require.NoError(t, database.Migrate(ctx, pool))

	var version int64
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT MAX(version_id) FROM goose_db_version WHERE is_applied`,
	).Scan(&version))
	assert.Equal(t, int64(1), version)
}
