package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_MigratesSchema(t *testing.T) {
	ctx := context.Background()

	dbh, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbh.Close() })

	for _, table := range []string{"users", "options", "option_ownership"} {
		var name string
		err := dbh.QueryRowContext(ctx,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s", table)
		assert.Equal(t, table, name)
	}
}

func TestOpen_ForeignKeysEnabled(t *testing.T) {
	ctx := context.Background()

	dbh, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbh.Close() })

	var on int
	require.NoError(t, dbh.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&on))
	assert.Equal(t, 1, on)
}

func TestOpen_MigrationsAreIdempotent(t *testing.T) {
	ctx := context.Background()

	dbh, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbh.Close() })

	// a second run against the same handle must be a no-op
	require.NoError(t, RunMigrations(ctx, dbh))
}
