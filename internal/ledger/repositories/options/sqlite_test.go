package options

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/optionledger/internal/common"
	"github.com/dmitrijs2005/optionledger/internal/ledger/db"
	"github.com/dmitrijs2005/optionledger/internal/ledger/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	dbh, err := db.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbh.Close() })
	return dbh
}

func TestCreate_ReturnsAllAttributes(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	o, err := r.Create(ctx, "AAPL", models.KindCall, 190.5, "2026-01-16")
	require.NoError(t, err)

	assert.NotZero(t, o.ID)
	assert.Equal(t, "AAPL", o.Symbol)
	assert.Equal(t, models.KindCall, o.Kind)
	assert.Equal(t, 190.5, o.Strike)
	assert.Equal(t, "2026-01-16", o.Expiration)
}

func TestCreate_InvalidKind_RejectedByCheckConstraint(t *testing.T) {
	// Defense in depth: the service validates kind first, but the column's
	// CHECK constraint must hold even for direct store writes.
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	_, err := r.Create(ctx, "AAPL", "straddle", 190.5, "2026-01-16")
	require.Error(t, err)
	require.ErrorIs(t, err, common.ErrorConstraintViolation)

	list, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreate_DuplicateSymbolAllowed(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	_, err := r.Create(ctx, "AAPL", models.KindCall, 190, "2026-01-16")
	require.NoError(t, err)
	_, err = r.Create(ctx, "AAPL", models.KindPut, 185, "2026-02-20")
	require.NoError(t, err)

	list, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestList_OrderedByID(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	first, err := r.Create(ctx, "TSLA", models.KindPut, 200, "2026-03-20")
	require.NoError(t, err)
	second, err := r.Create(ctx, "AAPL", models.KindCall, 190, "2026-01-16")
	require.NoError(t, err)

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}

func TestDelete_RemovesOption_AndIsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	o, err := r.Create(ctx, "AAPL", models.KindCall, 190, "2026-01-16")
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, o.ID))
	require.NoError(t, r.Delete(ctx, o.ID))

	list, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
