package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/optionledger/internal/ledger/models"
)

func TestMatrixView_SingleOwnership(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	alice, err := svc.CreateUser(ctx, "alice")
	require.NoError(t, err)
	bob, err := svc.CreateUser(ctx, "bob")
	require.NoError(t, err)
	o, err := svc.CreateOption(ctx, "AAPL", models.KindCall, 190, "2026-01-16")
	require.NoError(t, err)

	require.NoError(t, svc.SetOwnership(ctx, alice.ID, o.ID, 7))

	view, err := svc.MatrixView(ctx)
	require.NoError(t, err)

	require.Len(t, view.Users, 2)
	assert.Equal(t, []models.User{*alice, *bob}, view.Users)

	require.Len(t, view.Rows, 1)
	assert.Equal(t, *o, view.Rows[0].Option)
	assert.Equal(t, []int64{7, 0}, view.Rows[0].Quantities)
}

func TestMatrixView_ZeroOptions_EmptyRowsFullUserList(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "alice")
	require.NoError(t, err)
	_, err = svc.CreateUser(ctx, "bob")
	require.NoError(t, err)

	view, err := svc.MatrixView(ctx)
	require.NoError(t, err)
	assert.Len(t, view.Users, 2)
	assert.NotNil(t, view.Rows)
	assert.Empty(t, view.Rows)
}

func TestMatrixView_EmptyStore(t *testing.T) {
	svc, _ := setupService(t)

	view, err := svc.MatrixView(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, view.Users)
	assert.Empty(t, view.Users)
	assert.NotNil(t, view.Rows)
	assert.Empty(t, view.Rows)
}

func TestMatrixView_RowsFollowOptionCreationOrder(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	alice, err := svc.CreateUser(ctx, "alice")
	require.NoError(t, err)
	bob, err := svc.CreateUser(ctx, "bob")
	require.NoError(t, err)

	put, err := svc.CreateOption(ctx, "TSLA", models.KindPut, 200, "2026-03-20")
	require.NoError(t, err)
	call, err := svc.CreateOption(ctx, "AAPL", models.KindCall, 190, "2026-01-16")
	require.NoError(t, err)

	require.NoError(t, svc.SetOwnership(ctx, alice.ID, call.ID, 1))
	require.NoError(t, svc.SetOwnership(ctx, bob.ID, put.ID, 9))

	view, err := svc.MatrixView(ctx)
	require.NoError(t, err)

	require.Len(t, view.Rows, 2)
	assert.Equal(t, put.ID, view.Rows[0].Option.ID)
	assert.Equal(t, []int64{0, 9}, view.Rows[0].Quantities)
	assert.Equal(t, call.ID, view.Rows[1].Option.ID)
	assert.Equal(t, []int64{1, 0}, view.Rows[1].Quantities)
}

func TestMatrixView_ReflectsCascadedDeletes(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	alice, err := svc.CreateUser(ctx, "alice")
	require.NoError(t, err)
	o, err := svc.CreateOption(ctx, "AAPL", models.KindCall, 190, "2026-01-16")
	require.NoError(t, err)
	require.NoError(t, svc.SetOwnership(ctx, alice.ID, o.ID, 7))

	require.NoError(t, svc.DeleteUser(ctx, alice.ID))

	view, err := svc.MatrixView(ctx)
	require.NoError(t, err)
	assert.Empty(t, view.Users)
	require.Len(t, view.Rows, 1)
	assert.Empty(t, view.Rows[0].Quantities)
}

func TestMatrixView_FirstFailingReadAborts(t *testing.T) {
	svc, dbh := setupService(t)

	require.NoError(t, dbh.Close())

	view, err := svc.MatrixView(context.Background())
	require.Error(t, err)
	assert.Nil(t, view)
}
