package ownerships

import (
	"context"

	"github.com/dmitrijs2005/optionledger/internal/ledger/models"
)

// Repository is the storage surface for ownership links. The (userID,
// optionID) pair is the unique key; quantity at rest is always positive.
type Repository interface {
	Upsert(ctx context.Context, userID, optionID, quantity int64) error
	Delete(ctx context.Context, userID, optionID int64) error
	List(ctx context.Context) ([]models.OptionOwnership, error)
}
