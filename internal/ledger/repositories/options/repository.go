package options

import (
	"context"

	"github.com/dmitrijs2005/optionledger/internal/ledger/models"
)

// Repository is the storage surface for options contracts.
type Repository interface {
	Create(ctx context.Context, symbol, kind string, strike float64, expiration string) (*models.Option, error)
	List(ctx context.Context) ([]models.Option, error)
	Delete(ctx context.Context, id int64) error
}
