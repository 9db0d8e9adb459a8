package users

import (
	"context"

	"github.com/dmitrijs2005/optionledger/internal/ledger/models"
)

// Repository is the storage surface for ledger users.
type Repository interface {
	Create(ctx context.Context, name string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id int64) error
}
