// Package services implements the ledger's service boundary: input
// validation and orchestration on top of the entity repositories, plus the
// matrix projection. This is the surface the CLI (or any other caller)
// talks to.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/optionledger/internal/common"
	"github.com/dmitrijs2005/optionledger/internal/ledger/models"
	"github.com/dmitrijs2005/optionledger/internal/ledger/repositories/options"
	"github.com/dmitrijs2005/optionledger/internal/ledger/repositories/ownerships"
	"github.com/dmitrijs2005/optionledger/internal/ledger/repositories/users"
	"github.com/dmitrijs2005/optionledger/internal/logging"
)

type LedgerService struct {
	users      users.Repository
	options    options.Repository
	ownerships ownerships.Repository
	log        logging.Logger
}

func NewLedgerService(u users.Repository, o options.Repository, w ownerships.Repository, log logging.Logger) *LedgerService {
	return &LedgerService{users: u, options: o, ownerships: w, log: log}
}

// CreateUser adds a user with the given display name. An empty name fails
// with common.ErrorValidation; a duplicate name propagates the store's
// common.ErrorConstraintViolation.
func (s *LedgerService) CreateUser(ctx context.Context, name string) (*models.User, error) {
	if name == "" {
		return nil, fmt.Errorf("user name must not be empty: %w", common.ErrorValidation)
	}

	user, err := s.users.Create(ctx, name)
	if err != nil {
		s.log.Error(ctx, "create user failed", "name", name, "error", err)
		return nil, err
	}

	s.log.Info(ctx, "user created", "id", user.ID, "name", user.Name)
	return user, nil
}

// ListUsers returns all users in creation order.
func (s *LedgerService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// DeleteUser removes a user and, via cascade, every ownership link
// referencing it. Deleting an absent id is not an error.
func (s *LedgerService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		s.log.Error(ctx, "delete user failed", "id", id, "error", err)
		return err
	}
	s.log.Info(ctx, "user deleted", "id", id)
	return nil
}

// CreateOption adds an options contract. Kind must be exactly "call" or
// "put" and expiration must be non-empty, otherwise common.ErrorValidation.
// Symbol content and strike sign are deliberately unvalidated to keep the
// ledger usable for free-form data entry.
func (s *LedgerService) CreateOption(ctx context.Context, symbol, kind string, strike float64, expiration string) (*models.Option, error) {
	if kind != models.KindCall && kind != models.KindPut {
		return nil, fmt.Errorf("option kind must be %q or %q, got %q: %w",
			models.KindCall, models.KindPut, kind, common.ErrorValidation)
	}
	if expiration == "" {
		return nil, fmt.Errorf("option expiration must not be empty: %w", common.ErrorValidation)
	}

	option, err := s.options.Create(ctx, symbol, kind, strike, expiration)
	if err != nil {
		s.log.Error(ctx, "create option failed", "symbol", symbol, "error", err)
		return nil, err
	}

	s.log.Info(ctx, "option created", "id", option.ID, "symbol", option.Symbol, "kind", option.Kind)
	return option, nil
}

// ListOptions returns all options in creation order.
func (s *LedgerService) ListOptions(ctx context.Context) ([]models.Option, error) {
	return s.options.List(ctx)
}

// DeleteOption removes an option and, via cascade, every ownership link
// referencing it. Deleting an absent id is not an error.
func (s *LedgerService) DeleteOption(ctx context.Context, id int64) error {
	if err := s.options.Delete(ctx, id); err != nil {
		s.log.Error(ctx, "delete option failed", "id", id, "error", err)
		return err
	}
	s.log.Info(ctx, "option deleted", "id", id)
	return nil
}

// SetOwnership is the upsert-or-delete operation for the (userID, optionID)
// link. A non-positive quantity removes the link and never errors, even when
// neither id exists. A positive quantity creates or overwrites the link; an
// absent user or option fails with common.ErrorNotFound through the store's
// foreign-key enforcement.
func (s *LedgerService) SetOwnership(ctx context.Context, userID, optionID, quantity int64) error {
	if quantity <= 0 {
		if err := s.ownerships.Delete(ctx, userID, optionID); err != nil {
			s.log.Error(ctx, "clear ownership failed", "userID", userID, "optionID", optionID, "error", err)
			return err
		}
		s.log.Info(ctx, "ownership cleared", "userID", userID, "optionID", optionID)
		return nil
	}

	if err := s.ownerships.Upsert(ctx, userID, optionID, quantity); err != nil {
		s.log.Error(ctx, "set ownership failed", "userID", userID, "optionID", optionID, "error", err)
		return err
	}
	s.log.Info(ctx, "ownership set", "userID", userID, "optionID", optionID, "quantity", quantity)
	return nil
}

// GetOwnerships returns all ownership links ordered by (optionID, userID).
func (s *LedgerService) GetOwnerships(ctx context.Context) ([]models.OptionOwnership, error) {
	return s.ownerships.List(ctx)
}
