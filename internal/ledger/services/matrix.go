package services

import (
	"context"

	"github.com/dmitrijs2005/optionledger/internal/ledger/models"
)

type ownershipKey struct {
	userID   int64
	optionID int64
}

// MatrixView assembles the options × users report from a fresh store
// snapshot: one row per option in creation order, one column per user in
// creation order, cell = quantity held (0 when no link exists).
//
// The three reads are independent store operations, not one transaction; a
// concurrent write landing between them can shift the snapshot. That matches
// the store's single-operation locking contract and is accepted at this
// scale. The first failing read aborts the whole projection.
func (s *LedgerService) MatrixView(ctx context.Context) (*models.MatrixView, error) {
	us, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	opts, err := s.options.List(ctx)
	if err != nil {
		return nil, err
	}

	links, err := s.ownerships.List(ctx)
	if err != nil {
		return nil, err
	}

	// Index links once per call; lookups below are then O(1) per cell.
	index := make(map[ownershipKey]int64, len(links))
	for _, l := range links {
		index[ownershipKey{userID: l.UserID, optionID: l.OptionID}] = l.Quantity
	}

	rows := make([]models.MatrixRow, 0, len(opts))
	for _, opt := range opts {
		quantities := make([]int64, len(us))
		for i, u := range us {
			quantities[i] = index[ownershipKey{userID: u.ID, optionID: opt.ID}]
		}
		rows = append(rows, models.MatrixRow{Option: opt, Quantities: quantities})
	}

	return &models.MatrixView{Users: us, Rows: rows}, nil
}
