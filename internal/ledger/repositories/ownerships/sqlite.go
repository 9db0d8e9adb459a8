package ownerships

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/optionledger/internal/dbx"
	"github.com/dmitrijs2005/optionledger/internal/ledger/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Upsert creates or overwrites the single record for the (userID, optionID)
// pair. Writing against an absent user or option trips the foreign-key
// constraint and surfaces as common.ErrorNotFound.
func (r *SQLiteRepository) Upsert(ctx context.Context, userID, optionID, quantity int64) error {
	query := `INSERT INTO option_ownership (user_id, option_id, quantity)
			VALUES (?, ?, ?)
			ON CONFLICT(user_id, option_id) DO UPDATE SET quantity = excluded.quantity`

	_, err := r.db.ExecContext(ctx, query, userID, optionID, quantity)
	if err != nil {
		if sent := dbx.ConstraintErr(err); sent != nil {
			return fmt.Errorf("ownership (%d, %d): %w", userID, optionID, sent)
		}
		return fmt.Errorf("failed to upsert ownership: %w", err)
	}
	return nil
}

// Delete removes the record for the pair. Deleting an absent pair is a no-op.
func (r *SQLiteRepository) Delete(ctx context.Context, userID, optionID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM option_ownership WHERE user_id = ? AND option_id = ?`, userID, optionID)
	if err != nil {
		return fmt.Errorf("failed to delete ownership: %w", err)
	}
	return nil
}

// List returns all ownership links ordered by (option_id, user_id) so the
// output is deterministic.
func (r *SQLiteRepository) List(ctx context.Context) ([]models.OptionOwnership, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id, option_id, quantity FROM option_ownership ORDER BY option_id, user_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select ownerships: %w", err)
	}
	defer rows.Close()

	result := make([]models.OptionOwnership, 0)
	for rows.Next() {
		var o models.OptionOwnership
		if err := rows.Scan(&o.UserID, &o.OptionID, &o.Quantity); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
