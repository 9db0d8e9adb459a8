package options

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

// Create inserts an option and returns it with the store-assigned id.
// The kind column carries a CHECK constraint as a second line of defense
// behind service validation; a violation surfaces as
// common.ErrorConstraintViolation.
func (r *SQLiteRepository) Create(ctx context.Context, symbol, kind string, strike float64, expiration string) (*models.Option, error) {
	option := &models.Option{Symbol: symbol, Kind: kind, Strike: strike, Expiration: expiration}

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO options (symbol, kind, strike, expiration) VALUES (?, ?, ?, ?) RETURNING id`,
		symbol, kind, strike, expiration).Scan(&option.ID)
	if err != nil {
		if sent := dbx.ConstraintErr(err); sent != nil {
			return nil, fmt.Errorf("option kind %q: %w", kind, sent)
		}
		return nil, fmt.Errorf("failed to insert option: %w", err)
	}

	return option, nil
}

// List returns all options in ascending id order (creation order).
func (r *SQLiteRepository) List(ctx context.Context) ([]models.Option, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, symbol, kind, strike, expiration FROM options ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select options: %w", err)
	}
	defer rows.Close()

	result := make([]models.Option, 0)
	for rows.Next() {
		var o models.Option
		if err := rows.Scan(&o.ID, &o.Symbol, &o.Kind, &o.Strike, &o.Expiration); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes the option with the given id, cascading to ownership links.
// Deleting an absent id is a no-op.
func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM options WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete option %d: %w", id, err)
	}
	return nil
}
