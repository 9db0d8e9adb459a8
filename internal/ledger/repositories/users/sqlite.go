package users

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

// Create inserts a user and returns it with the store-assigned id.
// A duplicate name surfaces as common.ErrorConstraintViolation.
func (r *SQLiteRepository) Create(ctx context.Context, name string) (*models.User, error) {
	user := &models.User{Name: name}

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (name) VALUES (?) RETURNING id`, name).Scan(&user.ID)
	if err != nil {
		if sent := dbx.ConstraintErr(err); sent != nil {
			return nil, fmt.Errorf("user name %q: %w", name, sent)
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

// List returns all users in ascending id order (creation order).
func (r *SQLiteRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	result := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes the user with the given id, cascading to ownership links.
// Deleting an absent id is a no-op.
func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}
