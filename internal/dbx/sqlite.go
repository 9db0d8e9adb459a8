package dbx

import (
	"errors"

	"github.com/dmitrijs2005/optionledger/internal/common"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ConstraintErr classifies sqlite constraint failures into the shared
// sentinel errors. A foreign-key failure means the referenced row is absent,
// so it maps to ErrorNotFound; uniqueness, primary-key and CHECK failures map
// to ErrorConstraintViolation. It returns nil for anything else, leaving the
// caller to wrap the original error.
func ConstraintErr(err error) error {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return nil
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return common.ErrorNotFound
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE,
		sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY,
		sqlite3.SQLITE_CONSTRAINT_CHECK:
		return common.ErrorConstraintViolation
	}
	return nil
}
