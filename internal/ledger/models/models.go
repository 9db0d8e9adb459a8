// Package models defines the ledger domain types. All persisted identifiers
// are store-assigned integers that ascend in creation order.
package models

// Option kinds. The kind column is constrained to exactly these two values.
const (
	KindCall = "call"
	KindPut  = "put"
)

// User is a ledger participant. Name is unique across all users.
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Option describes one options contract. Symbol and expiration are free
// text; expiration is only required to be non-empty, no calendar validation
// is performed.
type Option struct {
	ID         int64   `json:"id"`
	Symbol     string  `json:"symbol"`
	Kind       string  `json:"kind"`
	Strike     float64 `json:"strike"`
	Expiration string  `json:"expiration"`
}

// OptionOwnership links one user to one option with the quantity held.
// At most one record exists per (UserID, OptionID) pair, and a persisted
// quantity is always positive.
type OptionOwnership struct {
	UserID   int64 `json:"user_id"`
	OptionID int64 `json:"option_id"`
	Quantity int64 `json:"quantity"`
}

// MatrixRow is one option's row of the matrix report. Quantities is aligned
// positionally with MatrixView.Users; a cell is 0 when no ownership record
// exists for the pair.
type MatrixRow struct {
	Option     Option  `json:"option"`
	Quantities []int64 `json:"quantities"`
}

// MatrixView is the derived options × users report. It is rebuilt from the
// current store state on every request and never persisted.
type MatrixView struct {
	Users []User      `json:"users"`
	Rows  []MatrixRow `json:"rows"`
}
