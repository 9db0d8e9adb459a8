// Package common defines shared sentinel errors used across the ledger
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Service-level errors (bad input caught before it reaches storage).
	ErrorValidation = errors.New("validation error")

	// Repository-level errors.
	ErrorNotFound            = errors.New("not found")
	ErrorConstraintViolation = errors.New("constraint violation")
	ErrorStorageUnavailable  = errors.New("storage unavailable")
)
