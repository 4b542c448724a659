// Package common defines sentinel errors shared by the storage, ledger and
// CLI layers of the wash ledger. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Lookup errors.
	ErrorNotFound   = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")

	// Transport errors (remote store unreachable or refusing the request).
	ErrUnavailable = errors.New("store unavailable")

	// Grid addressing errors.
	ErrOutOfRange = errors.New("position out of range")

	// Mutation errors.
	ErrInvalidField = errors.New("field is not editable")
)
