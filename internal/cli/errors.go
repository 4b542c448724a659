package cli

import (
	"errors"

	"github.com/dmitrijs2005/washledger/internal/common"
)

// describe turns ledger errors into operator-facing text.
func describe(err error) string {
	switch {
	case errors.Is(err, common.ErrUnavailable):
		return "the sheet cannot be reached, nothing was changed (" + err.Error() + ")"
	case errors.Is(err, common.ErrorNotFound):
		return "that wash is no longer in the sheet; list again"
	case errors.Is(err, common.ErrDuplicateKey):
		return "a wash with the same time, brand and type is already registered"
	case errors.Is(err, common.ErrInvalidField):
		return "only price, pay and delivery can be edited"
	default:
		return err.Error()
	}
}
