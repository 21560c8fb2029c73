package apierror

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/operator"
)

// FromService maps a service error onto an HTTP error. msg is used for
// failures that are not the caller's fault.
func FromService(err error, msg string) error {
	switch {
	case errors.Is(err, ledger.ErrAccountNotFound):
		return huma.Error404NotFound("account not found", err)
	case errors.Is(err, ledger.ErrTransactionNotFound):
		return huma.Error404NotFound("transaction not found", err)
	case errors.Is(err, ledger.ErrInvalidRecord):
		return huma.Error422UnprocessableEntity("invalid record", err)
	case errors.Is(err, operator.ErrOperatorStopped):
		return huma.Error503ServiceUnavailable(msg, err)
	default:
		return huma.NewError(http.StatusInternalServerError, msg, err)
	}
}
