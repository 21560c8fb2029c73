package actions

import (
	"context"

	"github.com/carson-networks/budget-tracker/internal/ledger"
)

// IAction is a single ledger mutation run by the operator.
type IAction interface {
	Name() string
	Perform(ctx context.Context, store *ledger.Store) error
}
