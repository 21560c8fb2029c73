package actions

import (
	"context"

	"github.com/carson-networks/budget-tracker/internal/ledger"
)

type DeleteTransaction struct {
	ID string
}

func (d *DeleteTransaction) Name() string { return "DeleteTransaction" }

func (d *DeleteTransaction) Perform(ctx context.Context, store *ledger.Store) error {
	return store.DeleteTransaction(ctx, d.ID)
}
