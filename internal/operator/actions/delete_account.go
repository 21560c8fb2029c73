package actions

import (
	"context"

	"github.com/carson-networks/budget-tracker/internal/ledger"
)

// DeleteAccount removes an account along with its transactions.
type DeleteAccount struct {
	ID string

	RemovedTransactions int
}

func (d *DeleteAccount) Name() string { return "DeleteAccount" }

func (d *DeleteAccount) Perform(ctx context.Context, store *ledger.Store) error {
	count := store.AccountTransactionCount(d.ID)
	if err := store.DeleteAccount(ctx, d.ID); err != nil {
		return err
	}

	d.RemovedTransactions = count
	return nil
}
