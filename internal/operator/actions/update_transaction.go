package actions

import (
	"context"

	"github.com/carson-networks/budget-tracker/internal/ledger"
)

type UpdateTransaction struct {
	ID     string
	Update ledger.TransactionUpdate

	Updated ledger.Transaction
}

func (u *UpdateTransaction) Name() string { return "UpdateTransaction" }

func (u *UpdateTransaction) Perform(ctx context.Context, store *ledger.Store) error {
	if err := store.UpdateTransaction(ctx, u.ID, u.Update); err != nil {
		return err
	}

	u.Updated, _ = store.Transaction(u.ID)
	return nil
}
