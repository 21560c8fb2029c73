package actions

import (
	"context"

	"github.com/carson-networks/budget-tracker/internal/ledger"
)

type CreateTransaction struct {
	Input ledger.TransactionInput

	Created ledger.Transaction
}

func (c *CreateTransaction) Name() string { return "CreateTransaction" }

func (c *CreateTransaction) Perform(ctx context.Context, store *ledger.Store) error {
	transaction, err := store.AddTransaction(ctx, c.Input)
	if err != nil {
		return err
	}

	c.Created = transaction
	return nil
}
