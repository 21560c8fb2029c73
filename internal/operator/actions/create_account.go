package actions

import (
	"context"

	"github.com/carson-networks/budget-tracker/internal/ledger"
)

type CreateAccount struct {
	Input ledger.AccountInput

	// Created is set once Perform succeeds.
	Created ledger.Account
}

func (c *CreateAccount) Name() string { return "CreateAccount" }

func (c *CreateAccount) Perform(ctx context.Context, store *ledger.Store) error {
	account, err := store.AddAccount(ctx, c.Input)
	if err != nil {
		return err
	}

	c.Created = account
	return nil
}
