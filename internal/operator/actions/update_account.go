package actions

import (
	"context"

	"github.com/carson-networks/budget-tracker/internal/ledger"
)

type UpdateAccount struct {
	ID     string
	Update ledger.AccountUpdate

	Updated ledger.Account
}

func (u *UpdateAccount) Name() string { return "UpdateAccount" }

func (u *UpdateAccount) Perform(ctx context.Context, store *ledger.Store) error {
	if err := store.UpdateAccount(ctx, u.ID, u.Update); err != nil {
		return err
	}

	u.Updated, _ = store.Account(u.ID)
	return nil
}
