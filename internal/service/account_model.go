package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/ledger"
)

// Account represents an account in the service layer, with its derived balance.
type Account struct {
	ID               string
	Name             string
	Type             ledger.AccountType
	InitialBalance   decimal.Decimal
	Balance          decimal.Decimal
	Description      string
	TransactionCount int
	CreatedAt        time.Time
}

func (s *AccountService) fromLedger(account ledger.Account) Account {
	return Account{
		ID:               account.ID,
		Name:             account.Name,
		Type:             account.Type,
		InitialBalance:   account.InitialBalance,
		Balance:          s.reader.AccountBalance(account.ID),
		Description:      account.Description,
		TransactionCount: s.reader.AccountTransactionCount(account.ID),
		CreatedAt:        account.CreatedAt,
	}
}
