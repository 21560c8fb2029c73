package account

import (
	"time"

	"github.com/carson-networks/budget-tracker/internal/service"
)

// Account is the API response model for an account.
type Account struct {
	ID               string `json:"id" doc:"Account ID"`
	Name             string `json:"name" doc:"Account name"`
	Type             string `json:"type" doc:"Checking, Savings, Credit Card, Cash, Investment or Other"`
	InitialBalance   string `json:"initialBalance" doc:"Decimal balance the account started with"`
	Balance          string `json:"balance" doc:"Initial balance plus income minus expenses"`
	Description      string `json:"description" doc:"Free-text description"`
	TransactionCount int    `json:"transactionCount" doc:"Number of transactions on the account"`
	CreatedAt        string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(a *service.Account) Account {
	return Account{
		ID:               a.ID,
		Name:             a.Name,
		Type:             string(a.Type),
		InitialBalance:   a.InitialBalance.String(),
		Balance:          a.Balance.String(),
		Description:      a.Description,
		TransactionCount: a.TransactionCount,
		CreatedAt:        a.CreatedAt.Format(time.RFC3339),
	}
}
