package service

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/operator"
)

// LedgerReader is the read side of the ledger. *ledger.Store implements it.
type LedgerReader interface {
	Accounts() []ledger.Account
	Account(id string) (ledger.Account, bool)
	AccountBalance(accountID string) decimal.Decimal
	AccountTransactionCount(accountID string) int
	Transaction(id string) (ledger.Transaction, bool)
	AccountTransactions(accountID string) []ledger.Transaction
	FilterTransactions(f ledger.TransactionFilter) []ledger.Transaction
	RecentTransactions(n int) []ledger.Transaction
	UsedCategories() []string
	Summary() ledger.Summary
}

var _ LedgerReader = (*ledger.Store)(nil)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Account     *AccountService
	Summary     *SummaryService
}

// NewService wires the services to one ledger. Writes go through op so they
// are applied in order; reads go straight to the ledger.
func NewService(reader LedgerReader, op operator.IOperatorDelegator) *Service {
	return &Service{
		Transaction: NewTransactionService(reader, op),
		Account:     NewAccountService(reader, op),
		Summary:     NewSummaryService(reader),
	}
}
