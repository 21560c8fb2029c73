package service

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/ledger"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          string
	AccountID   string
	Type        ledger.TransactionType
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        civil.Date
	Notes       string
	CreatedAt   time.Time
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

func transactionFromLedger(t ledger.Transaction) Transaction {
	return Transaction{
		ID:          t.ID,
		AccountID:   t.AccountID,
		Type:        t.Type,
		Amount:      t.Amount,
		Description: t.Description,
		Category:    t.Category,
		Date:        t.Date,
		Notes:       t.Notes,
		CreatedAt:   t.CreatedAt,
	}
}

func transactionsFromLedger(rows []ledger.Transaction) []Transaction {
	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = transactionFromLedger(row)
	}
	return converted
}
