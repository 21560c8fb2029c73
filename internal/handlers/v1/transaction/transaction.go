package transaction

import (
	"time"

	"github.com/carson-networks/budget-tracker/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction ID"`
	AccountID   string `json:"accountId" doc:"Owning account ID"`
	Type        string `json:"type" doc:"income or expense"`
	Amount      string `json:"amount" doc:"Non-negative decimal amount; the type gives the sign"`
	Description string `json:"description" doc:"What the transaction was for"`
	Category    string `json:"category,omitempty" doc:"Free-text category"`
	Date        string `json:"date" doc:"Calendar date, YYYY-MM-DD"`
	Notes       string `json:"notes,omitempty" doc:"Free-text notes"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(t *service.Transaction) Transaction {
	return Transaction{
		ID:          t.ID,
		AccountID:   t.AccountID,
		Type:        string(t.Type),
		Amount:      t.Amount.String(),
		Description: t.Description,
		Category:    t.Category,
		Date:        t.Date.String(),
		Notes:       t.Notes,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}

func fromServiceList(transactions []service.Transaction) []Transaction {
	converted := make([]Transaction, len(transactions))
	for i := range transactions {
		converted[i] = fromService(&transactions[i])
	}
	return converted
}
