package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/budget-tracker/internal/service"
)

type ListAccountTransactionsInput struct {
	ID string `path:"id" doc:"Account ID"`
}

type ListAccountTransactionsOutput struct {
	Body struct {
		Transactions []Transaction `json:"transactions" doc:"The account's transactions in the order they were recorded"`
	}
}

type accountTransactionLister interface {
	ListAccountTransactions(ctx context.Context, accountID string) ([]service.Transaction, error)
}

// ListAccountTransactionsHandler handles GET /v1/accounts/{id}/transactions.
type ListAccountTransactionsHandler struct {
	TransactionService accountTransactionLister
}

func NewListAccountTransactionsHandler(svc accountTransactionLister) *ListAccountTransactionsHandler {
	return &ListAccountTransactionsHandler{TransactionService: svc}
}

func (h *ListAccountTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-account-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/{id}/transactions",
		Summary:     "List an account's transactions",
		Tags:        []string{"Accounts", "Transactions"},
	}, h.handle)
}

func (h *ListAccountTransactionsHandler) handle(ctx context.Context, input *ListAccountTransactionsInput) (*ListAccountTransactionsOutput, error) {
	transactions, err := h.TransactionService.ListAccountTransactions(ctx, input.ID)
	if err != nil {
		return nil, apierror.FromService(err, "failed to list account transactions")
	}

	out := &ListAccountTransactionsOutput{}
	out.Body.Transactions = fromServiceList(transactions)
	return out, nil
}
