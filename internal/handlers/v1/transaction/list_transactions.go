package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/logging"
	"github.com/carson-networks/budget-tracker/internal/service"
)

// ListTransactionsCursor represents a pagination cursor in responses.
// It bundles position, limit, and maxCreationTime so subsequent pages use consistent parameters.
type ListTransactionsCursor struct {
	Position        int    `json:"position" doc:"Numeric offset position for the next page"`
	Limit           int    `json:"limit" doc:"Page size used for this cursor"`
	MaxCreationTime string `json:"maxCreationTime" doc:"Upper bound on createdAt locked in from the first page"`
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	AccountID       string `query:"accountId" doc:"Only transactions on this account"`
	Type            string `query:"type" doc:"Only income or only expense"`
	Category        string `query:"category" doc:"Only transactions with this category"`
	Position        int    `query:"position" minimum:"0" doc:"Offset from a previous nextCursor"`
	Limit           int    `query:"limit" minimum:"0" maximum:"100" doc:"Page size, default 20"`
	MaxCreationTime string `query:"maxCreationTime" doc:"RFC3339 bound from a previous nextCursor"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction           `json:"transactions" doc:"Page of transactions, newest date first"`
	NextCursor   *ListTransactionsCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

type transactionLister interface {
	ListTransactions(ctx context.Context, filter ledger.TransactionFilter, cursor *service.TransactionCursor) ([]service.Transaction, *service.TransactionCursor, error)
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns a filtered, paginated list of transactions, newest date first.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput parses and validates the API input.
// Without any paging parameters the service picks its default page.
func parseListTransactionsInput(input *ListTransactionsInput) (ledger.TransactionFilter, *service.TransactionCursor, error) {
	filter := ledger.TransactionFilter{
		AccountID: input.AccountID,
		Type:      ledger.TransactionType(input.Type),
		Category:  input.Category,
	}
	if filter.Type != "" && !filter.Type.Valid() {
		return filter, nil, huma.NewError(http.StatusBadRequest, "type must be income or expense")
	}

	if input.Position == 0 && input.Limit == 0 && input.MaxCreationTime == "" {
		return filter, nil, nil
	}

	cursor := &service.TransactionCursor{
		Position: input.Position,
		Limit:    input.Limit,
	}
	if input.MaxCreationTime != "" {
		maxCreationTime, err := time.Parse(time.RFC3339Nano, input.MaxCreationTime)
		if err != nil {
			return filter, nil, huma.NewError(http.StatusBadRequest, "invalid maxCreationTime", err)
		}
		cursor.MaxCreationTime = maxCreationTime
	}
	return filter, cursor, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	filter, requestCursor, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, nextCursor, err := h.TransactionService.ListTransactions(ctx, filter, requestCursor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: fromServiceList(transactions),
	}
	if nextCursor != nil {
		resp.NextCursor = &ListTransactionsCursor{
			Position:        nextCursor.Position,
			Limit:           nextCursor.Limit,
			MaxCreationTime: nextCursor.MaxCreationTime.Format(time.RFC3339Nano),
		}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
