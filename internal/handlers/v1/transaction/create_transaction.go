package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-tracker/internal/handlers/v1/amount"
	"github.com/carson-networks/budget-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/logging"
	"github.com/carson-networks/budget-tracker/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	AccountID   string       `json:"accountId" minLength:"1" doc:"Account the transaction belongs to"`
	Type        string       `json:"type,omitempty" doc:"income or expense; anything else is treated as expense"`
	Amount      amount.Input `json:"amount,omitempty" doc:"Decimal amount as a string or number; the sign is ignored and missing or unparsable values count as 0"`
	Description string       `json:"description" minLength:"1" doc:"What the transaction was for"`
	Category    string       `json:"category,omitempty" doc:"Free-text category"`
	Date        string       `json:"date,omitempty" doc:"YYYY-MM-DD, defaults to today"`
	Notes       string       `json:"notes,omitempty" doc:"Free-text notes"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body Transaction
}

type transactionCreator interface {
	CreateTransaction(ctx context.Context, input ledger.TransactionInput) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /v1/transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transactions",
		Summary:       "Create transaction",
		Description:   "Records a new income or expense against an existing account.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) ledger.TransactionInput {
	return ledger.TransactionInput{
		AccountID:   input.Body.AccountID,
		Type:        ledger.TransactionType(input.Body.Type),
		Amount:      input.Body.Amount.String(),
		Description: input.Body.Description,
		Category:    input.Body.Category,
		Date:        input.Body.Date,
		Notes:       input.Body.Notes,
	}
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	transaction, err := h.TransactionService.CreateTransaction(ctx, parseCreateTransactionInput(input))
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromService(err, "failed to create transaction")
	}

	if logData != nil {
		logData.AddData("transactionID", transaction.ID)
	}

	return &CreateTransactionOutput{Body: fromService(transaction)}, nil
}
