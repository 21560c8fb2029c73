package transaction

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-tracker/internal/handlers/v1/amount"
	"github.com/carson-networks/budget-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/service"
)

// UpdateTransactionBody only changes the fields that are present.
type UpdateTransactionBody struct {
	AccountID   *string       `json:"accountId,omitempty" minLength:"1" doc:"Move the transaction to this account"`
	Type        *string       `json:"type,omitempty" doc:"income or expense"`
	Amount      *amount.Input `json:"amount,omitempty" doc:"Decimal amount as a string or number"`
	Description *string       `json:"description,omitempty" minLength:"1" doc:"What the transaction was for"`
	Category    *string       `json:"category,omitempty" doc:"Free-text category"`
	Date        *string       `json:"date,omitempty" doc:"YYYY-MM-DD; unparsable dates keep the current one"`
	Notes       *string       `json:"notes,omitempty" doc:"Free-text notes"`
}

type UpdateTransactionInput struct {
	ID   string `path:"id" doc:"Transaction ID"`
	Body UpdateTransactionBody
}

type UpdateTransactionOutput struct {
	Body Transaction
}

type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, id string, update ledger.TransactionUpdate) (*service.Transaction, error)
}

// UpdateTransactionHandler handles PATCH /v1/transactions/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPatch,
		Path:        "/v1/transactions/{id}",
		Summary:     "Update a transaction",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// optional turns an absent JSON field into an unset value.
func optional(v *string) omit.Val[string] {
	if v == nil {
		return omit.Val[string]{}
	}
	return omit.From(*v)
}

func parseUpdateTransactionInput(input *UpdateTransactionInput) ledger.TransactionUpdate {
	update := ledger.TransactionUpdate{
		AccountID:   optional(input.Body.AccountID),
		Description: optional(input.Body.Description),
		Category:    optional(input.Body.Category),
		Date:        optional(input.Body.Date),
		Notes:       optional(input.Body.Notes),
	}
	if input.Body.Type != nil {
		update.Type = omit.From(ledger.TransactionType(*input.Body.Type))
	}
	if input.Body.Amount != nil {
		update.Amount = omit.From(input.Body.Amount.String())
	}
	return update
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := h.TransactionService.UpdateTransaction(ctx, input.ID, parseUpdateTransactionInput(input))
	if err != nil {
		return nil, apierror.FromService(err, "failed to update transaction")
	}
	return &UpdateTransactionOutput{Body: fromService(transaction)}, nil
}
