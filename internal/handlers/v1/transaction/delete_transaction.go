package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-tracker/internal/handlers/v1/apierror"
)

type DeleteTransactionInput struct {
	ID string `path:"id" doc:"Transaction ID"`
}

type transactionDeleter interface {
	DeleteTransaction(ctx context.Context, id string) error
}

// DeleteTransactionHandler handles DELETE /v1/transactions/{id}.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
}

func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-transaction",
		Method:        http.MethodDelete,
		Path:          "/v1/transactions/{id}",
		Summary:       "Delete a transaction",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*struct{}, error) {
	if err := h.TransactionService.DeleteTransaction(ctx, input.ID); err != nil {
		return nil, apierror.FromService(err, "failed to delete transaction")
	}
	return &struct{}{}, nil
}
