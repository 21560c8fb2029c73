package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/budget-tracker/internal/logging"
)

type DeleteAccountResponse struct {
	RemovedTransactions int `json:"removedTransactions" doc:"Transactions deleted along with the account"`
}

type DeleteAccountOutput struct {
	Body DeleteAccountResponse
}

type accountDeleter interface {
	DeleteAccount(ctx context.Context, id string) (int, error)
}

// DeleteAccountHandler handles DELETE /v1/accounts/{id}.
type DeleteAccountHandler struct {
	AccountService accountDeleter
}

func NewDeleteAccountHandler(svc accountDeleter) *DeleteAccountHandler {
	return &DeleteAccountHandler{AccountService: svc}
}

func (h *DeleteAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-account",
		Method:      http.MethodDelete,
		Path:        "/v1/accounts/{id}",
		Summary:     "Delete an account",
		Description: "Deletes the account and every transaction recorded against it.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *DeleteAccountHandler) handle(ctx context.Context, input *AccountPath) (*DeleteAccountOutput, error) {
	removed, err := h.AccountService.DeleteAccount(ctx, input.ID)
	if err != nil {
		return nil, apierror.FromService(err, "failed to delete account")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("removedTransactions", removed)
	}
	return &DeleteAccountOutput{Body: DeleteAccountResponse{RemovedTransactions: removed}}, nil
}
