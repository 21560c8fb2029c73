package account

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-tracker/internal/handlers/v1/amount"
	"github.com/carson-networks/budget-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/logging"
	"github.com/carson-networks/budget-tracker/internal/service"
)

// UpdateAccountBody only changes the fields that are present.
type UpdateAccountBody struct {
	Name           *string       `json:"name,omitempty" minLength:"1" doc:"Account name"`
	Type           *string       `json:"type,omitempty" doc:"Account type"`
	InitialBalance *amount.Input `json:"initialBalance,omitempty" doc:"Starting balance as a string or number"`
	Description    *string       `json:"description,omitempty" doc:"Free-text description"`
}

type UpdateAccountInput struct {
	ID   string `path:"id" doc:"Account ID"`
	Body UpdateAccountBody
}

type UpdateAccountOutput struct {
	Body Account
}

type accountUpdater interface {
	UpdateAccount(ctx context.Context, id string, update ledger.AccountUpdate) (*service.Account, error)
}

// UpdateAccountHandler handles PATCH /v1/accounts/{id}.
type UpdateAccountHandler struct {
	AccountService accountUpdater
}

func NewUpdateAccountHandler(svc accountUpdater) *UpdateAccountHandler {
	return &UpdateAccountHandler{AccountService: svc}
}

func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-account",
		Method:      http.MethodPatch,
		Path:        "/v1/accounts/{id}",
		Summary:     "Update an account",
		Description: "Replaces the supplied fields. The id and creation time never change.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

// present turns an optional JSON field into an omit.Val.
func present[T any](v *T) omit.Val[T] {
	if v == nil {
		return omit.Val[T]{}
	}
	return omit.From(*v)
}

func parseUpdateAccountInput(input *UpdateAccountInput) ledger.AccountUpdate {
	update := ledger.AccountUpdate{
		Name:        present(input.Body.Name),
		Description: present(input.Body.Description),
	}
	if input.Body.Type != nil {
		update.Type = omit.From(ledger.AccountType(*input.Body.Type))
	}
	if input.Body.InitialBalance != nil {
		update.InitialBalance = omit.From(input.Body.InitialBalance.String())
	}
	return update
}

func (h *UpdateAccountHandler) handle(ctx context.Context, input *UpdateAccountInput) (*UpdateAccountOutput, error) {
	account, err := h.AccountService.UpdateAccount(ctx, input.ID, parseUpdateAccountInput(input))
	if err != nil {
		return nil, apierror.FromService(err, "failed to update account")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("accountID", account.ID)
	}
	return &UpdateAccountOutput{Body: fromService(account)}, nil
}
