package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/budget-tracker/internal/service"
)

type AccountPath struct {
	ID string `path:"id" doc:"Account ID"`
}

type GetAccountOutput struct {
	Body Account
}

type accountGetter interface {
	GetAccount(ctx context.Context, id string) (*service.Account, error)
}

// GetAccountHandler handles GET /v1/accounts/{id}.
type GetAccountHandler struct {
	AccountService accountGetter
}

func NewGetAccountHandler(svc accountGetter) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/{id}",
		Summary:     "Get an account",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *AccountPath) (*GetAccountOutput, error) {
	account, err := h.AccountService.GetAccount(ctx, input.ID)
	if err != nil {
		return nil, apierror.FromService(err, "failed to get account")
	}
	return &GetAccountOutput{Body: fromService(account)}, nil
}
