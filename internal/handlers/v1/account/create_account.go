package account

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

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountBody is the request body fields for creating an account.
type CreateAccountBody struct {
	Name           string       `json:"name" minLength:"1" doc:"Account name"`
	Type           string       `json:"type,omitempty" doc:"Account type, defaults to Checking; unknown types become Other"`
	InitialBalance amount.Input `json:"initialBalance,omitempty" doc:"Starting balance as a string or number (e.g. '1234.56' or 1234.56); unparsable values count as 0"`
	Description    string       `json:"description,omitempty" doc:"Free-text description"`
}

// CreateAccountOutput is the response for creating an account.
type CreateAccountOutput struct {
	Body Account
}

type accountCreator interface {
	CreateAccount(ctx context.Context, input ledger.AccountInput) (*service.Account, error)
}

// CreateAccountHandler handles POST /v1/accounts.
type CreateAccountHandler struct {
	AccountService accountCreator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-account",
		Method:        http.MethodPost,
		Path:          "/v1/accounts",
		Summary:       "Create an account",
		Description:   "Creates a new account with the given name, type, initial balance and description.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createAccountMs")
	}
	account, err := h.AccountService.CreateAccount(ctx, ledger.AccountInput{
		Name:           input.Body.Name,
		Type:           ledger.AccountType(input.Body.Type),
		InitialBalance: input.Body.InitialBalance.String(),
		Description:    input.Body.Description,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromService(err, "failed to create account")
	}

	if logData != nil {
		logData.AddData("accountID", account.ID)
	}

	return &CreateAccountOutput{Body: fromService(account)}, nil
}
