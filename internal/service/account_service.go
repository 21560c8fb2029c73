package service

import (
	"context"

	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/operator"
	"github.com/carson-networks/budget-tracker/internal/operator/actions"
)

// AccountService handles account business logic.
type AccountService struct {
	reader   LedgerReader
	operator operator.IOperatorDelegator
}

// NewAccountService creates a new AccountService.
func NewAccountService(reader LedgerReader, op operator.IOperatorDelegator) *AccountService {
	return &AccountService{reader: reader, operator: op}
}

// CreateAccount adds an account and returns it with its balance.
func (s *AccountService) CreateAccount(ctx context.Context, input ledger.AccountInput) (*Account, error) {
	action := &actions.CreateAccount{Input: input}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	account := s.fromLedger(action.Created)
	return &account, nil
}

// GetAccount retrieves an account by ID.
func (s *AccountService) GetAccount(_ context.Context, id string) (*Account, error) {
	row, ok := s.reader.Account(id)
	if !ok {
		return nil, ledger.ErrAccountNotFound
	}

	account := s.fromLedger(row)
	return &account, nil
}

// ListAccounts returns every account in creation order.
func (s *AccountService) ListAccounts(_ context.Context) ([]Account, error) {
	rows := s.reader.Accounts()

	converted := make([]Account, len(rows))
	for i, row := range rows {
		converted[i] = s.fromLedger(row)
	}
	return converted, nil
}

// UpdateAccount applies the set fields and returns the updated account.
func (s *AccountService) UpdateAccount(ctx context.Context, id string, update ledger.AccountUpdate) (*Account, error) {
	action := &actions.UpdateAccount{ID: id, Update: update}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	account := s.fromLedger(action.Updated)
	return &account, nil
}

// DeleteAccount removes the account and returns how many transactions went with it.
func (s *AccountService) DeleteAccount(ctx context.Context, id string) (int, error) {
	action := &actions.DeleteAccount{ID: id}
	if err := s.operator.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.RemovedTransactions, nil
}
