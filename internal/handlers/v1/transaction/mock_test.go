package transaction

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/service"
)

type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, input ledger.TransactionInput) (*service.Transaction, error) {
	args := m.Called(ctx, input)
	transaction, _ := args.Get(0).(*service.Transaction)
	return transaction, args.Error(1)
}

func (m *mockTransactionService) ListTransactions(ctx context.Context, filter ledger.TransactionFilter, cursor *service.TransactionCursor) ([]service.Transaction, *service.TransactionCursor, error) {
	args := m.Called(ctx, filter, cursor)
	txs, _ := args.Get(0).([]service.Transaction)
	next, _ := args.Get(1).(*service.TransactionCursor)
	return txs, next, args.Error(2)
}

func (m *mockTransactionService) ListAccountTransactions(ctx context.Context, accountID string) ([]service.Transaction, error) {
	args := m.Called(ctx, accountID)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Error(1)
}

func (m *mockTransactionService) UpdateTransaction(ctx context.Context, id string, update ledger.TransactionUpdate) (*service.Transaction, error) {
	args := m.Called(ctx, id, update)
	transaction, _ := args.Get(0).(*service.Transaction)
	return transaction, args.Error(1)
}

func (m *mockTransactionService) DeleteTransaction(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// newTestAPI registers every transaction handler against a humatest API.
func newTestAPI(t *testing.T, svc *mockTransactionService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(svc).Register(api)
	NewListTransactionsHandler(svc).Register(api)
	NewListAccountTransactionsHandler(svc).Register(api)
	NewUpdateTransactionHandler(svc).Register(api)
	NewDeleteTransactionHandler(svc).Register(api)
	return api
}

func sampleTransaction(id string) service.Transaction {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return service.Transaction{
		ID:          id,
		AccountID:   "acc-1",
		Type:        ledger.TransactionTypeExpense,
		Amount:      decimal.RequireFromString("12.5"),
		Description: "Coffee",
		Category:    "Food & Dining",
		Date:        civil.DateOf(now),
		CreatedAt:   now,
	}
}
