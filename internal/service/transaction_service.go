package service

import (
	"context"
	"time"

	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/operator"
	"github.com/carson-networks/budget-tracker/internal/operator/actions"
)

const defaultLimit = 20

// TransactionService handles transaction business logic.
type TransactionService struct {
	reader   LedgerReader
	operator operator.IOperatorDelegator
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(reader LedgerReader, op operator.IOperatorDelegator) *TransactionService {
	return &TransactionService{reader: reader, operator: op}
}

// CreateTransaction records a transaction against an existing account.
func (s *TransactionService) CreateTransaction(ctx context.Context, input ledger.TransactionInput) (*Transaction, error) {
	action := &actions.CreateTransaction{Input: input}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	transaction := transactionFromLedger(action.Created)
	return &transaction, nil
}

// UpdateTransaction applies the set fields and returns the updated transaction.
func (s *TransactionService) UpdateTransaction(ctx context.Context, id string, update ledger.TransactionUpdate) (*Transaction, error) {
	action := &actions.UpdateTransaction{ID: id, Update: update}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	transaction := transactionFromLedger(action.Updated)
	return &transaction, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, id string) error {
	return s.operator.Process(ctx, &actions.DeleteTransaction{ID: id})
}

// ListAccountTransactions returns the account's transactions in insertion order.
func (s *TransactionService) ListAccountTransactions(_ context.Context, accountID string) ([]Transaction, error) {
	if _, ok := s.reader.Account(accountID); !ok {
		return nil, ledger.ErrAccountNotFound
	}
	return transactionsFromLedger(s.reader.AccountTransactions(accountID)), nil
}

// ListTransactions returns a page of matching transactions, newest date first.
// The first page fixes maxCreationTime to the newest matching record so later
// pages ignore anything inserted in between.
func (s *TransactionService) ListTransactions(_ context.Context, filter ledger.TransactionFilter, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		if cursor.Limit > 0 {
			limit = cursor.Limit
		}
		offset = cursor.Position
		if !cursor.MaxCreationTime.IsZero() {
			maxCreationTime = &cursor.MaxCreationTime
		}
	}

	rows := s.reader.FilterTransactions(filter)
	if maxCreationTime != nil {
		kept := rows[:0]
		for _, row := range rows {
			if !row.CreatedAt.After(*maxCreationTime) {
				kept = append(kept, row)
			}
		}
		rows = kept
	} else {
		latest := latestCreation(rows)
		maxCreationTime = &latest
	}

	if offset >= len(rows) {
		return nil, nil, nil
	}
	rows = rows[offset:]

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: *maxCreationTime,
		}
	}

	return transactionsFromLedger(rows), nextCursor, nil
}

func latestCreation(rows []ledger.Transaction) time.Time {
	var latest time.Time
	for _, row := range rows {
		if row.CreatedAt.After(latest) {
			latest = row.CreatedAt
		}
	}
	return latest
}
