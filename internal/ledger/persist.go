package ledger

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// Keys names the two entries the ledger occupies in the key-value medium.
type Keys struct {
	Accounts     string
	Transactions string
}

// DefaultKeys matches the layout written by earlier desktop builds.
var DefaultKeys = Keys{
	Accounts:     "budgetTrackerAccounts",
	Transactions: "budgetTrackerTransactions",
}

func newValidator() *validator.Validate {
	validate := validator.New()
	err := validate.RegisterValidation("account_type", func(fl validator.FieldLevel) bool {
		return AccountType(fl.Field().String()).Valid()
	})
	if err != nil {
		panic(fmt.Sprintf("ledger: register account_type validation: %v", err))
	}
	return validate
}

func (s *Store) validateAccount(account Account) error {
	if !amountInRange(account.InitialBalance) {
		return fmt.Errorf("%w: account: initial balance out of range", ErrInvalidRecord)
	}
	if err := s.validate.Struct(account); err != nil {
		return fmt.Errorf("%w: account: %v", ErrInvalidRecord, err)
	}
	return nil
}

func (s *Store) validateTransaction(transaction Transaction) error {
	if !amountInRange(transaction.Amount) {
		return fmt.Errorf("%w: transaction: amount out of range", ErrInvalidRecord)
	}
	if err := s.validate.Struct(transaction); err != nil {
		return fmt.Errorf("%w: transaction: %v", ErrInvalidRecord, err)
	}
	if !transaction.Date.IsValid() {
		return fmt.Errorf("%w: transaction: invalid date %v", ErrInvalidRecord, transaction.Date)
	}
	if transaction.Amount.IsNegative() {
		return fmt.Errorf("%w: transaction: negative amount", ErrInvalidRecord)
	}
	return nil
}

// encode serializes both collections. Nil collections are written as empty arrays.
func encode(accounts []Account, transactions []Transaction) (accountsJSON, transactionsJSON []byte, err error) {
	if accounts == nil {
		accounts = []Account{}
	}
	if transactions == nil {
		transactions = []Transaction{}
	}

	accountsJSON, err = json.Marshal(accounts)
	if err != nil {
		return nil, nil, err
	}
	transactionsJSON, err = json.Marshal(transactions)
	if err != nil {
		return nil, nil, err
	}
	return accountsJSON, transactionsJSON, nil
}

// persist writes the given state under both keys in one SetMany call.
func (s *Store) persist(ctx context.Context, accounts []Account, transactions []Transaction) error {
	accountsJSON, transactionsJSON, err := encode(accounts, transactions)
	if err != nil {
		return fmt.Errorf("ledger: encode: %w", err)
	}

	err = s.kv.SetMany(ctx, map[string][]byte{
		s.keys.Accounts:     accountsJSON,
		s.keys.Transactions: transactionsJSON,
	})
	if err != nil {
		return fmt.Errorf("ledger: persist: %w", err)
	}
	return nil
}

// load reads both collections. Missing keys are empty collections; entries
// that do not decode or validate are skipped, as are transactions whose
// account is gone.
func (s *Store) load(ctx context.Context) error {
	rawAccounts, err := s.readArray(ctx, s.keys.Accounts)
	if err != nil {
		return err
	}
	rawTransactions, err := s.readArray(ctx, s.keys.Transactions)
	if err != nil {
		return err
	}

	accounts := make([]Account, 0, len(rawAccounts))
	accountIDs := make(map[string]struct{}, len(rawAccounts))
	for i, raw := range rawAccounts {
		var account Account
		if err := json.Unmarshal(raw, &account); err != nil {
			s.logSkipped(s.keys.Accounts, i, err)
			continue
		}
		if err := s.validateAccount(account); err != nil {
			s.logSkipped(s.keys.Accounts, i, err)
			continue
		}
		if _, dup := accountIDs[account.ID]; dup {
			s.logSkipped(s.keys.Accounts, i, fmt.Errorf("duplicate id %q", account.ID))
			continue
		}
		accountIDs[account.ID] = struct{}{}
		accounts = append(accounts, account)
	}

	transactions := make([]Transaction, 0, len(rawTransactions))
	transactionIDs := make(map[string]struct{}, len(rawTransactions))
	for i, raw := range rawTransactions {
		var transaction Transaction
		if err := json.Unmarshal(raw, &transaction); err != nil {
			s.logSkipped(s.keys.Transactions, i, err)
			continue
		}
		transaction.Amount = transaction.Amount.Abs()
		if err := s.validateTransaction(transaction); err != nil {
			s.logSkipped(s.keys.Transactions, i, err)
			continue
		}
		if _, ok := accountIDs[transaction.AccountID]; !ok {
			s.logSkipped(s.keys.Transactions, i, fmt.Errorf("%w: %q", ErrAccountNotFound, transaction.AccountID))
			continue
		}
		if _, dup := transactionIDs[transaction.ID]; dup {
			s.logSkipped(s.keys.Transactions, i, fmt.Errorf("duplicate id %q", transaction.ID))
			continue
		}
		transactionIDs[transaction.ID] = struct{}{}
		transactions = append(transactions, transaction)
	}

	s.accounts = accounts
	s.transactions = transactions

	s.log.WithFields(logrus.Fields{
		"accounts":     len(accounts),
		"transactions": len(transactions),
	}).Info("Ledger.Open.loaded")
	return nil
}

// readArray returns the elements of the JSON array stored under key.
// A missing key, or a value that is not an array at all, reads as empty.
func (s *Store) readArray(ctx context.Context, key string) ([]json.RawMessage, error) {
	value, found, err := s.kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("ledger: read %q: %w", key, err)
	}
	if !found {
		return nil, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(value, &raw); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("Ledger.Open.unreadable collection")
		return nil, nil
	}
	return raw, nil
}

func (s *Store) logSkipped(key string, index int, err error) {
	s.log.WithError(err).WithFields(logrus.Fields{
		"key":   key,
		"index": index,
	}).Warn("Ledger.Open.skipped entry")
}

// Snapshot returns the current state in its persisted layout, keyed the same
// way it is stored.
func (s *Store) Snapshot() (map[string]json.RawMessage, error) {
	defer s.rlock()()

	accountsJSON, transactionsJSON, err := encode(s.accounts, s.transactions)
	if err != nil {
		return nil, err
	}
	return map[string]json.RawMessage{
		s.keys.Accounts:     accountsJSON,
		s.keys.Transactions: transactionsJSON,
	}, nil
}
