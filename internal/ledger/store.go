package ledger

import (
	"context"
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

// KeyValue is the medium a Store persists into. SetMany must be atomic.
type KeyValue interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	SetMany(ctx context.Context, entries map[string][]byte) error
}

// Store owns the accounts and transactions collections.
//
// Every mutation builds the next state, persists it, and only then makes it
// visible, so a failed write leaves the store exactly as it was. Reads never
// cache derived values. A Store must come from Open; any use before that or
// after Close panics with ErrStoreNotOpen.
type Store struct {
	mu sync.RWMutex

	kv       KeyValue
	keys     Keys
	log      logrus.FieldLogger
	now      func() time.Time
	newID    func() string
	validate *validator.Validate
	open     bool

	accounts     []Account
	transactions []Transaction
}

type Option func(*Store)

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Store) { s.log = log }
}

func WithKeys(keys Keys) Option {
	return func(s *Store) { s.keys = keys }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

func newUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.Out = io.Discard
	return logger
}

// Open rehydrates a Store from kv. No operation is accepted until it returns.
func Open(ctx context.Context, kv KeyValue, opts ...Option) (*Store, error) {
	s := &Store{
		kv:       kv,
		keys:     DefaultKeys,
		now:      time.Now,
		newID:    newUUID,
		validate: newValidator(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = discardLogger()
	}

	if err := s.load(ctx); err != nil {
		return nil, err
	}

	s.open = true
	return s, nil
}

// Close ends the store's lifecycle. The key-value medium stays with its owner.
func (s *Store) Close() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
}

func (s *Store) lock() func() {
	if s == nil {
		panic(ErrStoreNotOpen)
	}
	s.mu.Lock()
	if !s.open {
		s.mu.Unlock()
		panic(ErrStoreNotOpen)
	}
	return s.mu.Unlock
}

func (s *Store) rlock() func() {
	if s == nil {
		panic(ErrStoreNotOpen)
	}
	s.mu.RLock()
	if !s.open {
		s.mu.RUnlock()
		panic(ErrStoreNotOpen)
	}
	return s.mu.RUnlock
}

// commit persists the next state and swaps it in. Callers hold the write lock.
func (s *Store) commit(ctx context.Context, accounts []Account, transactions []Transaction) error {
	if err := s.persist(ctx, accounts, transactions); err != nil {
		return err
	}
	s.accounts = accounts
	s.transactions = transactions
	return nil
}

func (s *Store) today() civil.Date {
	return civil.DateOf(s.now())
}

func (s *Store) accountIndex(id string) int {
	return slices.IndexFunc(s.accounts, func(a Account) bool { return a.ID == id })
}

func (s *Store) transactionIndex(id string) int {
	return slices.IndexFunc(s.transactions, func(t Transaction) bool { return t.ID == id })
}

// AddAccount appends a new account built from input.
func (s *Store) AddAccount(ctx context.Context, input AccountInput) (Account, error) {
	defer s.lock()()

	account := Account{
		ID:             s.newID(),
		Name:           strings.TrimSpace(input.Name),
		Type:           NormalizeAccountType(input.Type),
		InitialBalance: ParseAmount(input.InitialBalance),
		Description:    input.Description,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.validateAccount(account); err != nil {
		return Account{}, err
	}

	accounts := append(slices.Clip(s.accounts), account)
	if err := s.commit(ctx, accounts, s.transactions); err != nil {
		return Account{}, err
	}

	s.log.WithField("accountID", account.ID).Debug("Ledger.AddAccount.Complete")
	return account, nil
}

// UpdateAccount replaces the set fields of the account with the given id.
// ID and CreatedAt never change. An unknown id changes nothing.
func (s *Store) UpdateAccount(ctx context.Context, id string, update AccountUpdate) error {
	defer s.lock()()

	i := s.accountIndex(id)
	if i < 0 {
		return ErrAccountNotFound
	}

	account := s.accounts[i]
	if name, ok := update.Name.Get(); ok {
		account.Name = strings.TrimSpace(name)
	}
	if accountType, ok := update.Type.Get(); ok {
		account.Type = NormalizeAccountType(accountType)
	}
	if balance, ok := update.InitialBalance.Get(); ok {
		account.InitialBalance = ParseAmount(balance)
	}
	if description, ok := update.Description.Get(); ok {
		account.Description = description
	}
	if err := s.validateAccount(account); err != nil {
		return err
	}

	accounts := slices.Clone(s.accounts)
	accounts[i] = account
	if err := s.commit(ctx, accounts, s.transactions); err != nil {
		return err
	}

	s.log.WithField("accountID", id).Debug("Ledger.UpdateAccount.Complete")
	return nil
}

// DeleteAccount removes the account and every transaction referencing it
// with a single write.
func (s *Store) DeleteAccount(ctx context.Context, id string) error {
	defer s.lock()()

	i := s.accountIndex(id)
	if i < 0 {
		return ErrAccountNotFound
	}

	accounts := slices.Delete(slices.Clone(s.accounts), i, i+1)
	transactions := slices.DeleteFunc(slices.Clone(s.transactions), func(t Transaction) bool {
		return t.AccountID == id
	})
	removed := len(s.transactions) - len(transactions)

	if err := s.commit(ctx, accounts, transactions); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"accountID":           id,
		"removedTransactions": removed,
	}).Debug("Ledger.DeleteAccount.Complete")
	return nil
}

// AddTransaction appends a new transaction against an existing account.
func (s *Store) AddTransaction(ctx context.Context, input TransactionInput) (Transaction, error) {
	defer s.lock()()

	if s.accountIndex(input.AccountID) < 0 {
		return Transaction{}, ErrAccountNotFound
	}

	transaction := Transaction{
		ID:          s.newID(),
		AccountID:   input.AccountID,
		Type:        NormalizeTransactionType(input.Type),
		Amount:      parseMagnitude(input.Amount),
		Description: strings.TrimSpace(input.Description),
		Category:    strings.TrimSpace(input.Category),
		Date:        parseDate(input.Date, s.today()),
		Notes:       input.Notes,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.validateTransaction(transaction); err != nil {
		return Transaction{}, err
	}

	transactions := append(slices.Clip(s.transactions), transaction)
	if err := s.commit(ctx, s.accounts, transactions); err != nil {
		return Transaction{}, err
	}

	s.log.WithFields(logrus.Fields{
		"transactionID": transaction.ID,
		"accountID":     transaction.AccountID,
	}).Debug("Ledger.AddTransaction.Complete")
	return transaction, nil
}

// UpdateTransaction replaces the set fields of the transaction with the given
// id. A date that does not parse keeps the current one.
func (s *Store) UpdateTransaction(ctx context.Context, id string, update TransactionUpdate) error {
	defer s.lock()()

	i := s.transactionIndex(id)
	if i < 0 {
		return ErrTransactionNotFound
	}

	transaction := s.transactions[i]
	if accountID, ok := update.AccountID.Get(); ok {
		if s.accountIndex(accountID) < 0 {
			return ErrAccountNotFound
		}
		transaction.AccountID = accountID
	}
	if transactionType, ok := update.Type.Get(); ok {
		transaction.Type = NormalizeTransactionType(transactionType)
	}
	if amount, ok := update.Amount.Get(); ok {
		transaction.Amount = parseMagnitude(amount)
	}
	if description, ok := update.Description.Get(); ok {
		transaction.Description = strings.TrimSpace(description)
	}
	if category, ok := update.Category.Get(); ok {
		transaction.Category = strings.TrimSpace(category)
	}
	if date, ok := update.Date.Get(); ok {
		transaction.Date = parseDate(date, transaction.Date)
	}
	if notes, ok := update.Notes.Get(); ok {
		transaction.Notes = notes
	}
	if err := s.validateTransaction(transaction); err != nil {
		return err
	}

	transactions := slices.Clone(s.transactions)
	transactions[i] = transaction
	if err := s.commit(ctx, s.accounts, transactions); err != nil {
		return err
	}

	s.log.WithField("transactionID", id).Debug("Ledger.UpdateTransaction.Complete")
	return nil
}

// DeleteTransaction removes the transaction with the given id.
func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	defer s.lock()()

	i := s.transactionIndex(id)
	if i < 0 {
		return ErrTransactionNotFound
	}

	transactions := slices.Delete(slices.Clone(s.transactions), i, i+1)
	if err := s.commit(ctx, s.accounts, transactions); err != nil {
		return err
	}

	s.log.WithField("transactionID", id).Debug("Ledger.DeleteTransaction.Complete")
	return nil
}
