package ledger

import "errors"

var (
	ErrAccountNotFound     = errors.New("ledger: account not found")
	ErrTransactionNotFound = errors.New("ledger: transaction not found")
	ErrInvalidRecord       = errors.New("ledger: invalid record")

	// ErrStoreNotOpen is the panic value raised when a Store is used before
	// Open has returned it or after Close.
	ErrStoreNotOpen = errors.New("ledger: store used outside its open lifecycle")
)
