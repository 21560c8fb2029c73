package storage

import (
	"context"
	"fmt"

	"github.com/carson-networks/budget-tracker/internal/config"
	"github.com/carson-networks/budget-tracker/internal/storage/memory"
	"github.com/carson-networks/budget-tracker/internal/storage/sqlconfig"
)

// KeyValue is the durable medium the ledger persists into.
// SetMany must apply all entries or none of them.
type KeyValue interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	SetMany(ctx context.Context, entries map[string][]byte) error
	Close() error
}

var (
	_ KeyValue = (*memory.Store)(nil)
	_ KeyValue = (*sqlconfig.KVTable)(nil)
)

// NewStorage opens the backend selected by the configuration.
func NewStorage(ctx context.Context, env *config.Config) (KeyValue, error) {
	switch env.Storage.Backend {
	case config.StorageBackendMemory:
		return memory.NewStore(), nil
	case config.StorageBackendSQLite:
		table, err := sqlconfig.OpenKVTable(ctx, env.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("storage: open sqlite %q: %w", env.Storage.SQLitePath, err)
		}
		return table, nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", env.Storage.Backend)
	}
}
