package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
)

const (
	StorageBackendSQLite = "sqlite"
	StorageBackendMemory = "memory"
)

type Config struct {
	Port     string `env:"LEDGER_PORT" envDefault:"9446"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Currency string `env:"LEDGER_CURRENCY" envDefault:"USD"`

	// QueueSize bounds the number of pending writes waiting on the operator.
	QueueSize int `env:"OPERATOR_QUEUE_SIZE" envDefault:"1000"`

	Storage Storage
}

type Storage struct {
	Backend         string `env:"STORAGE_BACKEND" envDefault:"sqlite"`
	SQLitePath      string `env:"SQLITE_PATH" envDefault:"budget-tracker.db"`
	AccountsKey     string `env:"ACCOUNTS_KEY" envDefault:"budgetTrackerAccounts"`
	TransactionsKey string `env:"TRANSACTIONS_KEY" envDefault:"budgetTrackerTransactions"`
}

// ProcessEnvironmentVariables reads the configuration from the environment,
// after loading an optional .env file from the working directory.
func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	switch cfg.Storage.Backend {
	case StorageBackendSQLite, StorageBackendMemory:
	default:
		return nil, errors.New("config: unknown STORAGE_BACKEND " + cfg.Storage.Backend)
	}

	if cfg.QueueSize < 1 {
		cfg.QueueSize = 1
	}

	return &cfg, nil
}
