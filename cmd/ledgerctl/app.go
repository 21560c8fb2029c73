package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-tracker/internal/config"
	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/logging"
	"github.com/carson-networks/budget-tracker/internal/report"
	"github.com/carson-networks/budget-tracker/internal/storage"
)

// A CLI run is short lived, so global flags and output are fine here.
var (
	plain = flag.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal.")

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

type session struct {
	store     *ledger.Store
	formatter *report.Formatter
	close     func()
}

// openSession loads the configured ledger. Logs go to stderr so stdout only
// carries command output.
func openSession(ctx context.Context) (*session, error) {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.SetOutput(stderr)
	if envConfig.Storage.Backend == config.StorageBackendMemory {
		logger.Warn("ledgerctl.openSession.memory backend holds no data")
	}

	formatter, err := report.NewFormatter(envConfig.Currency)
	if err != nil {
		return nil, err
	}

	kv, err := storage.NewStorage(ctx, envConfig)
	if err != nil {
		return nil, err
	}

	store, err := ledger.Open(ctx, kv,
		ledger.WithLogger(logger),
		ledger.WithKeys(ledger.Keys{
			Accounts:     envConfig.Storage.AccountsKey,
			Transactions: envConfig.Storage.TransactionsKey,
		}),
	)
	if err != nil {
		_ = kv.Close()
		return nil, err
	}

	return &session{
		store:     store,
		formatter: formatter,
		close: func() {
			store.Close()
			if err := kv.Close(); err != nil {
				logger.WithError(err).WithFields(logrus.Fields{"backend": envConfig.Storage.Backend}).Error("storage.Close")
			}
		},
	}, nil
}

func printMarkdown(md string) error {
	if *plain {
		_, err := io.WriteString(stdout, md)
		return err
	}

	out, err := glamour.Render(md, "auto")
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, out)
	return err
}

func fail(err error) {
	fmt.Fprintln(stderr, err)
}
