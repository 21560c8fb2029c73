package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-tracker/api"
	"github.com/carson-networks/budget-tracker/internal/config"
	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/logging"
	"github.com/carson-networks/budget-tracker/internal/operator"
	"github.com/carson-networks/budget-tracker/internal/service"
	"github.com/carson-networks/budget-tracker/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("budget-tracker starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, err := storage.NewStorage(ctx, envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer func() {
		if err := kv.Close(); err != nil {
			logger.WithError(err).Error("storage.Close")
		}
	}()

	store, err := ledger.Open(ctx, kv,
		ledger.WithLogger(logger),
		ledger.WithKeys(ledger.Keys{
			Accounts:     envConfig.Storage.AccountsKey,
			Transactions: envConfig.Storage.TransactionsKey,
		}),
	)
	if err != nil {
		logger.WithError(err).Fatal("ledger.Open")
		return
	}
	defer store.Close()

	op := operator.NewOperatorDelegator(store, envConfig.QueueSize, logger)
	op.Start()
	defer op.Stop()

	httpRest := api.Rest{
		Logger:  logger,
		Port:    envConfig.Port,
		Service: service.NewService(store, op),
		Ledger:  store,
	}
	if err := httpRest.Serve(ctx); err != nil {
		logger.WithError(err).Error("HttpServer.Serve")
	}

	logger.Info("budget-tracker stopped")
}
