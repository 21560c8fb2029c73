package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-tracker/internal/handlers/v1/account"
	"github.com/carson-networks/budget-tracker/internal/handlers/v1/status"
	"github.com/carson-networks/budget-tracker/internal/handlers/v1/summary"
	"github.com/carson-networks/budget-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/logging"
	"github.com/carson-networks/budget-tracker/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Ledger  *ledger.Store
}

// Handler builds the mux with every route registered.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Ledger)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("Budget Tracker", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))

	account.NewCreateAccountHandler(r.Service.Account).Register(api)
	account.NewListAccountsHandler(r.Service.Account).Register(api)
	account.NewGetAccountHandler(r.Service.Account).Register(api)
	account.NewUpdateAccountHandler(r.Service.Account).Register(api)
	account.NewDeleteAccountHandler(r.Service.Account).Register(api)

	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)
	transaction.NewListAccountTransactionsHandler(r.Service.Transaction).Register(api)
	transaction.NewUpdateTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewDeleteTransactionHandler(r.Service.Transaction).Register(api)

	summary.NewGetSummaryHandler(r.Service.Summary).Register(api)
	summary.NewGetCategoriesHandler(r.Service.Summary).Register(api)

	return mux
}

// Serve listens until ctx is cancelled, then shuts down gracefully.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              "127.0.0.1:" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()
		r.Logger.Info("HttpServer.Serve.shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		shutdownErr <- server.Shutdown(shutdownCtx)
	}()

	r.Logger.WithField("addr", server.Addr).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}
	return <-shutdownErr
}
