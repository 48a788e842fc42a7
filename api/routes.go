package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/simple-bank/internal/handlers/v1/account"
	"github.com/carson-networks/simple-bank/internal/handlers/v1/status"
	"github.com/carson-networks/simple-bank/internal/logging"
	"github.com/carson-networks/simple-bank/internal/metrics"
	"github.com/carson-networks/simple-bank/internal/service"
	"github.com/carson-networks/simple-bank/internal/storage"
)

const shutdownTimeout = 10 * time.Second

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Store   *storage.AccountStore
	Service *service.Service
	Metrics *metrics.Recorder
}

// Router builds the chi router with every endpoint mounted.
func (r *Rest) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(logging.Middleware(r.Logger))

	statusHandler := status.NewHandler(r.Store)
	router.Get("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	router.Method(http.MethodGet, "/metrics", r.Metrics.Handler())

	api := humachi.New(router, huma.DefaultConfig("Simple Bank", "1.0.0"))

	accountService := r.Service.Account
	account.NewListAccountsHandler(accountService).Register(api)
	account.NewCreateAccountHandler(accountService).Register(api)
	account.NewDepositHandler(accountService).Register(api)
	account.NewWithdrawHandler(accountService).Register(api)
	account.NewShowDetailsHandler(accountService).Register(api)
	account.NewUpdateDetailsHandler(accountService).Register(api)
	account.NewDeleteAccountHandler(accountService).Register(api)

	return router
}

// Serve listens until ctx is cancelled, then shuts the server down.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
