package http

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/avorobyev/go-order-service/internal/app/config"
	"github.com/avorobyev/go-order-service/internal/app/controller/http/accounts"
	"github.com/avorobyev/go-order-service/internal/app/controller/http/middleware/logger"
	"github.com/avorobyev/go-order-service/internal/app/controller/http/orders"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HTTPServer struct {
	server *http.Server

	config config.Config

	accounts accounts.Handler
	orders   orders.Handler
}

func New(config config.Config, accountProcessor accounts.AccountProcessor, orderProcessor orders.OrderProcessor, orderFetcher orders.OrderFetcher) *HTTPServer {
	accountsHandler := accounts.New(accountProcessor)
	ordersHandler := orders.New(orderProcessor, orderFetcher)

	mux := createMux(&accountsHandler, &ordersHandler)

	server := &http.Server{
		Addr:    config.NetAddr,
		Handler: mux,
	}

	instance := &HTTPServer{
		server:   server,
		config:   config,
		accounts: accountsHandler,
		orders:   ordersHandler,
	}

	return instance
}

func (s *HTTPServer) StartHTTPServer() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	go func() {
		err := s.server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("fatal error while starting server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	zap.L().Info("Got interruption signal. Shutting down HTTP server gracefully...")
	err := s.server.Shutdown(context.Background())
	if err != nil {
		zap.L().Error("error while shutting down server", zap.Error(err))
	}
}

func createMux(accountsHandler *accounts.Handler, ordersHandler *orders.Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(logger.LoggerMiddleware)

	r.Route("/api/accounts", func(r chi.Router) {
		r.Post("/", accountsHandler.CreateAccount())
		r.Get("/{accountID}", accountsHandler.GetAccount())
		r.Patch("/{accountID}/status", accountsHandler.SetAccountStatus())
		r.Get("/{accountID}/orders", ordersHandler.ListAccountOrders())
		r.Get("/{accountID}/statistics", ordersHandler.AccountStatistics())
	})

	r.Route("/api/orders", func(r chi.Router) {
		r.Post("/", ordersHandler.CreateOrder())
		r.Get("/", ordersHandler.ListOrders())
		r.Get("/{orderID}", ordersHandler.GetOrder())
		r.Patch("/{orderID}", ordersHandler.UpdateOrder())
		r.Delete("/{orderID}", ordersHandler.DeleteOrder())
		r.Post("/{orderID}/complete", ordersHandler.CompleteOrder())
		r.Post("/{orderID}/cancel", ordersHandler.CancelOrder())
	})

	return r
}
