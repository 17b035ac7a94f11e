package http

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/merolaashraf15-source/MED/internal/app/config"
	mw_logger "github.com/merolaashraf15-source/MED/internal/app/controller/http/middleware/logger"
	mw_metrics "github.com/merolaashraf15-source/MED/internal/app/controller/http/middleware/metrics"
	"github.com/merolaashraf15-source/MED/internal/app/controller/http/orders"
	"github.com/merolaashraf15-source/MED/internal/app/metrics"
	storage "github.com/merolaashraf15-source/MED/internal/app/storage/api/model"
)

type HTTPServer struct {
	server *http.Server

	config  config.Config
	storage storage.Storage

	orders orders.Order
}

func New(config config.Config, storage storage.Storage, serverMetrics *metrics.ServerMetrics) *HTTPServer {
	order := orders.New(storage)

	mux := createMux(order, storage, serverMetrics)

	server := &http.Server{
		Addr:    config.NetAddr,
		Handler: mux,
	}

	instance := &HTTPServer{
		server:  server,
		config:  config,
		storage: storage,
		orders:  order,
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

	err = s.storage.Close()
	if err != nil {
		zap.L().Error("error while closing storage", zap.Error(err))
	}
}

func createMux(order orders.Order, storage storage.Storage, serverMetrics *metrics.ServerMetrics) *chi.Mux {
	r := chi.NewRouter()

	r.Use(mw_logger.LoggerMiddleware)
	r.Use(mw_metrics.MetricsMiddleware(serverMetrics))

	r.Get("/api/orders", order.ListOrders())
	r.Get("/api/orders/export", order.ExportOrders())
	r.Get("/api/orders/{id}", order.GetOrder())
	r.Post("/api/orders", order.CreateOrder())
	r.Patch("/api/orders/{id}", order.UpdateOrder())
	r.Delete("/api/orders/{id}", order.DeleteOrder())

	r.Get("/ping", pingStorage(storage))
	r.Get("/metrics", metrics.Handler().ServeHTTP)

	return r
}

func pingStorage(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := storage.Ping(r.Context())
		if err != nil {
			zap.L().Error("error while pinging storage", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
