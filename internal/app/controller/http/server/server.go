package http

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/avGenie/go-locker-balancer/internal/app/config"
	"github.com/avGenie/go-locker-balancer/internal/app/controller/http/orders"
	router "github.com/avGenie/go-locker-balancer/internal/app/controller/http/router"
	storage "github.com/avGenie/go-locker-balancer/internal/app/storage/api/model"
	"go.uber.org/zap"
)

type HTTPServer struct {
	server *http.Server

	config config.Config
	source storage.OrderSource

	orders orders.Order
}

func New(config config.Config, source storage.OrderSource) *HTTPServer {
	order := orders.New(source)

	server := &http.Server{
		Addr:    config.NetAddr,
		Handler: router.CreateRouter(order),
	}

	instance := &HTTPServer{
		server: server,
		config: config,
		source: source,
		orders: order,
	}

	return instance
}

func (s *HTTPServer) StartHTTPServer() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	go func() {
		zap.L().Info("starting HTTP server", zap.String("address", s.config.NetAddr))

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
