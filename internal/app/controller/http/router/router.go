package http

import (
	"github.com/avGenie/go-locker-balancer/internal/app/controller/http/middleware/logger"
	"github.com/avGenie/go-locker-balancer/internal/app/controller/http/orders"
	"github.com/go-chi/chi/v5"
)

func CreateRouter(orders orders.Order) *chi.Mux {
	r := chi.NewRouter()

	r.Use(logger.LoggerMiddleware)

	r.Get("/api/orders/balanced", orders.GetBalancedOrders())
	r.Post("/api/orders/balance", orders.BalanceOrders())

	return r
}
