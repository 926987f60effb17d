package storage

import (
	"context"

	"github.com/avGenie/go-locker-balancer/internal/app/entity"
	err_storage "github.com/avGenie/go-locker-balancer/internal/app/storage/api/errors"
)

type Memory struct {
	orders entity.Orders
}

// NewMemoryStorage keeps its own copy of orders. A nil dataset makes
// GetOrders report ErrOrdersNotFound.
func NewMemoryStorage(orders entity.Orders) *Memory {
	return &Memory{
		orders: orders.Clone(),
	}
}

func (s *Memory) GetOrders(ctx context.Context) (entity.Orders, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.orders == nil {
		return nil, err_storage.ErrOrdersNotFound
	}

	return s.orders.Clone(), nil
}
