package model

import (
	"context"

	"github.com/avGenie/go-locker-balancer/internal/app/entity"
)

type OrderSource interface {
	GetOrders(ctx context.Context) (entity.Orders, error)
}
