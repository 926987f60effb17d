package order

import (
	"context"
	"fmt"
	"time"

	"github.com/avGenie/go-locker-balancer/internal/app/entity"
	"github.com/avGenie/go-locker-balancer/internal/app/usecase/balancer"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	loadTimeout = 3 * time.Second
)

type OrderSource interface {
	GetOrders(ctx context.Context) (entity.Orders, error)
}

// BalanceOrders loads orders from source and balances them.
func BalanceOrders(ctx context.Context, source OrderSource) (entity.BalanceReport, error) {
	ctx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	orders, err := source.GetOrders(ctx)
	if err != nil {
		return entity.BalanceReport{}, fmt.Errorf("error while loading orders: %w", err)
	}

	return BalanceInput(orders)
}

// BalanceInput balances caller supplied orders under a new run id.
func BalanceInput(orders entity.Orders) (entity.BalanceReport, error) {
	runID := uuid.New()

	balanced, err := balancer.Balance(orders)
	if err != nil {
		zap.L().Info("orders couldn't be balanced", zap.Stringer("run_id", runID), zap.Error(err))
		return entity.BalanceReport{}, fmt.Errorf("error while balancing orders: %w", err)
	}

	mean, err := balancer.Mean(orders)
	if err != nil {
		return entity.BalanceReport{}, fmt.Errorf("error while computing lockers mean: %w", err)
	}

	zap.L().Info(
		"orders balanced",
		zap.Stringer("run_id", runID),
		zap.Float64("mean", mean),
		zap.Int("input_orders", len(orders)),
		zap.Int("balanced_orders", len(balanced)),
	)

	return entity.BalanceReport{
		RunID:  runID,
		Mean:   mean,
		Orders: balanced,
	}, nil
}
