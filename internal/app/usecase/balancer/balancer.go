package balancer

import (
	"fmt"
	"math"

	"github.com/avGenie/go-locker-balancer/internal/app/entity"
	usecase "github.com/avGenie/go-locker-balancer/internal/app/usecase/errors"
	"go.uber.org/zap"
)

// Balance moves lockers from every order above the mean to its successor.
// Only the pairs touched by a transfer are returned, in processing order.
// The input orders are left untouched.
func Balance(orders entity.Orders) (entity.Orders, error) {
	if orders == nil {
		return nil, usecase.ErrOrdersUnavailable
	}

	mean, err := Mean(orders)
	if err != nil {
		return nil, err
	}

	for _, order := range orders {
		if err := order.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", usecase.ErrInvalidOrder, err)
		}
	}

	balanced := make(entity.Orders, 0, len(orders))
	for index, order := range orders {
		orderSurplus := float64(order.Lockers) - mean
		if orderSurplus <= 0 {
			continue
		}

		if index+1 == len(orders) {
			return nil, fmt.Errorf("order %s: %w", order.Date, usecase.ErrNoSuccessor)
		}
		nextOrder := orders[index+1]

		transferSize := TransferSize(mean, orderSurplus, nextOrder.Lockers)
		if transferSize < 0 {
			return nil, fmt.Errorf("order %s with %d lockers: %w", nextOrder.Date, nextOrder.Lockers, usecase.ErrNegativeTransfer)
		}
		transferCount := int(math.Floor(transferSize))

		places, err := RebalancePlaces(transferCount, order, nextOrder)
		if err != nil {
			return nil, fmt.Errorf("error while balancing places: %w", err)
		}

		zap.L().Debug(
			"lockers moved to the next order",
			zap.Stringer("date", order.Date),
			zap.Stringer("next_date", nextOrder.Date),
			zap.Int("count", transferCount),
		)

		balanced = append(balanced,
			entity.Order{
				Date:    order.Date,
				Lockers: order.Lockers - transferCount,
				Places:  places.CurrentOrder,
			},
			entity.Order{
				Date:    nextOrder.Date,
				Lockers: nextOrder.Lockers + transferCount,
				Places:  places.NextOrder,
			},
		)
	}

	return balanced, nil
}
