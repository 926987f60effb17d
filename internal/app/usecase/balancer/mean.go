package balancer

import (
	"github.com/avGenie/go-locker-balancer/internal/app/entity"
	usecase "github.com/avGenie/go-locker-balancer/internal/app/usecase/errors"
)

// Mean returns the average lockers count of the orders.
func Mean(orders entity.Orders) (float64, error) {
	if len(orders) == 0 {
		return 0, usecase.ErrEmptyOrders
	}

	total := 0
	for _, order := range orders {
		total += order.Lockers
	}

	return float64(total) / float64(len(orders)), nil
}
