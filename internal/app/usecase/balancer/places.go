package balancer

import (
	"fmt"

	"github.com/avGenie/go-locker-balancer/internal/app/entity"
	usecase "github.com/avGenie/go-locker-balancer/internal/app/usecase/errors"
)

// RebalancePlaces moves transferCount lockers from order to nextOrder place by
// place, pro rata to the order's place quantities. Lockers lost to rounding
// are moved one by one afterwards. Inputs are not modified.
func RebalancePlaces(transferCount int, order, nextOrder entity.Order) (entity.BalancedPlaces, error) {
	if !order.Places.SameKeys(nextOrder.Places) {
		return entity.BalancedPlaces{}, fmt.Errorf("orders %s and %s: %w", order.Date, nextOrder.Date, usecase.ErrPlacesMismatch)
	}

	balanced := entity.BalancedPlaces{
		CurrentOrder: order.Places.Clone(),
		NextOrder:    nextOrder.Places.Clone(),
	}
	if transferCount <= 0 {
		return balanced, nil
	}

	if transferCount > order.Lockers {
		return entity.BalancedPlaces{}, fmt.Errorf("order %s has %d lockers, %d requested: %w", order.Date, order.Lockers, transferCount, usecase.ErrTransferIncomplete)
	}

	movedCount := 0
	for _, key := range order.Places.Keys() {
		placeSurplus := placeShare(order.Places[key], transferCount, order.Lockers)
		if placeSurplus > 0 {
			balanced.CurrentOrder[key] -= placeSurplus
			balanced.NextOrder[key] += placeSurplus
			movedCount += placeSurplus
		}
	}

	rest := transferCount - movedCount
	for _, key := range balanced.NextOrder.Keys() {
		if rest <= 0 {
			break
		}

		if balanced.CurrentOrder[key] == 0 {
			continue
		}

		balanced.CurrentOrder[key]--
		balanced.NextOrder[key]++
		rest--
	}

	if rest > 0 {
		return entity.BalancedPlaces{}, fmt.Errorf("orders %s and %s, %d lockers left: %w", order.Date, nextOrder.Date, rest, usecase.ErrTransferIncomplete)
	}

	return balanced, nil
}

// placeShare is floor(placeValue / orderLockers * transferCount) in integers.
func placeShare(placeValue, transferCount, orderLockers int) int {
	if orderLockers <= 0 {
		return 0
	}

	return placeValue * transferCount / orderLockers
}
