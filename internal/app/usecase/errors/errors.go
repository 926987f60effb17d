package usecase

import "errors"

var (
	ErrOrdersUnavailable  = errors.New("orders are unavailable for balancing")
	ErrEmptyOrders        = errors.New("orders list is empty")
	ErrInvalidOrder       = errors.New("order is invalid")
	ErrNoSuccessor        = errors.New("order with surplus has no successor")
	ErrNegativeTransfer   = errors.New("next order is already above the mean")
	ErrPlacesMismatch     = errors.New("adjacent orders have different places")
	ErrTransferIncomplete = errors.New("not enough places to move the lockers rest")
)
