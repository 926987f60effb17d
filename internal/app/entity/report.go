package entity

import "github.com/google/uuid"

// BalanceReport is the outcome of one balancing run.
type BalanceReport struct {
	RunID  uuid.UUID
	Mean   float64
	Orders Orders
}
