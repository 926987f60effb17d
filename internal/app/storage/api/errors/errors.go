package storage

import "errors"

var (
	ErrOrdersNotFound = errors.New("orders don't exist in storage")
)
