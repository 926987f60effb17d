package balancer

// TransferSize returns how many lockers may move from a surplus order to the
// next one. The next order is never pushed above the mean, so the result is
// capped by its headroom and is negative when the next order already exceeds it.
func TransferSize(mean, surplus float64, nextOrderLockers int) float64 {
	nextOrderCapacity := mean - float64(nextOrderLockers)

	if surplus > nextOrderCapacity {
		return nextOrderCapacity
	}

	return surplus
}
