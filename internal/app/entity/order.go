package entity

import (
	"fmt"
	"maps"
	"sort"
	"strconv"
)

// OrderDate is a sortable order identifier in YYYYMMDD form.
type OrderDate int

func (d OrderDate) String() string {
	return strconv.Itoa(int(d))
}

// Places maps a place key to the number of lockers assigned to it.
type Places map[string]int

// Keys returns place keys in ascending order.
func (p Places) Keys() []string {
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}

func (p Places) Total() int {
	total := 0
	for _, value := range p {
		total += value
	}

	return total
}

// SameKeys reports whether both maps hold exactly the same place keys.
func (p Places) SameKeys(other Places) bool {
	if len(p) != len(other) {
		return false
	}

	for key := range p {
		if _, ok := other[key]; !ok {
			return false
		}
	}

	return true
}

func (p Places) Clone() Places {
	if p == nil {
		return nil
	}

	return maps.Clone(p)
}

type Orders []Order

type Order struct {
	Date    OrderDate
	Lockers int
	Places  Places
}

// Validate checks that the order quantities are non-negative and that the
// places add up to the locker total.
func (o Order) Validate() error {
	if o.Lockers < 0 {
		return fmt.Errorf("order %s has negative lockers count %d", o.Date, o.Lockers)
	}

	for key, value := range o.Places {
		if value < 0 {
			return fmt.Errorf("order %s has negative quantity %d for place %s", o.Date, value, key)
		}
	}

	if total := o.Places.Total(); total != o.Lockers {
		return fmt.Errorf("order %s places sum %d doesn't match lockers count %d", o.Date, total, o.Lockers)
	}

	return nil
}

func (o Order) Clone() Order {
	return Order{
		Date:    o.Date,
		Lockers: o.Lockers,
		Places:  o.Places.Clone(),
	}
}

func (o Orders) Clone() Orders {
	if o == nil {
		return nil
	}

	cloned := make(Orders, 0, len(o))
	for _, order := range o {
		cloned = append(cloned, order.Clone())
	}

	return cloned
}

// BalancedPlaces is the working copy of two adjacent orders' places.
type BalancedPlaces struct {
	CurrentOrder Places
	NextOrder    Places
}
