package balancer

import "github.com/avGenie/go-locker-balancer/internal/app/entity"

func testOrders() entity.Orders {
	return entity.Orders{
		{
			Date:    20220504,
			Lockers: 45,
			Places:  entity.Places{"a": 20, "b": 15, "c": 10},
		},
		{
			Date:    20220511,
			Lockers: 29,
			Places:  entity.Places{"a": 10, "b": 10, "c": 9},
		},
		{
			Date:    20220518,
			Lockers: 49,
			Places:  entity.Places{"a": 21, "b": 14, "c": 14},
		},
		{
			Date:    20220525,
			Lockers: 41,
			Places:  entity.Places{"a": 14, "b": 16, "c": 11},
		},
	}
}
