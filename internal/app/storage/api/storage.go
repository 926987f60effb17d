package storage

import (
	"github.com/avGenie/go-locker-balancer/internal/app/config"
	"github.com/avGenie/go-locker-balancer/internal/app/storage/api/model"
	storage "github.com/avGenie/go-locker-balancer/internal/app/storage/memory"
)

func InitStorage(config config.Config) (model.OrderSource, error) {
	if config.SampleOrders {
		return storage.NewMemoryStorage(storage.SampleOrders()), nil
	}

	return storage.NewMemoryStorage(nil), nil
}
