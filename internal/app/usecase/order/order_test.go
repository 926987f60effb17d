package order

import (
	"context"
	"errors"
	"testing"

	"github.com/avGenie/go-locker-balancer/internal/app/entity"
	err_storage "github.com/avGenie/go-locker-balancer/internal/app/storage/api/errors"
	storage "github.com/avGenie/go-locker-balancer/internal/app/storage/memory"
	usecase "github.com/avGenie/go-locker-balancer/internal/app/usecase/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sourceFunc func(ctx context.Context) (entity.Orders, error)

func (f sourceFunc) GetOrders(ctx context.Context) (entity.Orders, error) {
	return f(ctx)
}

func TestBalanceOrders(t *testing.T) {
	tests := []struct {
		name   string
		source OrderSource

		wantLockers []int
		wantErr     error
	}{
		{
			name:        "sample orders",
			source:      storage.NewMemoryStorage(storage.SampleOrders()),
			wantLockers: []int{41, 33, 49, 41},
		},
		{
			name:    "orders not found",
			source:  storage.NewMemoryStorage(nil),
			wantErr: err_storage.ErrOrdersNotFound,
		},
		{
			name: "source returns nil orders",
			source: sourceFunc(func(ctx context.Context) (entity.Orders, error) {
				return nil, nil
			}),
			wantErr: usecase.ErrOrdersUnavailable,
		},
		{
			name: "source failure",
			source: sourceFunc(func(ctx context.Context) (entity.Orders, error) {
				return nil, errors.New("source is down")
			}),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			report, err := BalanceOrders(context.Background(), test.source)

			if test.wantLockers == nil {
				require.Error(t, err)
				if test.wantErr != nil {
					assert.ErrorIs(t, err, test.wantErr)
				}
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, report.RunID)
			assert.Equal(t, 41.0, report.Mean)

			lockers := make([]int, 0, len(report.Orders))
			for _, order := range report.Orders {
				lockers = append(lockers, order.Lockers)
			}
			assert.Equal(t, test.wantLockers, lockers)
		})
	}
}

func TestBalanceInputRunIDs(t *testing.T) {
	first, err := BalanceInput(storage.SampleOrders())
	require.NoError(t, err)

	second, err := BalanceInput(storage.SampleOrders())
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID)
	assert.Equal(t, first.Orders, second.Orders)
}
