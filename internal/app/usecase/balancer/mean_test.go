package balancer

import (
	"testing"

	"github.com/avGenie/go-locker-balancer/internal/app/entity"
	usecase "github.com/avGenie/go-locker-balancer/internal/app/usecase/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		orders entity.Orders

		want    float64
		wantErr error
	}{
		{
			name:   "sample orders",
			orders: testOrders(),
			want:   41,
		},
		{
			name:   "fractional mean",
			orders: entity.Orders{{Lockers: 10}, {Lockers: 5}, {Lockers: 5}, {Lockers: 6}},
			want:   6.5,
		},
		{
			name:   "single order",
			orders: entity.Orders{{Lockers: 7}},
			want:   7,
		},
		{
			name:    "empty orders",
			orders:  entity.Orders{},
			wantErr: usecase.ErrEmptyOrders,
		},
		{
			name:    "nil orders",
			orders:  nil,
			wantErr: usecase.ErrEmptyOrders,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mean, err := Mean(test.orders)
			if test.wantErr != nil {
				require.ErrorIs(t, err, test.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.want, mean)
		})
	}
}
