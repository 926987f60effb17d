package orders

//go:generate mockgen -destination=mock/orders_mock.go -package=mock . OrderSource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	httputils "github.com/avGenie/go-locker-balancer/internal/app/controller/http/utils"
	"github.com/avGenie/go-locker-balancer/internal/app/converter"
	"github.com/avGenie/go-locker-balancer/internal/app/entity"
	"github.com/avGenie/go-locker-balancer/internal/app/model"
	err_storage "github.com/avGenie/go-locker-balancer/internal/app/storage/api/errors"
	usecase "github.com/avGenie/go-locker-balancer/internal/app/usecase/errors"
	"github.com/avGenie/go-locker-balancer/internal/app/usecase/order"
	"go.uber.org/zap"
)

const (
	ErrBalanceFailed  = "failed to balance orders"
	ErrInvalidRequest = "balance request is invalid"
)

var balancingErrors = []error{
	usecase.ErrOrdersUnavailable,
	usecase.ErrEmptyOrders,
	usecase.ErrInvalidOrder,
	usecase.ErrNoSuccessor,
	usecase.ErrNegativeTransfer,
	usecase.ErrPlacesMismatch,
	usecase.ErrTransferIncomplete,
}

type OrderSource interface {
	GetOrders(ctx context.Context) (entity.Orders, error)
}

type Order struct {
	source OrderSource
}

func New(source OrderSource) Order {
	return Order{
		source: source,
	}
}

// GetBalancedOrders balances the orders of the configured source.
func (p *Order) GetBalancedOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		report, err := order.BalanceOrders(ctx, p.source)
		if err != nil {
			if errors.Is(err, err_storage.ErrOrdersNotFound) {
				zap.L().Info("orders for balancing not found")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			p.writeBalanceError(w, err)
			return
		}

		p.sendReport(report, w)
	}
}

// BalanceOrders balances the orders given in the request body.
func (p *Order) BalanceOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request model.BalanceRequest

		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			zap.L().Error("error while decoding balance request", zap.Error(err))
			http.Error(w, ErrInvalidRequest, http.StatusBadRequest)
			return
		}

		report, err := order.BalanceInput(converter.ConvertRequestToOrders(request))
		if err != nil {
			p.writeBalanceError(w, err)
			return
		}

		p.sendReport(report, w)
	}
}

func (p *Order) writeBalanceError(w http.ResponseWriter, err error) {
	for _, balancingErr := range balancingErrors {
		if errors.Is(err, balancingErr) {
			zap.L().Info("orders couldn't be balanced", zap.Error(err))
			http.Error(w, fmt.Sprintf("%s: %s", ErrBalanceFailed, err), http.StatusUnprocessableEntity)
			return
		}
	}

	zap.L().Error("error while balancing orders", zap.Error(err))
	w.WriteHeader(http.StatusInternalServerError)
}

func (p *Order) sendReport(report entity.BalanceReport, w http.ResponseWriter) {
	out, err := converter.ConvertReportToOutput(report)
	if err != nil {
		zap.L().Error("error while converting balanced orders to output model", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	httputils.WriteJSON(w, http.StatusOK, out)
}
