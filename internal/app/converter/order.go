package converter

import (
	"fmt"
	"strconv"

	"github.com/golang-module/carbon/v2"

	"github.com/avGenie/go-locker-balancer/internal/app/entity"
	"github.com/avGenie/go-locker-balancer/internal/app/model"
)

const orderDateLayout = "Ymd"

func ConvertRequestToOrders(request model.BalanceRequest) entity.Orders {
	if request.Orders == nil {
		return nil
	}

	orders := make(entity.Orders, 0, len(request.Orders))
	for _, order := range request.Orders {
		orders = append(orders, entity.Order{
			Date:    entity.OrderDate(order.Date),
			Lockers: order.Lockers,
			Places:  entity.Places(order.Places).Clone(),
		})
	}

	return orders
}

func ConvertReportToOutput(report entity.BalanceReport) (model.BalancedOrdersResponse, error) {
	outOrders := make([]model.BalancedOrderResponse, 0, len(report.Orders))

	for _, order := range report.Orders {
		day, err := ConvertOrderDateToDay(order.Date)
		if err != nil {
			return model.BalancedOrdersResponse{}, err
		}

		places := make([]model.PlaceResponse, 0, len(order.Places))
		for _, key := range order.Places.Keys() {
			places = append(places, model.PlaceResponse{
				Place:    key,
				Quantity: order.Places[key],
			})
		}

		outOrders = append(outOrders, model.BalancedOrderResponse{
			Date:    int(order.Date),
			Day:     day,
			Lockers: order.Lockers,
			Places:  places,
		})
	}

	return model.BalancedOrdersResponse{
		RunID:  report.RunID.String(),
		Mean:   report.Mean,
		Orders: outOrders,
	}, nil
}

// ConvertOrderDateToDay renders a YYYYMMDD order date as YYYY-MM-DD.
func ConvertOrderDateToDay(date entity.OrderDate) (string, error) {
	value := strconv.Itoa(int(date))
	if len(value) != 8 {
		return "", fmt.Errorf("order date %s is not in YYYYMMDD format", date)
	}

	day := carbon.ParseByFormat(value, orderDateLayout)
	if day.Error != nil {
		return "", fmt.Errorf("error while parsing order date %s: %w", date, day.Error)
	}

	return day.ToDateString(), nil
}
