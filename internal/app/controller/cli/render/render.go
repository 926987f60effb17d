package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v2"

	"github.com/avGenie/go-locker-balancer/internal/app/config"
	"github.com/avGenie/go-locker-balancer/internal/app/model"
)

const failureMessage = "Failed to balance orders"

// Render writes balanced orders to w in the given output format.
func Render(w io.Writer, format string, out model.BalancedOrdersResponse) error {
	switch format {
	case config.FormatText:
		return renderText(w, out)
	case config.FormatTable:
		renderTable(w, out)
		return nil
	case config.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	case config.FormatYAML:
		encoder := yaml.NewEncoder(w)
		if err := encoder.Encode(out); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// RenderFailure tells the reader that no balancing result is available.
func RenderFailure(w io.Writer) error {
	_, err := fmt.Fprintln(w, failureMessage)
	return err
}

func renderText(w io.Writer, out model.BalancedOrdersResponse) error {
	var b strings.Builder

	b.WriteString("Results\n")
	for _, order := range out.Orders {
		fmt.Fprintf(&b, "\nDate: %d\n", order.Date)
		fmt.Fprintf(&b, "New number of lockers: %d\n", order.Lockers)
		for _, place := range order.Places {
			fmt.Fprintf(&b, "New quantity for place %s: %d\n", place.Place, place.Quantity)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderTable(w io.Writer, out model.BalancedOrdersResponse) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Date", "Day", "Lockers", "Places"})

	for _, order := range out.Orders {
		places := make([]string, 0, len(order.Places))
		for _, place := range order.Places {
			places = append(places, fmt.Sprintf("%s=%d", place.Place, place.Quantity))
		}

		table.Append([]string{
			strconv.Itoa(order.Date),
			order.Day,
			strconv.Itoa(order.Lockers),
			strings.Join(places, " "),
		})
	}

	table.Render()
}
