package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/poscatcafe/pos-terminal/internal/models"
)

// SalesReport fetches the order report for the given ISO date range. Blank
// bounds let the server fall back to its defaults (last year through today).
func (c *Client) SalesReport(ctx context.Context, start, end string) (*models.SalesReport, error) {

	params := url.Values{}

	if start != "" {
		params.Set("start", start)
	}

	if end != "" {
		params.Set("end", end)
	}

	path := "/orders/report"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var report models.SalesReport

	if err := c.doJSON(ctx, http.MethodGet, path, nil, &report); err != nil {
		return nil, err
	}

	report.TotalOrders = len(report.Orders)

	return &report, nil
}
