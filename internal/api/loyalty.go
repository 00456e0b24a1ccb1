package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/poscatcafe/pos-terminal/internal/models"
)

func (c *Client) SearchLoyalty(ctx context.Context, query string) ([]models.LoyaltySummary, error) {

	var results []models.LoyaltySummary

	path := "/loyalty/search?query=" + url.QueryEscape(query)

	if err := c.doJSON(ctx, http.MethodGet, path, nil, &results); err != nil {
		return nil, err
	}

	return results, nil
}

func (c *Client) LoyaltyDetail(ctx context.Context, customerID int64) (*models.LoyaltyDetail, error) {

	var detail models.LoyaltyDetail

	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/loyalty/detail/%d", customerID), nil, &detail); err != nil {
		return nil, err
	}

	return &detail, nil
}
