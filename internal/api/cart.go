package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/poscatcafe/pos-terminal/internal/models"
)

// CalculateCart asks the server to price the given cart. The customer and
// coupon flag travel as query parameters, the lines as the JSON body.
func (c *Client) CalculateCart(ctx context.Context, items []models.CartItem, customerID *int64, useCoupon bool) (*models.CartSummary, error) {

	params := url.Values{}

	if customerID != nil {
		params.Set("customerId", strconv.FormatInt(*customerID, 10))
	}

	if useCoupon {
		params.Set("useCoupon", "true")
	}

	path := "/cart/calculate"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var summary models.CartSummary

	if err := c.doJSON(ctx, http.MethodPost, path, items, &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}
