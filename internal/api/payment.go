package api

import (
	"context"
	"net/http"

	"github.com/poscatcafe/pos-terminal/internal/models"
)

func (c *Client) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentResponse, error) {

	var resp models.PaymentResponse

	if err := c.doJSON(ctx, http.MethodPost, "/payment/process", req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
