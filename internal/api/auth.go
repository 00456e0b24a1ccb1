package api

import (
	"context"
	"net/http"

	"github.com/poscatcafe/pos-terminal/internal/models"
)

func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {

	var resp models.LoginResponse

	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// Validate asks the server whether the stored token is still good. A network
// failure is reported as an error so the caller can distinguish "server said
// no" from "could not ask".
func (c *Client) Validate(ctx context.Context) (bool, error) {

	var resp models.ValidateResponse

	if err := c.doJSON(ctx, http.MethodGet, "/auth/validate", nil, &resp); err != nil {
		return false, err
	}

	return resp.Valid, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/logout", nil, nil)
}
