package api

import (
	"context"
	"net/http"

	"github.com/poscatcafe/pos-terminal/internal/models"
)

func (c *Client) GetSettings(ctx context.Context) (*models.Settings, error) {

	var settings models.Settings

	if err := c.doJSON(ctx, http.MethodGet, "/settings", nil, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

func (c *Client) UpdateSettings(ctx context.Context, settings models.Settings) (*models.Settings, error) {

	// The shop has exactly one settings row.
	settings.ID = 1

	var saved models.Settings

	if err := c.doJSON(ctx, http.MethodPut, "/settings", settings, &saved); err != nil {
		return nil, err
	}

	return &saved, nil
}
