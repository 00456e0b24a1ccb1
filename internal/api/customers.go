package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/poscatcafe/pos-terminal/internal/models"
)

func (c *Client) ListCustomers(ctx context.Context) ([]models.Customer, error) {

	var customers []models.Customer

	if err := c.doJSON(ctx, http.MethodGet, "/customers", nil, &customers); err != nil {
		return nil, err
	}

	return customers, nil
}

func (c *Client) CreateCustomer(ctx context.Context, req models.SaveCustomerRequest) (*models.Customer, error) {

	var customer models.Customer

	if err := c.doJSON(ctx, http.MethodPost, "/customers", req, &customer); err != nil {
		return nil, err
	}

	return &customer, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, id int64, req models.SaveCustomerRequest) (*models.Customer, error) {

	var customer models.Customer

	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/customers/%d", id), req, &customer); err != nil {
		return nil, err
	}

	return &customer, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/customers/%d", id), nil, nil)
}
