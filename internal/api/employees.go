package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/poscatcafe/pos-terminal/internal/models"
)

func (c *Client) ListEmployees(ctx context.Context) ([]models.Employee, error) {

	var employees []models.Employee

	if err := c.doJSON(ctx, http.MethodGet, "/employees", nil, &employees); err != nil {
		return nil, err
	}

	return employees, nil
}

func (c *Client) CreateEmployee(ctx context.Context, req models.SaveEmployeeRequest) (*models.Employee, error) {

	var employee models.Employee

	if err := c.doJSON(ctx, http.MethodPost, "/employees", req, &employee); err != nil {
		return nil, err
	}

	return &employee, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, id int64, req models.SaveEmployeeRequest) (*models.Employee, error) {

	var employee models.Employee

	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/employees/%d", id), req, &employee); err != nil {
		return nil, err
	}

	return &employee, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/employees/%d", id), nil, nil)
}
