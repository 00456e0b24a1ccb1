package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	apperrors "github.com/poscatcafe/pos-terminal/internal/errors"
	"github.com/poscatcafe/pos-terminal/internal/models"
)

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {

	var products []models.Product

	if err := c.doJSON(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (c *Client) CreateProduct(ctx context.Context, req models.SaveProductRequest) (*models.Product, error) {

	var product models.Product

	if err := c.doJSON(ctx, http.MethodPost, "/products", req, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, req models.SaveProductRequest) (*models.Product, error) {

	var product models.Product

	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), req, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}

// UploadProductImage posts the image as multipart form data and returns the
// URL the server stored it under. Size limits are enforced by the caller
// before the bytes ever get here.
func (c *Client) UploadProductImage(ctx context.Context, filename string, size int64, content []byte) (*models.UploadResult, error) {

	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, apperrors.BadRequestError("Failed to build upload request").WithError(err)
	}

	if _, err := part.Write(content); err != nil {
		return nil, apperrors.BadRequestError("Failed to build upload request").WithError(err)
	}

	if err := writer.Close(); err != nil {
		return nil, apperrors.BadRequestError("Failed to build upload request").WithError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/uploads/products", &buf)
	if err != nil {
		return nil, apperrors.BadRequestError("Failed to build upload request").WithError(err)
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())

	var result models.UploadResult

	if err := c.send(req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
