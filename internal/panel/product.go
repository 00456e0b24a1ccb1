package panel

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/poscatcafe/pos-terminal/internal/api"
	apperrors "github.com/poscatcafe/pos-terminal/internal/errors"
	"github.com/poscatcafe/pos-terminal/internal/models"
	"github.com/poscatcafe/pos-terminal/internal/store"
)

// MaxImageSize is the client-side cap on product image uploads.
const MaxImageSize = 5 << 20

// ImageFile is a locally picked image pending upload.
type ImageFile struct {
	Name    string
	Size    int64
	Content []byte
}

// ProductForm carries the editor fields. A zero ID means create.
type ProductForm struct {
	ID        int64
	Code      string
	Name      string
	Price     float64
	Stock     int
	Category  string
	ImageURL  string
	ImageFile *ImageFile
}

// ProductPanel drives the product management screen: load, filter, save with
// optional image upload, delete.
type ProductPanel struct {
	products api.ProductsAPI
	uploads  api.UploadsAPI
	store    *store.ProductStore
	validate *validator.Validate
}

func NewProductPanel(products api.ProductsAPI, uploads api.UploadsAPI, s *store.ProductStore) *ProductPanel {
	return &ProductPanel{
		products: products,
		uploads:  uploads,
		store:    s,
		validate: validator.New(),
	}
}

// Load replaces the in-memory list with the server's.
func (p *ProductPanel) Load(ctx context.Context) error {

	products, err := p.products.ListProducts(ctx)
	if err != nil {
		return err
	}

	p.store.Replace(products)

	return nil
}

// Filter matches the term against name, code and category,
// case-insensitively.
func (p *ProductPanel) Filter(term string) []models.Product {

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return p.store.All()
	}

	var filtered []models.Product

	for _, product := range p.store.All() {
		if strings.Contains(strings.ToLower(product.Name), term) ||
			strings.Contains(strings.ToLower(product.Code), term) ||
			strings.Contains(product.NormalizedCategory(), term) {
			filtered = append(filtered, product)
		}
	}

	return filtered
}

// Save creates or updates a product. A picked image file is uploaded first
// and its returned URL substituted into the saved record; files over the size
// cap are rejected before any bytes leave the terminal.
func (p *ProductPanel) Save(ctx context.Context, form ProductForm) error {

	imageURL := strings.TrimSpace(form.ImageURL)

	if form.ImageFile != nil {

		if form.ImageFile.Size > MaxImageSize {
			return apperrors.ValidationError("Image file exceeds 5 MB")
		}

		result, err := p.uploads.UploadProductImage(ctx, form.ImageFile.Name, form.ImageFile.Size, form.ImageFile.Content)
		if err != nil {
			slog.Error("Image upload failed", slog.String("error", err.Error()))

			return err
		}

		imageURL = result.URL
	}

	req := models.SaveProductRequest{
		Code:     strings.TrimSpace(form.Code),
		Name:     strings.TrimSpace(form.Name),
		Price:    form.Price,
		Stock:    form.Stock,
		Category: form.Category,
		ImageURL: imageURL,
	}

	if err := p.validate.Struct(req); err != nil {
		return apperrors.ValidationError("Product form is incomplete").WithError(err)
	}

	var err error

	if form.ID == 0 {
		_, err = p.products.CreateProduct(ctx, req)
	} else {
		_, err = p.products.UpdateProduct(ctx, form.ID, req)
	}

	if err != nil {
		return err
	}

	return p.Load(ctx)
}

// Delete removes a product by id and reloads the list. Confirmation is the
// caller's job.
func (p *ProductPanel) Delete(ctx context.Context, id int64) error {

	if err := p.products.DeleteProduct(ctx, id); err != nil {
		return err
	}

	return p.Load(ctx)
}
