package models

import "strings"

// Product categories known to the POS. Anything else renders under CategoryOthers.
const (
	CategoryDrinks   = "drinks"
	CategoryDesserts = "desserts"
	CategorySnacks   = "snacks"
	CategoryOthers   = "others"
)

type Product struct {
	ID       int64   `json:"id"`
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category"`
	ImageURL string  `json:"imageUrl,omitempty"`
}

// NormalizedCategory lowercases the stored category and maps unknown or blank
// values to CategoryOthers.
func (p Product) NormalizedCategory() string {
	switch c := strings.ToLower(p.Category); c {
	case CategoryDrinks, CategoryDesserts, CategorySnacks:
		return c
	default:
		return CategoryOthers
	}
}

type SaveProductRequest struct {
	Code     string  `json:"code" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Stock    int     `json:"stock" validate:"gte=0"`
	Category string  `json:"category" validate:"required,oneof=drinks desserts snacks others"`
	ImageURL string  `json:"imageUrl,omitempty"`
}

// UploadResult is the response of the product image upload endpoint.
type UploadResult struct {
	URL string `json:"url"`
}
