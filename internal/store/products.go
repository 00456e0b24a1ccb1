package store

import (
	"sort"
	"strings"
	"sync"

	"github.com/poscatcafe/pos-terminal/internal/models"
)

// CategoryAll selects every category in Filter.
const CategoryAll = "all"

// ProductStore holds the last-loaded product list. It is the stock authority
// for the cart between catalog reloads; the server remains the final word at
// checkout time.
type ProductStore struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewProductStore() *ProductStore {
	return &ProductStore{}
}

// Replace swaps the whole list, as every load does.
func (s *ProductStore) Replace(products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = make([]models.Product, len(products))
	copy(s.products, products)
}

// All returns the products sorted by name, the order the POS grid shows them in.
func (s *ProductStore) All() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})

	return out
}

func (s *ProductStore) ByID(id int64) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}

	return models.Product{}, false
}

// StockFor answers the cart's stock-ceiling question from the last snapshot.
func (s *ProductStore) StockFor(id int64) (int, bool) {

	p, ok := s.ByID(id)
	if !ok {
		return 0, false
	}

	return p.Stock, true
}

// Filter narrows by category tab first, then by case-insensitive name match,
// recomputed on every keystroke.
func (s *ProductStore) Filter(term, category string) []models.Product {

	term = strings.ToLower(strings.TrimSpace(term))

	all := s.All()

	filtered := all[:0]

	for _, p := range all {
		if category != "" && category != CategoryAll && p.NormalizedCategory() != category {
			continue
		}

		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Code), term) {
			continue
		}

		filtered = append(filtered, p)
	}

	return filtered
}

// Categories lists the distinct categories present, for the tab row.
func (s *ProductStore) Categories() []string {

	seen := map[string]bool{}
	categories := []string{CategoryAll}

	for _, p := range s.All() {
		c := p.NormalizedCategory()
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}

	return categories
}
