package cart

import (
	"sync"

	apperrors "github.com/poscatcafe/pos-terminal/internal/errors"
	"github.com/poscatcafe/pos-terminal/internal/models"
)

// Catalog answers product lookups from the last-loaded snapshot. Stock read
// here can be stale; the server's summary and payment responses are the final
// authority.
type Catalog interface {
	ByID(id int64) (models.Product, bool)
}

// Line is one cart entry. Lines keep insertion order; changing a quantity
// never reorders them.
type Line struct {
	ProductID   int64
	ProductName string
	ImageURL    string
	UnitPrice   float64
	Quantity    int
}

func (l Line) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Cart is the in-memory ordered list of lines, keyed by product id.
type Cart struct {
	catalog Catalog

	mu    sync.Mutex
	lines []Line
}

func New(catalog Catalog) *Cart {
	return &Cart{catalog: catalog}
}

// Add puts one unit of the product in the cart. Unknown products are a no-op;
// sold-out products and lines already at the stock ceiling are rejected.
func (c *Cart) Add(productID int64) error {

	product, ok := c.catalog.ByID(productID)
	if !ok {
		return nil
	}

	if product.Stock <= 0 {
		return apperrors.StockError("Out of stock")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			if c.lines[i].Quantity >= product.Stock {
				return apperrors.StockError("Not enough stock")
			}

			c.lines[i].Quantity++

			return nil
		}
	}

	c.lines = append(c.lines, Line{
		ProductID:   product.ID,
		ProductName: product.Name,
		ImageURL:    product.ImageURL,
		UnitPrice:   product.Price,
		Quantity:    1,
	})

	return nil
}

// ChangeQuantity adjusts a line by delta. Dropping to zero or below removes
// the line; climbing past the stock ceiling is rejected and leaves the
// quantity unchanged.
func (c *Cart) ChangeQuantity(productID int64, delta int) error {

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			idx = i

			break
		}
	}

	if idx == -1 {
		return nil
	}

	newQty := c.lines[idx].Quantity + delta

	if newQty <= 0 {
		c.lines = append(c.lines[:idx], c.lines[idx+1:]...)

		return nil
	}

	ceiling := 0
	if product, ok := c.catalog.ByID(productID); ok {
		ceiling = product.Stock
	}

	if newQty > ceiling {
		return apperrors.StockError("Not enough stock")
	}

	c.lines[idx].Quantity = newQty

	return nil
}

func (c *Cart) Remove(productID int64) {

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)

			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
}

func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.lines) == 0
}

func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)

	return out
}

// Quantity reports the current quantity of a product, zero when absent.
func (c *Cart) Quantity(productID int64) int {

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, l := range c.lines {
		if l.ProductID == productID {
			return l.Quantity
		}
	}

	return 0
}

// Items maps the cart into the wire shape the summary and payment endpoints
// expect.
func (c *Cart) Items() []models.CartItem {

	lines := c.Lines()

	items := make([]models.CartItem, 0, len(lines))

	for _, l := range lines {
		items = append(items, models.CartItem{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			ImageURL:    l.ImageURL,
			Price:       l.UnitPrice,
			Quantity:    l.Quantity,
			Subtotal:    l.Subtotal(),
		})
	}

	return items
}

// FallbackTotal is the locally derived total, shown only until the first
// server summary arrives.
func (c *Cart) FallbackTotal() float64 {

	var total float64

	for _, l := range c.Lines() {
		total += l.Subtotal()
	}

	return total
}
