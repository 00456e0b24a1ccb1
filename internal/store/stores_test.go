package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/poscatcafe/pos-terminal/internal/models"
	"github.com/poscatcafe/pos-terminal/internal/store"
)

func seedProducts() *store.ProductStore {
	s := store.NewProductStore()
	s.Replace([]models.Product{
		{ID: 3, Code: "S001", Name: "Cookie", Price: 25, Stock: 5, Category: "Snacks"},
		{ID: 1, Code: "D001", Name: "Latte", Price: 50, Stock: 3, Category: "drinks"},
		{ID: 2, Code: "D002", Name: "Americano", Price: 45, Stock: 0, Category: "Drinks"},
	})

	return s
}

func TestProductStore(t *testing.T) {
	t.Run("Success - All Sorts By Name", func(t *testing.T) {
		// Arrange
		s := seedProducts()

		// Act
		all := s.All()

		// Assert
		assert.Len(t, all, 3)
		assert.Equal(t, "Americano", all[0].Name)
		assert.Equal(t, "Cookie", all[1].Name)
		assert.Equal(t, "Latte", all[2].Name)
	})

	t.Run("Success - Category Filter Is Case Insensitive", func(t *testing.T) {
		// Arrange
		s := seedProducts()

		// Act
		drinks := s.Filter("", "drinks")

		// Assert
		assert.Len(t, drinks, 2)

		for _, p := range drinks {
			assert.Equal(t, "drinks", p.NormalizedCategory())
		}
	})

	t.Run("Success - Term Matches Name And Code", func(t *testing.T) {
		// Arrange
		s := seedProducts()

		// Act + Assert
		assert.Len(t, s.Filter("lat", store.CategoryAll), 1)
		assert.Len(t, s.Filter("d00", store.CategoryAll), 2)
		assert.Empty(t, s.Filter("tea", store.CategoryAll))
	})

	t.Run("Success - Stock Ceiling Comes From The Snapshot", func(t *testing.T) {
		// Arrange
		s := seedProducts()

		// Act + Assert
		stock, ok := s.StockFor(1)
		assert.True(t, ok)
		assert.Equal(t, 3, stock)

		_, ok = s.StockFor(99)
		assert.False(t, ok)
	})

	t.Run("Success - Categories Lead With All", func(t *testing.T) {
		// Arrange
		s := seedProducts()

		// Act
		categories := s.Categories()

		// Assert
		assert.Equal(t, store.CategoryAll, categories[0])
		assert.Contains(t, categories, "drinks")
		assert.Contains(t, categories, "snacks")
	})

	t.Run("Success - Replace Swaps The Snapshot", func(t *testing.T) {
		// Arrange
		s := seedProducts()

		// Act
		s.Replace([]models.Product{{ID: 9, Name: "Matcha", Stock: 1}})

		// Assert
		assert.Len(t, s.All(), 1)

		_, ok := s.ByID(1)
		assert.False(t, ok)
	})
}

func TestCustomerStore(t *testing.T) {
	t.Run("Success - Filter Matches The Display Code", func(t *testing.T) {
		// Arrange
		s := store.NewCustomerStore()
		s.Replace([]models.Customer{
			{ID: 7, Name: "Mali", Phone: "0812345678", Email: "mali@example.com"},
			{ID: 12, Name: "Somsak", Phone: "0898765432"},
		})

		// Act + Assert
		assert.Len(t, s.Filter("c007"), 1)
		assert.Len(t, s.Filter("0898"), 1)
		assert.Len(t, s.Filter("example.com"), 1)
		assert.Len(t, s.Filter(""), 2)
	})
}

func TestEmployeeStore(t *testing.T) {
	t.Run("Success - Filter Matches Username And Name", func(t *testing.T) {
		// Arrange
		s := store.NewEmployeeStore()
		s.Replace([]models.Employee{
			{ID: 1, Username: "somchai", Name: "Somchai J.", Role: models.RoleAdmin},
			{ID: 2, Username: "nok", Name: "Nok P.", Role: models.RoleStaff},
		})

		// Act + Assert
		assert.Len(t, s.Filter("som"), 1)
		assert.Len(t, s.Filter("NOK"), 1)
		assert.Len(t, s.Filter(""), 2)
	})
}
