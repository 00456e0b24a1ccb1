package checkout_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/poscatcafe/pos-terminal/internal/api/mocks"
	"github.com/poscatcafe/pos-terminal/internal/cart"
	"github.com/poscatcafe/pos-terminal/internal/checkout"
	appErrors "github.com/poscatcafe/pos-terminal/internal/errors"
	"github.com/poscatcafe/pos-terminal/internal/models"
)

type fakeCatalog struct {
	products map[int64]models.Product
}

func (f *fakeCatalog) ByID(id int64) (models.Product, bool) {
	p, ok := f.products[id]

	return p, ok
}

type machineFixture struct {
	cart       *cart.Cart
	cartAPI    *mocks.CartAPI
	paymentAPI *mocks.PaymentAPI
	loyaltyAPI *mocks.LoyaltyAPI
	machine    *checkout.Machine
	reloads    int
	notices    []string
}

func setupMachine(t *testing.T) *machineFixture {
	t.Helper()

	catalog := &fakeCatalog{products: map[int64]models.Product{
		1: {ID: 1, Name: "Latte", Price: 50.00, Stock: 10, Category: models.CategoryDrinks},
		2: {ID: 2, Name: "Cookie", Price: 25.00, Stock: 5, Category: models.CategorySnacks},
	}}

	f := &machineFixture{
		cart:       cart.New(catalog),
		cartAPI:    new(mocks.CartAPI),
		paymentAPI: new(mocks.PaymentAPI),
		loyaltyAPI: new(mocks.LoyaltyAPI),
	}

	f.machine = checkout.NewMachine(f.cart, f.cartAPI, f.paymentAPI, f.loyaltyAPI,
		func(ctx context.Context) error {
			f.reloads++

			return nil
		},
		checkout.Listeners{
			OnNotice: func(message string) {
				f.notices = append(f.notices, message)
			},
		})

	return f
}

func okSummary(total float64) *models.CartSummary {
	return &models.CartSummary{Subtotal: total, Total: total, StockAvailable: true}
}

func TestBeginReview(t *testing.T) {
	t.Run("Failure - Empty Cart Is Rejected", func(t *testing.T) {
		// Arrange
		f := setupMachine(t)

		// Act
		err := f.machine.BeginReview(context.Background())

		// Assert
		assert.Error(t, err)
		assert.Equal(t, checkout.StateIdle, f.machine.State())
		f.cartAPI.AssertNotCalled(t, "CalculateCart", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success - Summary Fetched And Held", func(t *testing.T) {
		// Arrange
		f := setupMachine(t)
		assert.NoError(t, f.cart.Add(1))
		assert.NoError(t, f.cart.Add(1))

		expectedItems := []models.CartItem{{ProductID: 1, ProductName: "Latte", Price: 50, Quantity: 2, Subtotal: 100}}
		f.cartAPI.On("CalculateCart", mock.Anything, expectedItems, (*int64)(nil), false).
			Return(okSummary(100), nil).Once()

		// Act
		err := f.machine.BeginReview(context.Background())

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, checkout.StateReviewing, f.machine.State())

		summary, held := f.machine.Summary()
		assert.True(t, held)
		assert.Equal(t, 100.0, summary.Total)

		f.cartAPI.AssertExpectations(t)
	})

	t.Run("Failure - Insufficient Stock Stays In Reviewing", func(t *testing.T) {
		// Arrange
		f := setupMachine(t)
		assert.NoError(t, f.cart.Add(1))

		f.cartAPI.On("CalculateCart", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(&models.CartSummary{StockAvailable: false, ErrorMessage: "Latte is out of stock"}, nil).Once()

		// Act
		err := f.machine.BeginReview(context.Background())

		// Assert
		assert.Error(t, err)
		assert.Equal(t, checkout.StateReviewing, f.machine.State())
		assert.Contains(t, f.notices, "Latte is out of stock")

		// Cannot advance without a usable summary.
		assert.Error(t, f.machine.Proceed())
	})

	t.Run("Failure - Network Error Returns To Idle", func(t *testing.T) {
		// Arrange
		f := setupMachine(t)
		assert.NoError(t, f.cart.Add(1))

		f.cartAPI.On("CalculateCart", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, appErrors.NetworkError("down")).Once()

		// Act
		err := f.machine.BeginReview(context.Background())

		// Assert
		assert.Error(t, err)
		assert.Equal(t, checkout.StateIdle, f.machine.State())
	})
}

func advanceToPayment(t *testing.T, f *machineFixture, method string, total float64) {
	t.Helper()

	f.cartAPI.On("CalculateCart", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(okSummary(total), nil)

	assert.NoError(t, f.machine.BeginReview(context.Background()))
	assert.NoError(t, f.machine.Proceed())
	assert.NoError(t, f.machine.SelectMethod(method))
}

func TestSubmitCash(t *testing.T) {
	t.Run("Success - Exact Amount Settles With Zero Change", func(t *testing.T) {
		// Arrange
		f := setupMachine(t)
		assert.NoError(t, f.cart.Add(1))
		assert.NoError(t, f.cart.Add(1))

		advanceToPayment(t, f, models.PaymentMethodCash, 100)

		f.paymentAPI.On("ProcessPayment", mock.Anything, mock.MatchedBy(func(req models.PaymentRequest) bool {
			return req.PaymentMethod == models.PaymentMethodCash &&
				req.CashReceived != nil && *req.CashReceived == 100 &&
				!req.UseCoupon && req.CustomerID == nil && len(req.Items) == 1
		})).Return(&models.PaymentResponse{Success: true, ReceiptHTML: "<p>Receipt</p>"}, nil).Once()

		// Act
		result, err := f.machine.SubmitCash(context.Background(), 100)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 0.0, result.Change)
		assert.Equal(t, "<p>Receipt</p>", result.ReceiptHTML)
		assert.Equal(t, checkout.StateSettled, f.machine.State())
		assert.True(t, f.cart.IsEmpty())
		assert.Equal(t, 1, f.reloads)
		assert.Nil(t, f.machine.Customer())

		f.paymentAPI.AssertExpectations(t)
	})

	t.Run("Failure - Received Below Total Stays Awaiting", func(t *testing.T) {
		// Arrange
		f := setupMachine(t)
		assert.NoError(t, f.cart.Add(1))

		advanceToPayment(t, f, models.PaymentMethodCash, 50)

		// Act
		result, err := f.machine.SubmitCash(context.Background(), 49.99)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, checkout.StateAwaitingPayment, f.machine.State())
		f.paymentAPI.AssertNotCalled(t, "ProcessPayment", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Declined Payment Returns To Awaiting", func(t *testing.T) {
		// Arrange
		f := setupMachine(t)
		assert.NoError(t, f.cart.Add(1))

		advanceToPayment(t, f, models.PaymentMethodCash, 50)

		f.paymentAPI.On("ProcessPayment", mock.Anything, mock.Anything).
			Return(&models.PaymentResponse{Success: false, ErrorMessage: "Card declined"}, nil).Once()

		// Act
		result, err := f.machine.SubmitCash(context.Background(), 100)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, checkout.StateAwaitingPayment, f.machine.State())
		assert.Contains(t, f.notices, "Card declined")
		assert.False(t, f.cart.IsEmpty())
	})

	t.Run("Success - Receipt Markup Is Sanitized", func(t *testing.T) {
		// Arrange
		f := setupMachine(t)
		assert.NoError(t, f.cart.Add(1))

		advanceToPayment(t, f, models.PaymentMethodCash, 50)

		f.paymentAPI.On("ProcessPayment", mock.Anything, mock.Anything).
			Return(&models.PaymentResponse{Success: true, ReceiptHTML: "<p>ok</p><script>alert(1)</script>"}, nil).Once()

		// Act
		result, err := f.machine.SubmitCash(context.Background(), 50)

		// Assert
		assert.NoError(t, err)
		assert.Contains(t, result.ReceiptHTML, "<p>ok</p>")
		assert.NotContains(t, result.ReceiptHTML, "<script>")
	})
}

func TestSubmitQR(t *testing.T) {
	t.Run("Success - Manual Submit Settles Without Cash", func(t *testing.T) {
		// Arrange
		f := setupMachine(t)
		assert.NoError(t, f.cart.Add(2))

		advanceToPayment(t, f, models.PaymentMethodQR, 25)

		f.paymentAPI.On("ProcessPayment", mock.Anything, mock.MatchedBy(func(req models.PaymentRequest) bool {
			return req.PaymentMethod == models.PaymentMethodQR && req.CashReceived == nil
		})).Return(&models.PaymentResponse{Success: true}, nil).Once()

		// Act
		result, err := f.machine.SubmitQR(context.Background())

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 0.0, result.Change)
		assert.Equal(t, checkout.StateSettled, f.machine.State())
	})
}

func TestCancel(t *testing.T) {
	t.Run("Success - Cancel Keeps Cart And Discards Customer", func(t *testing.T) {
		// Arrange
		f := setupMachine(t)
		assert.NoError(t, f.cart.Add(1))

		f.loyaltyAPI.On("LoyaltyDetail", mock.Anything, int64(7)).
			Return(&models.LoyaltyDetail{CustomerID: 7, TotalPoints: 250}, nil).Once()

		advanceToPayment(t, f, models.PaymentMethodCash, 50)

		f.machine.SelectCustomer(context.Background(), models.LoyaltySummary{CustomerID: 7, CustomerName: "Mali", CurrentPoints: 250})
		assert.NotNil(t, f.machine.Customer())

		// Act
		f.machine.Cancel()

		// Assert
		assert.Equal(t, checkout.StateIdle, f.machine.State())
		assert.Nil(t, f.machine.Customer())
		assert.False(t, f.machine.UseCoupon())
		assert.False(t, f.cart.IsEmpty())

		_, held := f.machine.Summary()
		assert.False(t, held)
	})
}

func TestCoupon(t *testing.T) {
	t.Run("Success - Toggle Twice Restores Discount State", func(t *testing.T) {
		// Arrange
		f := setupMachine(t)
		assert.NoError(t, f.cart.Add(1))

		f.loyaltyAPI.On("LoyaltyDetail", mock.Anything, int64(7)).
			Return(&models.LoyaltyDetail{CustomerID: 7, TotalPoints: 250}, nil).Once()

		f.cartAPI.On("CalculateCart", mock.Anything, mock.Anything, mock.Anything, false).
			Return(okSummary(50), nil)
		f.cartAPI.On("CalculateCart", mock.Anything, mock.Anything, mock.Anything, true).
			Return(&models.CartSummary{Subtotal: 50, Discount: 10, Total: 40, StockAvailable: true}, nil)

		f.machine.SelectCustomer(context.Background(), models.LoyaltySummary{CustomerID: 7, CustomerName: "Mali", CurrentPoints: 250})
		assert.True(t, f.machine.CouponAvailable())

		// Act + Assert - first toggle applies the discount
		assert.NoError(t, f.machine.ToggleCoupon(context.Background()))

		summary, _ := f.machine.Summary()
		assert.Equal(t, 10.0, summary.Discount)
		assert.Equal(t, 40.0, summary.Total)

		// Second toggle restores the original state.
		assert.NoError(t, f.machine.ToggleCoupon(context.Background()))

		summary, _ = f.machine.Summary()
		assert.Equal(t, 0.0, summary.Discount)
		assert.Equal(t, 50.0, summary.Total)
	})

	t.Run("Failure - No Customer Means No Coupon", func(t *testing.T) {
		// Arrange
		f := setupMachine(t)
		assert.NoError(t, f.cart.Add(1))

		// Act
		err := f.machine.ToggleCoupon(context.Background())

		// Assert
		assert.Error(t, err)
		assert.False(t, f.machine.UseCoupon())
	})

	t.Run("Failure - Under A Hundred Points Means No Coupon", func(t *testing.T) {
		// Arrange
		f := setupMachine(t)
		assert.NoError(t, f.cart.Add(1))

		f.loyaltyAPI.On("LoyaltyDetail", mock.Anything, int64(8)).
			Return(&models.LoyaltyDetail{CustomerID: 8, TotalPoints: 99}, nil).Once()
		f.cartAPI.On("CalculateCart", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(okSummary(50), nil)

		f.machine.SelectCustomer(context.Background(), models.LoyaltySummary{CustomerID: 8, CustomerName: "Nok", CurrentPoints: 99})

		// Act + Assert
		assert.False(t, f.machine.CouponAvailable())
		assert.Error(t, f.machine.ToggleCoupon(context.Background()))
	})
}

func TestSelectCustomer(t *testing.T) {
	t.Run("Success - Failed Detail Keeps Customer Usable", func(t *testing.T) {
		// Arrange
		f := setupMachine(t)
		assert.NoError(t, f.cart.Add(1))

		f.loyaltyAPI.On("LoyaltyDetail", mock.Anything, int64(9)).
			Return(nil, appErrors.NetworkError("down")).Once()
		f.cartAPI.On("CalculateCart", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(okSummary(50), nil)

		// Act
		f.machine.SelectCustomer(context.Background(), models.LoyaltySummary{CustomerID: 9, CustomerName: "Ploy", CurrentPoints: 120})

		// Assert
		customer := f.machine.Customer()
		assert.NotNil(t, customer)
		assert.Equal(t, int64(9), customer.ID)
		assert.Nil(t, f.machine.LoyaltyDetail())
		assert.False(t, f.machine.CouponAvailable())
	})
}

func TestRefreshSummary(t *testing.T) {
	t.Run("Success - Empty Cart Summarizes Locally", func(t *testing.T) {
		// Arrange
		f := setupMachine(t)

		// Act
		summary, err := f.machine.RefreshSummary(context.Background())

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, models.CartSummary{StockAvailable: true}, summary)
		f.cartAPI.AssertNotCalled(t, "CalculateCart", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success - Stale Response Is Discarded", func(t *testing.T) {
		// Arrange
		f := setupMachine(t)
		assert.NoError(t, f.cart.Add(1))

		firstIssued := make(chan struct{})
		release := make(chan struct{})

		// The first request blocks until released; by then a newer request
		// has been issued and answered.
		f.cartAPI.On("CalculateCart", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				close(firstIssued)
				<-release
			}).
			Return(okSummary(100), nil).Once()
		f.cartAPI.On("CalculateCart", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(okSummary(200), nil).Once()

		done := make(chan struct{})

		go func() {
			_, _ = f.machine.RefreshSummary(context.Background())
			close(done)
		}()

		<-firstIssued

		// Act - the newer request wins
		_, err := f.machine.RefreshSummary(context.Background())
		assert.NoError(t, err)

		close(release)
		<-done

		// Assert - the held summary is the newer one
		summary, held := f.machine.Summary()
		assert.True(t, held)
		assert.Equal(t, 200.0, summary.Total)
	})
}
