package checkout

import (
	"context"
	"log/slog"

	apperrors "github.com/poscatcafe/pos-terminal/internal/errors"
	"github.com/poscatcafe/pos-terminal/internal/models"
)

// RefreshSummary recomputes the server summary for the current cart, customer
// and coupon flag. An empty cart summarizes to zeros locally without a round
// trip. Responses that were superseded by a newer request are discarded so a
// slow earlier response can never overwrite a newer result.
func (m *Machine) RefreshSummary(ctx context.Context) (models.CartSummary, error) {

	seq := m.summarySeq.Add(1)

	if m.cart.IsEmpty() {

		summary := models.EmptyCartSummary()

		m.mu.Lock()
		m.summary = &summary
		m.mu.Unlock()

		if m.listeners.OnSummary != nil {
			m.listeners.OnSummary(summary)
		}

		return summary, nil
	}

	m.mu.Lock()

	var customerID *int64

	if m.customer != nil {
		id := m.customer.ID
		customerID = &id
	}

	useCoupon := m.coupon

	m.mu.Unlock()

	summary, err := m.cartAPI.CalculateCart(ctx, m.cart.Items(), customerID, useCoupon)
	if err != nil {
		return models.CartSummary{}, err
	}

	m.mu.Lock()

	if seq != m.summarySeq.Load() {
		m.mu.Unlock()

		slog.Debug("Discarded stale cart summary")

		// Hand the caller its own result anyway; it just does not become
		// the held summary.
		return *summary, nil
	}

	m.summary = summary
	m.mu.Unlock()

	if m.listeners.OnSummary != nil {
		m.listeners.OnSummary(*summary)
	}

	return *summary, nil
}

// SelectCustomer attaches a search result to the checkout and resets the
// coupon flag. The detail fetch enriches the coupon affordance; when it fails
// the customer stays usable by id and only the affordance is hidden.
func (m *Machine) SelectCustomer(ctx context.Context, result models.LoyaltySummary) {

	m.mu.Lock()
	m.customer = &models.SelectedCustomer{
		ID:     result.CustomerID,
		Name:   result.CustomerName,
		Points: result.CurrentPoints,
	}
	m.detail = nil
	m.coupon = false
	m.mu.Unlock()

	detail, err := m.loyaltyAPI.LoyaltyDetail(ctx, result.CustomerID)
	if err != nil {
		slog.Warn("Loyalty detail fetch failed",
			slog.Int64("customerId", result.CustomerID),
			slog.String("error", err.Error()),
		)
	} else {
		m.mu.Lock()
		m.detail = detail
		m.mu.Unlock()
	}

	if _, err := m.RefreshSummary(ctx); err != nil {
		slog.Error("Summary refresh after customer selection failed", slog.String("error", err.Error()))
	}
}

// ClearCustomer detaches the customer, the loyalty detail and the coupon
// flag, and invalidates the held summary.
func (m *Machine) ClearCustomer() {

	m.mu.Lock()
	m.customer = nil
	m.detail = nil
	m.coupon = false
	m.summary = nil
	m.mu.Unlock()
}

// CouponAvailable reports whether the coupon toggle may be shown: a customer
// is selected, the detail fetch succeeded and at least one coupon is
// redeemable.
func (m *Machine) CouponAvailable() bool {

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.customer != nil && m.detail != nil && models.RedeemableCoupons(m.detail.TotalPoints) >= 1
}

// ToggleCoupon flips the coupon flag and forces a summary recomputation.
// Toggling twice restores the original discount state.
func (m *Machine) ToggleCoupon(ctx context.Context) error {

	if !m.CouponAvailable() {
		return apperrors.ValidationError("No redeemable coupon for this customer")
	}

	m.mu.Lock()
	m.coupon = !m.coupon
	m.mu.Unlock()

	if _, err := m.RefreshSummary(ctx); err != nil {
		slog.Error("Summary refresh after coupon toggle failed", slog.String("error", err.Error()))

		return err
	}

	return nil
}
