package checkout

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"

	"github.com/microcosm-cc/bluemonday"

	"github.com/poscatcafe/pos-terminal/internal/api"
	"github.com/poscatcafe/pos-terminal/internal/cart"
	apperrors "github.com/poscatcafe/pos-terminal/internal/errors"
	"github.com/poscatcafe/pos-terminal/internal/metrics"
	"github.com/poscatcafe/pos-terminal/internal/models"
)

// State of the checkout flow.
type State int

const (
	StateIdle State = iota
	StateReviewing
	StateSelectingMethod
	StateAwaitingPayment
	StateSubmitting
	StateSettled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReviewing:
		return "reviewing"
	case StateSelectingMethod:
		return "selecting-method"
	case StateAwaitingPayment:
		return "awaiting-payment"
	case StateSubmitting:
		return "submitting"
	case StateSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Listeners are the explicit event hooks a front end registers instead of
// hanging handlers off a shared namespace. All are optional.
type Listeners struct {
	OnSummary func(models.CartSummary)
	OnNotice  func(string)
	OnState   func(State)
}

// Result of a settled payment.
type Result struct {
	ReceiptHTML string
	Change      float64
}

// Machine owns every piece of checkout state: the flow state, the selected
// customer and loyalty detail, the coupon flag and the last accepted summary.
// Nothing checkout-related lives outside it.
type Machine struct {
	cart       *cart.Cart
	cartAPI    api.CartAPI
	paymentAPI api.PaymentAPI
	loyaltyAPI api.LoyaltyAPI

	// reloadCatalog refreshes the product store after a settled payment so
	// the grid reflects decremented stock.
	reloadCatalog func(ctx context.Context) error

	sanitizer *bluemonday.Policy
	listeners Listeners

	// summarySeq orders summary computations. Only the response to the most
	// recently issued request is applied; earlier in-flight responses are
	// discarded, never cancelled.
	summarySeq atomic.Uint64

	mu       sync.Mutex
	state    State
	method   string
	customer *models.SelectedCustomer
	detail   *models.LoyaltyDetail
	coupon   bool
	summary  *models.CartSummary
}

func NewMachine(c *cart.Cart, cartAPI api.CartAPI, paymentAPI api.PaymentAPI, loyaltyAPI api.LoyaltyAPI, reloadCatalog func(ctx context.Context) error, listeners Listeners) *Machine {
	return &Machine{
		cart:          c,
		cartAPI:       cartAPI,
		paymentAPI:    paymentAPI,
		loyaltyAPI:    loyaltyAPI,
		reloadCatalog: reloadCatalog,
		sanitizer:     bluemonday.UGCPolicy(),
		listeners:     listeners,
	}
}

func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

func (m *Machine) setState(s State) {
	m.state = s

	if m.listeners.OnState != nil {
		m.listeners.OnState(s)
	}
}

func (m *Machine) notice(message string) {
	if m.listeners.OnNotice != nil {
		m.listeners.OnNotice(message)
	}
}

// Summary returns the last accepted server summary, if any.
func (m *Machine) Summary() (models.CartSummary, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.summary == nil {
		return models.CartSummary{}, false
	}

	return *m.summary, true
}

// TotalDue is the amount to collect: the server total when a summary is held,
// otherwise the locally derived fallback.
func (m *Machine) TotalDue() float64 {
	m.mu.Lock()
	summary := m.summary
	m.mu.Unlock()

	if summary != nil {
		return summary.Total
	}

	return m.cart.FallbackTotal()
}

func (m *Machine) Customer() *models.SelectedCustomer {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.customer == nil {
		return nil
	}

	c := *m.customer

	return &c
}

func (m *Machine) LoyaltyDetail() *models.LoyaltyDetail {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.detail == nil {
		return nil
	}

	d := *m.detail

	return &d
}

func (m *Machine) UseCoupon() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.coupon
}

func (m *Machine) PaymentMethod() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.method
}

// BeginReview starts a checkout: Idle -> Reviewing. An empty cart is
// rejected. The summary computation is triggered immediately; when the server
// reports insufficient stock the flow stays in Reviewing and surfaces the
// server's message.
func (m *Machine) BeginReview(ctx context.Context) error {

	m.mu.Lock()

	if m.state != StateIdle {
		m.mu.Unlock()

		return apperrors.StateError("A checkout is already in progress")
	}

	if m.cart.IsEmpty() {
		m.mu.Unlock()
		m.notice("Select a product before paying")

		return apperrors.ValidationError("Cart is empty")
	}

	m.setState(StateReviewing)
	m.mu.Unlock()

	summary, err := m.RefreshSummary(ctx)
	if err != nil {
		m.mu.Lock()
		m.setState(StateIdle)
		m.mu.Unlock()

		m.notice("Could not calculate the amount due")

		return err
	}

	if !summary.StockAvailable {

		message := summary.ErrorMessage
		if message == "" {
			message = "Not enough stock for the items in the cart"
		}

		m.notice(message)

		return apperrors.StockError(message)
	}

	return nil
}

// Proceed advances Reviewing -> SelectingMethod. Unconditional once a summary
// with available stock is held.
func (m *Machine) Proceed() error {

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateReviewing {
		return apperrors.StateError("Nothing under review")
	}

	if m.summary == nil || !m.summary.StockAvailable {
		return apperrors.StateError("No usable summary held")
	}

	m.setState(StateSelectingMethod)

	return nil
}

// SelectMethod records the payment method: SelectingMethod -> AwaitingPayment.
func (m *Machine) SelectMethod(method string) error {

	if method != models.PaymentMethodCash && method != models.PaymentMethodQR {
		return apperrors.ValidationError("Unknown payment method")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateSelectingMethod {
		return apperrors.StateError("Not selecting a payment method")
	}

	m.method = method
	m.setState(StateAwaitingPayment)

	return nil
}

// Cancel abandons the flow from SelectingMethod or AwaitingPayment. The
// selected customer and the coupon flag are discarded; the cart is kept.
func (m *Machine) Cancel() {

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateSelectingMethod && m.state != StateAwaitingPayment && m.state != StateReviewing {
		return
	}

	m.customer = nil
	m.detail = nil
	m.coupon = false
	m.summary = nil
	m.method = ""
	m.setState(StateIdle)
}

// Reset returns a settled flow to Idle, ready for the next sale.
func (m *Machine) Reset() {

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateSettled {
		return
	}

	m.setState(StateIdle)
}

// SubmitCash settles a cash payment. The received amount must be a finite
// number covering the total; anything else keeps the flow in AwaitingPayment.
func (m *Machine) SubmitCash(ctx context.Context, received float64) (*Result, error) {

	if math.IsNaN(received) || math.IsInf(received, 0) {
		m.notice("Received amount is not enough")

		return nil, apperrors.ValidationError("Received amount is not a number")
	}

	return m.submit(ctx, &received)
}

// SubmitQR settles a QR payment. Settlement is confirmed only by this manual
// submit; there is no live status polling.
func (m *Machine) SubmitQR(ctx context.Context) (*Result, error) {
	return m.submit(ctx, nil)
}

func (m *Machine) submit(ctx context.Context, cashReceived *float64) (*Result, error) {

	m.mu.Lock()

	if m.state != StateAwaitingPayment {
		m.mu.Unlock()

		return nil, apperrors.StateError("No payment awaiting input")
	}

	method := m.method
	m.mu.Unlock()

	if m.cart.IsEmpty() {
		m.notice("Cart is empty")

		return nil, apperrors.ValidationError("Cart is empty")
	}

	// One more summary round trip right before submission, to catch stock or
	// price drift since Reviewing.
	summary, err := m.RefreshSummary(ctx)
	if err != nil {
		m.notice("Could not calculate the amount due")

		return nil, err
	}

	if !summary.StockAvailable {

		message := summary.ErrorMessage
		if message == "" {
			message = "Not enough stock for the items in the cart"
		}

		m.notice(message)

		return nil, apperrors.StockError(message)
	}

	if method == models.PaymentMethodCash && (cashReceived == nil || *cashReceived < summary.Total) {
		m.notice("Received amount is not enough")

		return nil, apperrors.ValidationError("Received amount does not cover the total")
	}

	m.mu.Lock()

	if m.state != StateAwaitingPayment {
		m.mu.Unlock()

		return nil, apperrors.StateError("No payment awaiting input")
	}

	request := models.PaymentRequest{
		Items:         m.cart.Items(),
		PaymentMethod: method,
		UseCoupon:     m.coupon,
	}

	if m.customer != nil {
		id := m.customer.ID
		request.CustomerID = &id
	}

	if method == models.PaymentMethodCash {
		request.CashReceived = cashReceived
	}

	m.setState(StateSubmitting)
	m.mu.Unlock()

	resp, err := m.paymentAPI.ProcessPayment(ctx, request)

	if err != nil || !resp.Success {

		m.mu.Lock()
		m.setState(StateAwaitingPayment)
		m.mu.Unlock()

		metrics.RecordCheckout(method, "failure")

		if err != nil {
			m.notice("Payment failed")

			return nil, err
		}

		message := resp.ErrorMessage
		if message == "" {
			message = "Payment failed"
		}

		m.notice(message)

		return nil, apperrors.ServerError(message, 0)
	}

	total := summary.Total

	m.cart.Clear()

	if m.reloadCatalog != nil {
		if err := m.reloadCatalog(ctx); err != nil {
			slog.Error("Catalog reload after payment failed", slog.String("error", err.Error()))
		}
	}

	m.mu.Lock()
	m.customer = nil
	m.detail = nil
	m.coupon = false
	m.summary = nil
	m.method = ""
	m.setState(StateSettled)
	m.mu.Unlock()

	metrics.RecordCheckout(method, "success")

	result := &Result{ReceiptHTML: m.sanitizer.Sanitize(resp.ReceiptHTML)}

	if method == models.PaymentMethodCash && cashReceived != nil {
		result.Change = *cashReceived - total
	}

	return result, nil
}
