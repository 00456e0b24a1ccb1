package models

// Payment methods the checkout flow understands.
const (
	PaymentMethodCash = "cash"
	PaymentMethodQR   = "qr"
)

type PaymentRequest struct {
	Items         []CartItem `json:"items"`
	PaymentMethod string     `json:"paymentMethod"`
	CustomerID    *int64     `json:"customerId,omitempty"`
	UseCoupon     bool       `json:"useCoupon"`
	CashReceived  *float64   `json:"cashReceived,omitempty"`
}

type PaymentResponse struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	ReceiptHTML  string `json:"receiptHtml,omitempty"`
}
