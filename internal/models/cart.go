package models

// CartItem is one line of the cart as posted to the server for summary
// calculation and payment. Subtotal is always price * quantity; the server
// recomputes it anyway but the original contract sends it along.
type CartItem struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

// CartSummary is the server-computed pricing result for the current cart.
// The client never derives Total itself except as a fallback display before
// the first server response arrives.
type CartSummary struct {
	Subtotal            float64 `json:"subtotal"`
	Discount            float64 `json:"discount"`
	Total               float64 `json:"total"`
	StockAvailable      bool    `json:"stockAvailable"`
	ErrorMessage        string  `json:"errorMessage,omitempty"`
	LoyaltyPointsEarned int     `json:"loyaltyPointsEarned"`
}

// EmptyCartSummary is what an empty cart always summarizes to, synthesized
// locally without a server round trip.
func EmptyCartSummary() CartSummary {
	return CartSummary{StockAvailable: true}
}
