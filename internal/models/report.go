package models

import "time"

// OrderSummary is one settled order as returned by the orders report endpoint.
type OrderSummary struct {
	ID           int64     `json:"id"`
	ReceiptNo    string    `json:"receiptNo"`
	CustomerName string    `json:"customerName,omitempty"`
	OrderDate    time.Time `json:"orderDate"`
	TotalAmount  float64   `json:"totalAmount"`
}

// SalesReport aggregates orders over a date range, server-computed.
type SalesReport struct {
	Orders      []OrderSummary `json:"orders"`
	TotalSales  float64        `json:"totalSales"`
	TotalOrders int            `json:"totalOrders"`
}
