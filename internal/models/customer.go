package models

import "fmt"

type Customer struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	LoyaltyPoints int    `json:"loyaltyPoints"`
}

// DisplayCode is the customer code shown in tables, e.g. C007.
func (c Customer) DisplayCode() string {
	return fmt.Sprintf("C%03d", c.ID)
}

type SaveCustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address"`
}
