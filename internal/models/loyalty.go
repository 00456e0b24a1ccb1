package models

// CouponThreshold is the number of loyalty points that unlocks one coupon.
const CouponThreshold = 100

// LoyaltySummary is one row of the loyalty customer search results.
type LoyaltySummary struct {
	CustomerID         int64  `json:"customerId"`
	CustomerName       string `json:"customerName"`
	CurrentPoints      int    `json:"currentPoints"`
	RedeemableCoupons  int    `json:"redeemableCoupons"`
	PointsToNextCoupon int    `json:"pointsToNextCoupon"`
}

// LoyaltyDetail is the full point ledger fetched after selecting a customer.
// Only TotalPoints drives the coupon affordance; the rest is display data.
type LoyaltyDetail struct {
	CustomerID   int64  `json:"customerId"`
	CustomerName string `json:"customerName"`
	TotalPoints  int    `json:"totalPoints"`
}

// RedeemableCoupons returns how many whole coupons the given points unlock.
func RedeemableCoupons(points int) int {
	if points < 0 {
		return 0
	}
	return points / CouponThreshold
}

// PointsToNextCoupon returns how many more points are needed for the next
// coupon. A customer sitting exactly on a multiple of the threshold needs a
// full threshold for the next one.
func PointsToNextCoupon(points int) int {
	if points < 0 {
		return CouponThreshold
	}
	r := points % CouponThreshold
	if r == 0 {
		return CouponThreshold
	}
	return CouponThreshold - r
}

// SelectedCustomer is the customer attached to the in-progress checkout.
type SelectedCustomer struct {
	ID     int64
	Name   string
	Points int
}
