package models

// GlobalSettings is the single storefront settings record.
type GlobalSettings struct {
	Buy2Get1Enabled bool `json:"buy2get1Enabled" bson:"buy2get1Enabled"`
}

// OfferDetails is derived from {cart, settings, active coupon} on every read
// and never persisted.
type OfferDetails struct {
	Subtotal       float64  `json:"subtotal"`
	Discount       float64  `json:"discount"`
	CouponDiscount float64  `json:"couponDiscount"`
	ActiveCoupon   *Coupon  `json:"activeCoupon"`
	Total          float64  `json:"total"`
	Messages       []string `json:"messages"`
	FreeItems      []string `json:"freeItems"`
}
