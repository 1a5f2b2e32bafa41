package models

// Coupon discount kinds.
const (
	CouponPercentage = "percentage"
	CouponFlat       = "flat"
)

type Coupon struct {
	ID       string  `json:"id,omitempty" bson:"_id,omitempty"`
	Code     string  `json:"code" bson:"code"`
	Type     string  `json:"type" bson:"type"` // "percentage" or "flat"
	Value    float64 `json:"value" bson:"value"`
	IsActive bool    `json:"isActive" bson:"isActive"`
}
