package models

import "time"

// CartItem is a product snapshot frozen at add-time plus a quantity. A product
// changing price or going sold-out later does not touch existing lines.
type CartItem struct {
	Product  `bson:",inline"`
	Quantity int  `json:"quantity" bson:"quantity"`
	IsFree   bool `json:"isFree,omitempty" bson:"isFree,omitempty"`
}

// Cart is the persisted cart document for one shopper token. At most one line
// per product id; repeated adds increment quantity. Coupon is the coupon as
// resolved at apply-time, not a live reference.
type Cart struct {
	Token     string     `json:"token" bson:"_id"`
	Items     []CartItem `json:"items" bson:"items"`
	Coupon    *Coupon    `json:"coupon,omitempty" bson:"coupon,omitempty"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt"`
}
