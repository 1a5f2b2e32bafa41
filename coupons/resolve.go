package coupons

import (
	"strings"

	"sudrsya/models"
)

// Resolve finds an active coupon by case-insensitive code. First match wins;
// codes are unique by convention, not enforced here.
func Resolve(all []models.Coupon, code string) (*models.Coupon, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, false
	}
	for i := range all {
		if strings.EqualFold(all[i].Code, code) && all[i].IsActive {
			return &all[i], true
		}
	}
	return nil, false
}
