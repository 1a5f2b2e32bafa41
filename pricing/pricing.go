package pricing

import (
	"fmt"
	"sort"

	"sudrsya/models"
)

// Categories eligible for the buy-2-get-1 promotion. Sarees and Lehenga carry
// their own margins and stay out.
var EligibleCategories = []string{
	models.CategoryEarrings,
	models.CategoryNeckpieces,
	models.CategoryRings,
	models.CategoryNosePins,
	models.CategoryAnklets,
}

const promoSetSize = 3

func isEligible(category string) bool {
	for _, c := range EligibleCategories {
		if c == category {
			return true
		}
	}
	return false
}

// ComputeOffer derives the priced cart summary from the cart lines, the global
// settings and the active coupon (nil when none). It is a pure function:
// calling it twice with the same inputs yields identical output.
//
// Promotion rule: within each eligible category, every complete group of 3
// units makes the cheapest 1 free. Units are the cart lines expanded by
// quantity; the floor(n/3) cheapest units of the category are the free ones.
func ComputeOffer(items []models.CartItem, settings models.GlobalSettings, coupon *models.Coupon) models.OfferDetails {
	// Expand lines to unit entries, grouped by eligible category. Category
	// order follows first appearance in the cart so output is deterministic.
	unitsByCategory := make(map[string][]models.CartItem)
	var categories []string

	for _, item := range items {
		if !isEligible(item.Category) {
			continue
		}
		if _, ok := unitsByCategory[item.Category]; !ok {
			categories = append(categories, item.Category)
		}
		for i := 0; i < item.Quantity; i++ {
			unit := item
			unit.Quantity = 1
			unitsByCategory[item.Category] = append(unitsByCategory[item.Category], unit)
		}
	}

	var discount float64
	messages := []string{}
	freeItems := []string{}

	if settings.Buy2Get1Enabled {
		for _, category := range categories {
			units := unitsByCategory[category]
			sort.SliceStable(units, func(i, j int) bool {
				return units[i].Price < units[j].Price
			})

			numFree := len(units) / promoSetSize
			for i := 0; i < numFree; i++ {
				discount += units[i].Price
				freeItems = append(freeItems, units[i].Name)
			}

			switch len(units) % promoSetSize {
			case 1:
				messages = append(messages, fmt.Sprintf("Buy 1 more %s and get 1 FREE!", category))
			case 2:
				messages = append(messages, fmt.Sprintf("Add just 1 more %s to unlock your FREE gift!", category))
			}
		}
	}

	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}

	var couponDiscount float64
	if coupon != nil {
		base := subtotal - discount
		if coupon.Type == models.CouponPercentage {
			couponDiscount = base * coupon.Value / 100
		} else {
			couponDiscount = coupon.Value
			if couponDiscount > base {
				couponDiscount = base
			}
		}
	}

	return models.OfferDetails{
		Subtotal:       subtotal,
		Discount:       discount,
		CouponDiscount: couponDiscount,
		ActiveCoupon:   coupon,
		Total:          subtotal - discount - couponDiscount,
		Messages:       messages,
		FreeItems:      freeItems,
	}
}
