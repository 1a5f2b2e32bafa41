package cart

import "sudrsya/models"

// Pure mutation helpers over the cart line list. Handlers load the persisted
// document, apply one of these, and write it back.

// AddItem appends a snapshot of product with quantity 1, or bumps the quantity
// of an existing line with the same id. Sold-out products are a no-op.
func AddItem(items []models.CartItem, product models.Product) []models.CartItem {
	if product.IsSoldOut {
		return items
	}
	for i := range items {
		if items[i].ProductID == product.ProductID {
			items[i].Quantity++
			return items
		}
	}
	return append(items, models.CartItem{Product: product, Quantity: 1})
}

// RemoveItem drops the line with the given product id. Absent id is not an error.
func RemoveItem(items []models.CartItem, id string) []models.CartItem {
	out := items[:0]
	for _, item := range items {
		if item.ProductID != id {
			out = append(out, item)
		}
	}
	return out
}

// UpdateQuantity adjusts a line's quantity by delta, never below 1. Removal is
// a separate explicit action.
func UpdateQuantity(items []models.CartItem, id string, delta int) []models.CartItem {
	for i := range items {
		if items[i].ProductID == id {
			q := items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			items[i].Quantity = q
			return items
		}
	}
	return items
}
