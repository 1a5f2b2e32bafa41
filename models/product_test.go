package models

import "testing"

func TestOriginalPriceReconstruction(t *testing.T) {
	tests := []struct {
		price    float64
		discount float64
		want     float64
	}{
		{900, 10, 1000},  // 1000 * 0.9 = 900
		{750, 25, 1000},  // 1000 * 0.75 = 750
		{450, 0, 450},    // no discount: price is the original
		{450, 100, 450},  // degenerate discount falls back to price
		{1200, -5, 1200}, // bad data falls back to price
	}
	for _, tc := range tests {
		p := Product{Price: tc.price, Discount: tc.discount}
		if got := p.OriginalPrice(); got != tc.want {
			t.Errorf("OriginalPrice(price=%v, discount=%v) = %v, want %v",
				tc.price, tc.discount, got, tc.want)
		}
	}
}
