package pricing

import (
	"reflect"
	"testing"

	"sudrsya/models"
)

func item(id, name, category string, price float64, qty int) models.CartItem {
	return models.CartItem{
		Product: models.Product{
			ProductID: id,
			Name:      name,
			Code:      "SKU-" + id,
			Category:  category,
			Price:     price,
		},
		Quantity: qty,
	}
}

var promoOn = models.GlobalSettings{Buy2Get1Enabled: true}
var promoOff = models.GlobalSettings{Buy2Get1Enabled: false}

func TestEmptyCart(t *testing.T) {
	offer := ComputeOffer(nil, promoOn, nil)
	if offer.Subtotal != 0 || offer.Discount != 0 || offer.CouponDiscount != 0 || offer.Total != 0 {
		t.Fatalf("expected all-zero offer, got %+v", offer)
	}
	if len(offer.Messages) != 0 || len(offer.FreeItems) != 0 {
		t.Fatalf("expected no messages or free items, got %+v", offer)
	}
}

func TestSubtotalIgnoresEligibility(t *testing.T) {
	cart := []models.CartItem{
		item("1", "Silk Saree", models.CategorySarees, 2500, 2),
		item("2", "Jhumka", models.CategoryEarrings, 300, 3),
	}
	for _, settings := range []models.GlobalSettings{promoOn, promoOff} {
		offer := ComputeOffer(cart, settings, nil)
		if offer.Subtotal != 2500*2+300*3 {
			t.Fatalf("subtotal = %v, want %v", offer.Subtotal, 2500*2+300*3)
		}
	}
}

func TestPromotionDisabled(t *testing.T) {
	cart := []models.CartItem{
		item("1", "Jhumka", models.CategoryEarrings, 100, 6),
	}
	offer := ComputeOffer(cart, promoOff, nil)
	if offer.Discount != 0 {
		t.Errorf("discount = %v, want 0", offer.Discount)
	}
	if len(offer.Messages) != 0 {
		t.Errorf("messages = %v, want none", offer.Messages)
	}
	if len(offer.FreeItems) != 0 {
		t.Errorf("freeItems = %v, want none", offer.FreeItems)
	}
}

func TestCheapestOfThreeFree(t *testing.T) {
	cart := []models.CartItem{
		item("1", "Stud", models.CategoryEarrings, 10, 1),
		item("2", "Hoop", models.CategoryEarrings, 20, 1),
		item("3", "Jhumka", models.CategoryEarrings, 30, 1),
	}
	offer := ComputeOffer(cart, promoOn, nil)
	if offer.Discount != 10 {
		t.Errorf("discount = %v, want 10", offer.Discount)
	}
	if !reflect.DeepEqual(offer.FreeItems, []string{"Stud"}) {
		t.Errorf("freeItems = %v, want [Stud]", offer.FreeItems)
	}
	if len(offer.Messages) != 0 {
		t.Errorf("messages = %v, want none for a complete group", offer.Messages)
	}
	if offer.Total != 50 {
		t.Errorf("total = %v, want 50", offer.Total)
	}
}

func TestRemainderNudges(t *testing.T) {
	tests := []struct {
		units       int
		wantFree    int
		wantMessage bool
	}{
		{4, 1, true},  // remainder 1
		{5, 1, true},  // remainder 2
		{6, 2, false}, // complete groups
	}
	for _, tc := range tests {
		cart := []models.CartItem{
			item("1", "Ring", models.CategoryRings, 150, tc.units),
		}
		offer := ComputeOffer(cart, promoOn, nil)
		if len(offer.FreeItems) != tc.wantFree {
			t.Errorf("units=%d: free = %d, want %d", tc.units, len(offer.FreeItems), tc.wantFree)
		}
		if got := len(offer.Messages) > 0; got != tc.wantMessage {
			t.Errorf("units=%d: message present = %v, want %v", tc.units, got, tc.wantMessage)
		}
		if offer.Discount != float64(tc.wantFree)*150 {
			t.Errorf("units=%d: discount = %v, want %v", tc.units, offer.Discount, float64(tc.wantFree)*150)
		}
	}
}

func TestNudgeWording(t *testing.T) {
	offer := ComputeOffer([]models.CartItem{
		item("1", "Anklet", models.CategoryAnklets, 90, 1),
	}, promoOn, nil)
	want := []string{"Buy 1 more Anklets and get 1 FREE!"}
	if !reflect.DeepEqual(offer.Messages, want) {
		t.Fatalf("messages = %v, want %v", offer.Messages, want)
	}

	offer = ComputeOffer([]models.CartItem{
		item("1", "Anklet", models.CategoryAnklets, 90, 2),
	}, promoOn, nil)
	want = []string{"Add just 1 more Anklets to unlock your FREE gift!"}
	if !reflect.DeepEqual(offer.Messages, want) {
		t.Fatalf("messages = %v, want %v", offer.Messages, want)
	}
}

func TestIneligibleCategoryNeverDiscounted(t *testing.T) {
	cart := []models.CartItem{
		item("1", "Silk Saree", models.CategorySarees, 2000, 9),
		item("2", "Lehenga Set", models.CategoryLehenga, 5000, 3),
	}
	offer := ComputeOffer(cart, promoOn, nil)
	if offer.Discount != 0 || len(offer.FreeItems) != 0 || len(offer.Messages) != 0 {
		t.Fatalf("ineligible categories produced promo output: %+v", offer)
	}
}

func TestCategoriesIndependent(t *testing.T) {
	cart := []models.CartItem{
		item("1", "Stud", models.CategoryEarrings, 100, 2),
		item("2", "Pendant", models.CategoryNeckpieces, 400, 1),
	}
	// 2 earrings + 1 neckpiece never form a cross-category group.
	offer := ComputeOffer(cart, promoOn, nil)
	if offer.Discount != 0 {
		t.Errorf("discount = %v, want 0 across categories", offer.Discount)
	}
	if len(offer.Messages) != 2 {
		t.Errorf("messages = %v, want one nudge per category", offer.Messages)
	}
}

func TestQuantityExpansion(t *testing.T) {
	// One line with quantity 3 behaves like three units.
	cart := []models.CartItem{
		item("1", "Nose Pin", models.CategoryNosePins, 75, 3),
	}
	offer := ComputeOffer(cart, promoOn, nil)
	if offer.Discount != 75 {
		t.Errorf("discount = %v, want 75", offer.Discount)
	}
	if !reflect.DeepEqual(offer.FreeItems, []string{"Nose Pin"}) {
		t.Errorf("freeItems = %v, want [Nose Pin]", offer.FreeItems)
	}
}

func TestPercentageCouponOnPostPromoBase(t *testing.T) {
	cart := []models.CartItem{
		item("1", "Stud", models.CategoryEarrings, 100, 3),
	}
	coupon := &models.Coupon{Code: "FEST10", Type: models.CouponPercentage, Value: 10, IsActive: true}
	offer := ComputeOffer(cart, promoOn, coupon)
	// subtotal 300, promo discount 100, base 200 → 10% = 20
	if offer.CouponDiscount != 20 {
		t.Errorf("couponDiscount = %v, want 20", offer.CouponDiscount)
	}
	if offer.Total != 180 {
		t.Errorf("total = %v, want 180", offer.Total)
	}
	if offer.ActiveCoupon == nil || offer.ActiveCoupon.Code != "FEST10" {
		t.Errorf("activeCoupon = %+v, want FEST10", offer.ActiveCoupon)
	}
}

func TestFlatCouponCappedAtBase(t *testing.T) {
	cart := []models.CartItem{
		item("1", "Stud", models.CategoryEarrings, 100, 3),
	}
	coupon := &models.Coupon{Code: "BIG", Type: models.CouponFlat, Value: 500, IsActive: true}
	offer := ComputeOffer(cart, promoOn, coupon)
	if offer.CouponDiscount != 200 {
		t.Errorf("couponDiscount = %v, want capped 200", offer.CouponDiscount)
	}
	if offer.Total != 0 {
		t.Errorf("total = %v, want 0", offer.Total)
	}
}

func TestFlatCouponBelowBase(t *testing.T) {
	cart := []models.CartItem{
		item("1", "Silk Saree", models.CategorySarees, 1000, 1),
	}
	coupon := &models.Coupon{Code: "SAVE50", Type: models.CouponFlat, Value: 50, IsActive: true}
	offer := ComputeOffer(cart, promoOn, coupon)
	if offer.CouponDiscount != 50 {
		t.Errorf("couponDiscount = %v, want 50", offer.CouponDiscount)
	}
	if offer.Total != 950 {
		t.Errorf("total = %v, want 950", offer.Total)
	}
}

func TestDeterministic(t *testing.T) {
	cart := []models.CartItem{
		item("1", "Jhumka", models.CategoryEarrings, 250, 2),
		item("2", "Stud", models.CategoryEarrings, 120, 4),
		item("3", "Pendant", models.CategoryNeckpieces, 600, 3),
		item("4", "Silk Saree", models.CategorySarees, 3000, 1),
	}
	coupon := &models.Coupon{Code: "FEST10", Type: models.CouponPercentage, Value: 10, IsActive: true}
	first := ComputeOffer(cart, promoOn, coupon)
	for i := 0; i < 5; i++ {
		again := ComputeOffer(cart, promoOn, coupon)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("recompute differs:\nfirst %+v\nagain %+v", first, again)
		}
	}
}

func TestMixedLinesCheapestAcrossCategory(t *testing.T) {
	// 6 earring units from uneven lines: two cheapest units go free.
	cart := []models.CartItem{
		item("1", "Jhumka", models.CategoryEarrings, 300, 1),
		item("2", "Stud", models.CategoryEarrings, 100, 2),
		item("3", "Hoop", models.CategoryEarrings, 200, 3),
	}
	offer := ComputeOffer(cart, promoOn, nil)
	if offer.Discount != 200 {
		t.Errorf("discount = %v, want 200 (two cheapest units)", offer.Discount)
	}
	if !reflect.DeepEqual(offer.FreeItems, []string{"Stud", "Stud"}) {
		t.Errorf("freeItems = %v, want [Stud Stud]", offer.FreeItems)
	}
}
