package checkout

import (
	"strings"
	"testing"

	"sudrsya/models"
)

func line(id, name, code, category string, price float64, qty int) models.CartItem {
	return models.CartItem{
		Product: models.Product{
			ProductID: id,
			Name:      name,
			Code:      code,
			Category:  category,
			Price:     price,
		},
		Quantity: qty,
	}
}

func TestBuildMessageFormat(t *testing.T) {
	items := []models.CartItem{
		line("1", "Kundan Jhumka", "EAR-101", models.CategoryEarrings, 450, 2),
		line("2", "Silk Saree", "SAR-007", models.CategorySarees, 2500, 1),
	}
	offer := models.OfferDetails{Total: 3400}

	got := BuildMessage(items, offer)
	want := "*Order Inquiry from Sudrsya Website*\n\n" +
		"*Hello, I want to order:*\n\n" +
		"1. *Kundan Jhumka*\n" +
		"   Code: EAR-101\n" +
		"   Category: Earrings\n" +
		"   Quantity: 2\n" +
		"   Price: ₹450\n\n" +
		"2. *Silk Saree*\n" +
		"   Code: SAR-007\n" +
		"   Category: Sarees\n" +
		"   Quantity: 1\n" +
		"   Price: ₹2500\n\n" +
		"*Total Amount:* ₹3400\n\n" +
		"Please confirm availability."

	if got != want {
		t.Fatalf("message mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestBuildMessageFreeItemsBlock(t *testing.T) {
	items := []models.CartItem{
		line("1", "Stud", "EAR-1", models.CategoryEarrings, 100, 3),
	}
	offer := models.OfferDetails{
		Discount:  100,
		Total:     200,
		FreeItems: []string{"Stud"},
	}

	got := BuildMessage(items, offer)
	if !strings.Contains(got, "*Offer Applied: Buy 2 Get 1 Free*\nFree Item(s): Stud\n\n") {
		t.Fatalf("free-items block missing or malformed:\n%s", got)
	}
}

func TestBuildMessageNoFreeItemsBlockWhenNone(t *testing.T) {
	items := []models.CartItem{
		line("1", "Stud", "EAR-1", models.CategoryEarrings, 100, 1),
	}
	got := BuildMessage(items, models.OfferDetails{Total: 100})
	if strings.Contains(got, "Offer Applied") {
		t.Fatalf("free-items block present for empty freeItems:\n%s", got)
	}
}

func TestBuildLinkEncoding(t *testing.T) {
	link := BuildLink("919000000000", "Hello, I want to order: *Stud*")
	if !strings.HasPrefix(link, "https://wa.me/919000000000?text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}
	if strings.Contains(link, " ") || strings.Contains(link, "+") {
		t.Fatalf("link not percent-encoded: %s", link)
	}
	if !strings.Contains(link, "Hello%2C%20I%20want%20to%20order%3A%20%2AStud%2A") {
		t.Fatalf("unexpected encoding: %s", link)
	}
}

func TestFormatAmountTrimsZeros(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{100, "100"},
		{99.5, "99.5"},
		{0, "0"},
		{1234.25, "1234.25"},
	}
	for _, tc := range tests {
		if got := formatAmount(tc.in); got != tc.want {
			t.Errorf("formatAmount(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
