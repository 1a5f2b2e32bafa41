package checkout

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"sudrsya/models"
)

// BuildMessage renders the order inquiry text sent to WhatsApp. The layout is
// a wire contract with the messaging side: one numbered block per cart line
// with name, code, category, quantity and unit price, a free-items block only
// when the promotion yielded any, then the total.
func BuildMessage(items []models.CartItem, offer models.OfferDetails) string {
	var b strings.Builder

	b.WriteString("*Order Inquiry from Sudrsya Website*\n\n")
	b.WriteString("*Hello, I want to order:*\n\n")

	for i, item := range items {
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, item.Name)
		fmt.Fprintf(&b, "   Code: %s\n", item.Code)
		fmt.Fprintf(&b, "   Category: %s\n", item.Category)
		fmt.Fprintf(&b, "   Quantity: %d\n", item.Quantity)
		fmt.Fprintf(&b, "   Price: ₹%s\n\n", formatAmount(item.Price))
	}

	if len(offer.FreeItems) > 0 {
		b.WriteString("*Offer Applied: Buy 2 Get 1 Free*\n")
		fmt.Fprintf(&b, "Free Item(s): %s\n\n", strings.Join(offer.FreeItems, ", "))
	}

	fmt.Fprintf(&b, "*Total Amount:* ₹%s\n\n", formatAmount(offer.Total))
	b.WriteString("Please confirm availability.")

	return b.String()
}

// BuildLink percent-encodes the message into a wa.me deep link.
func BuildLink(number, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + number + "?text=" + encoded
}

// formatAmount prints prices the way the storefront shows them: no trailing
// zeros, no thousands separators.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
