package invoice

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"sudrsya/checkout"
	"sudrsya/db"
	"sudrsya/models"
	"sudrsya/pricing"
	"sudrsya/settings"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

// GenerateInvoice renders an order-summary PDF for a shopper's cart (admin),
// with itemized lines, promo and coupon discounts, and a QR code that opens
// the WhatsApp order message.
func GenerateInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	token := ps.ByName("token")

	var c models.Cart
	if err := db.CartCollection.FindOne(ctx, bson.M{"_id": token}).Decode(&c); err != nil {
		http.Error(w, "Cart not found", http.StatusNotFound)
		return
	}
	if len(c.Items) == 0 {
		http.Error(w, "Cart is empty", http.StatusBadRequest)
		return
	}

	offer := pricing.ComputeOffer(c.Items, settings.Fetch(ctx), c.Coupon)

	number := os.Getenv("WHATSAPP_NUMBER")
	if number == "" {
		number = "919000000000"
	}
	link := checkout.BuildLink(number, checkout.BuildMessage(c.Items, offer))

	qrPNG, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		log.Println("GenerateInvoice QR error:", err)
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	// The built-in PDF fonts are cp1252, so amounts use "Rs." instead of the
	// rupee sign.
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Sudrsya Order Summary")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Cart: %s", token))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Date: %s", time.Now().Format("02 Jan 2006")))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(80, 8, "Item")
	pdf.Cell(30, 8, "Code")
	pdf.Cell(20, 8, "Qty")
	pdf.Cell(30, 8, "Price")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 11)
	for _, item := range c.Items {
		pdf.Cell(80, 8, item.Name)
		pdf.Cell(30, 8, item.Code)
		pdf.Cell(20, 8, fmt.Sprintf("%d", item.Quantity))
		pdf.Cell(30, 8, fmt.Sprintf("Rs. %.2f", item.Price))
		pdf.Ln(7)
	}

	pdf.Ln(5)
	pdf.Cell(0, 8, fmt.Sprintf("Subtotal: Rs. %.2f", offer.Subtotal))
	pdf.Ln(6)
	if offer.Discount > 0 {
		pdf.Cell(0, 8, fmt.Sprintf("Buy 2 Get 1 Free discount: Rs. %.2f", offer.Discount))
		pdf.Ln(6)
	}
	if offer.CouponDiscount > 0 && offer.ActiveCoupon != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Coupon %s: Rs. %.2f", offer.ActiveCoupon.Code, offer.CouponDiscount))
		pdf.Ln(6)
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: Rs. %.2f", offer.Total))
	pdf.Ln(10)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Println("GenerateInvoice PDF error:", err)
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=invoice-"+token+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
