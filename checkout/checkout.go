package checkout

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"sudrsya/db"
	"sudrsya/models"
	"sudrsya/pricing"
	"sudrsya/rdx"
	"sudrsya/settings"
	"sudrsya/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func whatsappNumber() string {
	n := os.Getenv("WHATSAPP_NUMBER")
	if n == "" {
		n = "919000000000"
	}
	return n
}

type handoffResponse struct {
	URL     string              `json:"url"`
	Message string              `json:"message"`
	Offer   models.OfferDetails `json:"offer"`
}

// WhatsAppHandoff serializes the cart and its offer summary into a wa.me deep
// link. Per-item WhatsApp click counters are buffered fire-and-forget.
func WhatsAppHandoff(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	token := r.Header.Get("X-Cart-Token")
	if token == "" {
		http.Error(w, "Missing cart token", http.StatusBadRequest)
		return
	}

	var c models.Cart
	err := db.CartCollection.FindOne(ctx, bson.M{"_id": token}).Decode(&c)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			log.Println("WhatsAppHandoff cart load error:", err)
		}
		http.Error(w, "Cart is empty", http.StatusBadRequest)
		return
	}
	if len(c.Items) == 0 {
		http.Error(w, "Cart is empty", http.StatusBadRequest)
		return
	}

	offer := pricing.ComputeOffer(c.Items, settings.Fetch(ctx), c.Coupon)
	message := BuildMessage(c.Items, offer)

	for _, item := range c.Items {
		go rdx.BufferWhatsappClick(item.ProductID)
	}

	utils.RespondWithJSON(w, http.StatusOK, handoffResponse{
		URL:     BuildLink(whatsappNumber(), message),
		Message: message,
		Offer:   offer,
	})
}
