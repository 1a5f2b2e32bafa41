package cart

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"sudrsya/coupons"
	"sudrsya/db"
	"sudrsya/models"
	"sudrsya/pricing"
	"sudrsya/settings"
	"sudrsya/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Carts are keyed by an anonymous shopper token minted by the client.
const tokenHeader = "X-Cart-Token"

func cartToken(r *http.Request) string {
	return r.Header.Get(tokenHeader)
}

// loadCart reads the persisted cart for a token. A missing document or one
// that fails to decode degrades to an empty cart, never an error.
func loadCart(ctx context.Context, token string) models.Cart {
	var c models.Cart
	err := db.CartCollection.FindOne(ctx, bson.M{"_id": token}).Decode(&c)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			log.Println("loadCart decode error, starting empty:", err)
		}
		return models.Cart{Token: token, Items: []models.CartItem{}}
	}
	if c.Items == nil {
		c.Items = []models.CartItem{}
	}
	c.Token = token
	return c
}

func saveCart(ctx context.Context, c models.Cart) error {
	c.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := db.CartCollection.ReplaceOne(ctx, bson.M{"_id": c.Token}, c, opts)
	return err
}

// offerFor recomputes OfferDetails from the cart, the cached global settings
// and the coupon stored on the cart document.
func offerFor(ctx context.Context, c models.Cart) models.OfferDetails {
	return pricing.ComputeOffer(c.Items, settings.Fetch(ctx), c.Coupon)
}

type cartResponse struct {
	Cart  models.Cart         `json:"cart"`
	Offer models.OfferDetails `json:"offer"`
}

func respondCart(w http.ResponseWriter, ctx context.Context, status int, c models.Cart) {
	utils.RespondWithJSON(w, status, cartResponse{Cart: c, Offer: offerFor(ctx, c)})
}

// AddToCart snapshots the product and adds it to the cart (or bumps quantity).
func AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	token := cartToken(r)
	if token == "" {
		http.Error(w, "Missing cart token", http.StatusBadRequest)
		return
	}

	var payload struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.ProductID == "" {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	var product models.Product
	if err := db.ProductCollection.FindOne(ctx, bson.M{"_id": payload.ProductID}).Decode(&product); err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	c := loadCart(ctx, token)
	c.Items = AddItem(c.Items, product)

	if err := saveCart(ctx, c); err != nil {
		log.Println("AddToCart save error:", err)
		http.Error(w, "Failed to save cart", http.StatusInternalServerError)
		return
	}

	respondCart(w, ctx, http.StatusCreated, c)
}

// RemoveFromCart deletes one line item.
func RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	token := cartToken(r)
	if token == "" {
		http.Error(w, "Missing cart token", http.StatusBadRequest)
		return
	}

	c := loadCart(ctx, token)
	c.Items = RemoveItem(c.Items, ps.ByName("id"))

	if err := saveCart(ctx, c); err != nil {
		log.Println("RemoveFromCart save error:", err)
		http.Error(w, "Failed to save cart", http.StatusInternalServerError)
		return
	}

	respondCart(w, ctx, http.StatusOK, c)
}

// ChangeQuantity applies a signed delta to a line's quantity (floor 1).
func ChangeQuantity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	token := cartToken(r)
	if token == "" {
		http.Error(w, "Missing cart token", http.StatusBadRequest)
		return
	}

	var payload struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	c := loadCart(ctx, token)
	c.Items = UpdateQuantity(c.Items, ps.ByName("id"), payload.Delta)

	if err := saveCart(ctx, c); err != nil {
		log.Println("ChangeQuantity save error:", err)
		http.Error(w, "Failed to save cart", http.StatusInternalServerError)
		return
	}

	respondCart(w, ctx, http.StatusOK, c)
}

// GetCart returns the cart with its current offer summary.
func GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	token := cartToken(r)
	if token == "" {
		http.Error(w, "Missing cart token", http.StatusBadRequest)
		return
	}

	respondCart(w, ctx, http.StatusOK, loadCart(ctx, token))
}

// GetOffer returns just the derived offer summary.
func GetOffer(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	token := cartToken(r)
	if token == "" {
		http.Error(w, "Missing cart token", http.StatusBadRequest)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, offerFor(ctx, loadCart(ctx, token)))
}

type couponResult struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Offer   models.OfferDetails `json:"offer"`
}

// ApplyCoupon looks the code up among active coupons and stores the match on
// the cart. A failed lookup leaves any previously applied coupon untouched.
func ApplyCoupon(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	token := cartToken(r)
	if token == "" {
		http.Error(w, "Missing cart token", http.StatusBadRequest)
		return
	}

	var payload struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	all, err := coupons.ListAll(ctx)
	if err != nil {
		log.Println("ApplyCoupon list error:", err)
		http.Error(w, "Failed to look up coupon", http.StatusInternalServerError)
		return
	}

	c := loadCart(ctx, token)

	coupon, ok := coupons.Resolve(all, payload.Code)
	if !ok {
		utils.RespondWithJSON(w, http.StatusOK, couponResult{
			Success: false,
			Message: "Invalid or inactive coupon",
			Offer:   offerFor(ctx, c),
		})
		return
	}

	c.Coupon = coupon
	if err := saveCart(ctx, c); err != nil {
		log.Println("ApplyCoupon save error:", err)
		http.Error(w, "Failed to save cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, couponResult{
		Success: true,
		Message: "Coupon applied!",
		Offer:   offerFor(ctx, c),
	})
}

// RemoveCoupon clears the active coupon.
func RemoveCoupon(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	token := cartToken(r)
	if token == "" {
		http.Error(w, "Missing cart token", http.StatusBadRequest)
		return
	}

	c := loadCart(ctx, token)
	c.Coupon = nil

	if err := saveCart(ctx, c); err != nil {
		log.Println("RemoveCoupon save error:", err)
		http.Error(w, "Failed to save cart", http.StatusInternalServerError)
		return
	}

	respondCart(w, ctx, http.StatusOK, c)
}
