package coupons

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"sudrsya/db"
	"sudrsya/models"
	"sudrsya/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// ListAll returns every coupon record. An empty collection is an empty slice,
// not an error.
func ListAll(ctx context.Context) ([]models.Coupon, error) {
	cursor, err := db.CouponCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var all []models.Coupon
	if err := cursor.All(ctx, &all); err != nil {
		return nil, err
	}
	if all == nil {
		all = []models.Coupon{}
	}
	return all, nil
}

// GetCoupons lists all coupons for the admin UI.
func GetCoupons(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	all, err := ListAll(ctx)
	if err != nil {
		log.Println("GetCoupons error:", err)
		http.Error(w, "Could not retrieve coupons", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, all)
}

// CreateCoupon adds a coupon record.
func CreateCoupon(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var coupon models.Coupon
	if err := json.NewDecoder(r.Body).Decode(&coupon); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if coupon.Value <= 0 {
		http.Error(w, "A positive value is required", http.StatusBadRequest)
		return
	}
	if coupon.Code == "" {
		coupon.Code = utils.GenerateCode(8)
	}
	if coupon.Type != models.CouponPercentage && coupon.Type != models.CouponFlat {
		http.Error(w, "Type must be percentage or flat", http.StatusBadRequest)
		return
	}

	coupon.ID = utils.GenerateID()
	if _, err := db.CouponCollection.InsertOne(ctx, coupon); err != nil {
		log.Println("CreateCoupon insert error:", err)
		http.Error(w, "Failed to save coupon", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, coupon)
}

// ToggleCoupon flips or sets a coupon's active flag.
func ToggleCoupon(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		IsActive bool `json:"isActive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	res, err := db.CouponCollection.UpdateOne(ctx,
		bson.M{"_id": ps.ByName("id")},
		bson.M{"$set": bson.M{"isActive": payload.IsActive}},
	)
	if err != nil {
		log.Println("ToggleCoupon update error:", err)
		http.Error(w, "Failed to update coupon", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Coupon not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"status": "updated", "isActive": payload.IsActive})
}

// DeleteCoupon removes a coupon record.
func DeleteCoupon(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if _, err := db.CouponCollection.DeleteOne(ctx, bson.M{"_id": ps.ByName("id")}); err != nil {
		log.Println("DeleteCoupon error:", err)
		http.Error(w, "Failed to delete coupon", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
