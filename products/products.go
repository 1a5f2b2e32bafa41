package products

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"sudrsya/db"
	"sudrsya/models"
	"sudrsya/rdx"
	"sudrsya/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetProducts lists the catalog, newest first. Optional ?soldOut=true|false
// filter for the admin view.
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if soldOut := r.URL.Query().Get("soldOut"); soldOut != "" {
		filter["isSoldOut"] = soldOut == "true"
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := db.ProductCollection.Find(ctx, filter, opts)
	if err != nil {
		log.Println("GetProducts Find error:", err)
		http.Error(w, "Could not retrieve products", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var list []models.Product
	if err := cursor.All(ctx, &list); err != nil {
		log.Println("GetProducts cursor error:", err)
		http.Error(w, "Error reading product data", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []models.Product{}
	}

	utils.RespondWithJSON(w, http.StatusOK, list)
}

// GetProduct returns one product and buffers a view-count increment. The
// increment never blocks or fails the response.
func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id := ps.ByName("id")

	var product models.Product
	if err := db.ProductCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	go rdx.BufferView(id)

	utils.RespondWithJSON(w, http.StatusOK, product)
}

// CreateProduct adds a catalog entry (admin). Counters start at zero and the
// product goes live as not sold out.
func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if product.Name == "" || product.Category == "" || product.Price <= 0 {
		http.Error(w, "Name, category and a positive price are required", http.StatusBadRequest)
		return
	}
	if product.Discount < 0 || product.Discount >= 100 {
		http.Error(w, "Discount must be between 0 and 99", http.StatusBadRequest)
		return
	}

	product.ProductID = utils.GenerateID()
	product.ViewsCount = 0
	product.WhatsappClicks = 0
	product.IsSoldOut = false
	product.CreatedAt = time.Now().UnixMilli()
	if product.Images == nil {
		product.Images = []string{}
	}

	if _, err := db.ProductCollection.InsertOne(ctx, product); err != nil {
		log.Println("CreateProduct insert error:", err)
		http.Error(w, "Failed to save product", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, product)
}

// UpdateProduct merges the supplied fields into a product (admin). Identity
// and counters are not writable through this path.
func UpdateProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var partial map[string]any
	if err := json.NewDecoder(r.Body).Decode(&partial); err != nil || len(partial) == 0 {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	delete(partial, "id")
	delete(partial, "_id")
	delete(partial, "viewsCount")
	delete(partial, "whatsappClicks")
	delete(partial, "createdAt")

	if price, ok := partial["price"].(float64); ok && price <= 0 {
		http.Error(w, "Price must be positive", http.StatusBadRequest)
		return
	}

	res, err := db.ProductCollection.UpdateOne(ctx,
		bson.M{"_id": ps.ByName("id")},
		bson.M{"$set": partial},
	)
	if err != nil {
		log.Println("UpdateProduct error:", err)
		http.Error(w, "Failed to update product", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// DeleteProduct removes a catalog entry (admin).
func DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if _, err := db.ProductCollection.DeleteOne(ctx, bson.M{"_id": ps.ByName("id")}); err != nil {
		log.Println("DeleteProduct error:", err)
		http.Error(w, "Failed to delete product", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
