package products

import (
	"context"
	"log"
	"net/http"
	"time"

	"sudrsya/db"
	"sudrsya/filemgr"
	"sudrsya/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// UploadProductImages accepts multipart image uploads for a product (admin),
// stores originals plus thumbnails, and appends the paths to the product.
func UploadProductImages(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	id := ps.ByName("id")
	if err := db.ProductCollection.FindOne(ctx, bson.M{"_id": id}).Err(); err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	if err := r.ParseMultipartForm(20 << 20); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		http.Error(w, "No images provided", http.StatusBadRequest)
		return
	}

	var saved []string
	for _, header := range files {
		if !utils.ValidateImageFileType(w, header) {
			return
		}
		path, err := filemgr.SaveProductImage(header)
		if err != nil {
			log.Println("UploadProductImages save error:", err)
			http.Error(w, "Failed to save image", http.StatusInternalServerError)
			return
		}
		saved = append(saved, path)
	}

	_, err := db.ProductCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{"images": bson.M{"$each": saved}}},
	)
	if err != nil {
		log.Println("UploadProductImages update error:", err)
		http.Error(w, "Failed to attach images", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"status": "uploaded", "images": saved})
}
