package admin

import (
	"context"
	"log"
	"net/http"
	"time"

	"sudrsya/db"
	"sudrsya/models"
	"sudrsya/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type productPerformance struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Views     int64  `json:"views"`
	Clicks    int64  `json:"clicks"`
}

type analyticsData struct {
	TotalViews          int64                `json:"totalViews"`
	TotalWhatsAppClicks int64                `json:"totalWhatsAppClicks"`
	ProductPerformance  []productPerformance `json:"productPerformance"`
}

// GetAnalytics aggregates view and WhatsApp click counters across the catalog
// for the admin dashboard, best performers first.
func GetAnalytics(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "viewsCount", Value: -1}})
	cursor, err := db.ProductCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Println("GetAnalytics Find error:", err)
		http.Error(w, "Failed to fetch analytics", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var list []models.Product
	if err := cursor.All(ctx, &list); err != nil {
		log.Println("GetAnalytics cursor error:", err)
		http.Error(w, "Error processing analytics", http.StatusInternalServerError)
		return
	}

	data := analyticsData{ProductPerformance: []productPerformance{}}
	for _, p := range list {
		data.TotalViews += p.ViewsCount
		data.TotalWhatsAppClicks += p.WhatsappClicks
		data.ProductPerformance = append(data.ProductPerformance, productPerformance{
			ProductID: p.ProductID,
			Name:      p.Name,
			Views:     p.ViewsCount,
			Clicks:    p.WhatsappClicks,
		})
	}

	utils.RespondWithJSON(w, http.StatusOK, data)
}
