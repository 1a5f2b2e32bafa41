package settings

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
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The storefront has exactly one settings record.
const settingsID = "global"

const cacheKey = "settings:global"
const cacheTTL = 60 * time.Second

func defaults() models.GlobalSettings {
	return models.GlobalSettings{Buy2Get1Enabled: true}
}

// Fetch returns the global settings, reading through a short-TTL Redis cache
// so the pricing path works on resident state. A missing record or any read
// failure degrades to the defaults, never an error.
func Fetch(ctx context.Context) models.GlobalSettings {
	if cached, err := rdx.Conn.Get(ctx, cacheKey).Result(); err == nil {
		var s models.GlobalSettings
		if json.Unmarshal([]byte(cached), &s) == nil {
			return s
		}
	}

	var s models.GlobalSettings
	err := db.SettingsCollection.FindOne(ctx, bson.M{"_id": settingsID}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		s = defaults()
	} else if err != nil {
		log.Println("settings fetch error, using defaults:", err)
		return defaults()
	}

	if data, err := json.Marshal(s); err == nil {
		if err := rdx.Conn.Set(ctx, cacheKey, data, cacheTTL).Err(); err != nil {
			log.Println("settings cache write error:", err)
		}
	}
	return s
}

// GetSettings returns the global settings record.
func GetSettings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	utils.RespondWithJSON(w, http.StatusOK, Fetch(ctx))
}

// UpdateSettings merges the supplied fields into the settings record (admin
// only) and drops the cache so the next fetch sees the new values.
func UpdateSettings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var partial map[string]any
	if err := json.NewDecoder(r.Body).Decode(&partial); err != nil || len(partial) == 0 {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	allowed := map[string]bool{"buy2get1Enabled": true}
	update := bson.M{}
	for k, v := range partial {
		if !allowed[k] {
			http.Error(w, "Unknown setting: "+k, http.StatusBadRequest)
			return
		}
		if _, ok := v.(bool); !ok {
			http.Error(w, "Setting "+k+" must be a boolean", http.StatusBadRequest)
			return
		}
		update[k] = v
	}

	opts := options.Update().SetUpsert(true)
	_, err := db.SettingsCollection.UpdateOne(ctx,
		bson.M{"_id": settingsID},
		bson.M{"$set": update},
		opts,
	)
	if err != nil {
		log.Println("UpdateSettings error:", err)
		http.Error(w, "Failed to update settings", http.StatusInternalServerError)
		return
	}

	if err := rdx.Conn.Del(ctx, cacheKey).Err(); err != nil {
		log.Println("settings cache invalidate error:", err)
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}
