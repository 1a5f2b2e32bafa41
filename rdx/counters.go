package rdx

import (
	"log"
	"strconv"
	"strings"
	"time"

	"sudrsya/db"
	"sudrsya/globals"

	"go.mongodb.org/mongo-driver/bson"
)

// Product view and WhatsApp click counters are buffered in Redis and flushed
// to the product documents in bulk. Increments are fire-and-forget: failures
// are logged, never retried, never surfaced to the shopper.

// BufferView records one product detail view.
func BufferView(productID string) {
	if err := Conn.Incr(globals.Ctx, "views:count:"+productID).Err(); err != nil {
		log.Println("BufferView increment error:", err)
	}
}

// BufferWhatsappClick records one checkout handoff click for a product.
func BufferWhatsappClick(productID string) {
	if err := Conn.Incr(globals.Ctx, "waclicks:count:"+productID).Err(); err != nil {
		log.Println("BufferWhatsappClick increment error:", err)
	}
}

// FlushCounters periodically drains the buffered counters into MongoDB.
// Run it as a background goroutine.
func FlushCounters() {
	ticker := time.NewTicker(30 * time.Second)
	for range ticker.C {
		flushCounterKeys("views:count:*", "viewsCount")
		flushCounterKeys("waclicks:count:*", "whatsappClicks")
	}
}

func flushCounterKeys(pattern, field string) {
	keys, err := Conn.Keys(globals.Ctx, pattern).Result()
	if err != nil {
		log.Println("Redis scan error:", err)
		return
	}

	for _, key := range keys {
		parts := strings.Split(key, ":")
		if len(parts) != 3 {
			log.Println("Invalid counter key format:", key)
			continue
		}
		productID := parts[2]

		countStr, err := Conn.Get(globals.Ctx, key).Result()
		if err != nil {
			log.Println("Redis Get error for key", key, ":", err)
			continue
		}
		count, err := strconv.ParseInt(countStr, 10, 64)
		if err != nil {
			log.Println("Failed to parse counter:", countStr)
			continue
		}
		if count == 0 {
			continue
		}

		_, err = db.ProductCollection.UpdateOne(globals.Ctx,
			bson.M{"_id": productID},
			bson.M{"$inc": bson.M{field: count}},
		)
		if err != nil {
			log.Println("MongoDB counter update error for", productID, ":", err)
			continue
		}

		if err := Conn.Del(globals.Ctx, key).Err(); err != nil {
			log.Println("Failed to delete counter key:", key)
		}
	}
}
