package db

import (
	"context"
	"log"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ProductCollection  *mongo.Collection
	CouponCollection   *mongo.Collection
	SettingsCollection *mongo.Collection
	CartCollection     *mongo.Collection
	Client             *mongo.Client
)

// Init connects to MongoDB and wires up the storefront collections.
func Init() {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "sudrsya"
	}

	ProductCollection = Client.Database(dbName).Collection("products")
	CouponCollection = Client.Database(dbName).Collection("coupons")
	SettingsCollection = Client.Database(dbName).Collection("settings")
	CartCollection = Client.Database(dbName).Collection("carts")
}
