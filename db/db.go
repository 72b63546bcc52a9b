package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UsersCollection      *mongo.Collection
	StaffCollection      *mongo.Collection
	AttendanceCollection *mongo.Collection
	OrdersCollection     *mongo.Collection
	RoomsCollection      *mongo.Collection
	ServicesCollection   *mongo.Collection
	MinimartCollection   *mongo.Collection
	ActivitiesCollection *mongo.Collection
	AuditCollection      *mongo.Collection
	Client               *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("hoteldb")
	UsersCollection = database.Collection("users")
	StaffCollection = database.Collection("staff_members")
	AttendanceCollection = database.Collection("staff_attendance")
	OrdersCollection = database.Collection("orders")
	RoomsCollection = database.Collection("rooms")
	ServicesCollection = database.Collection("services")
	MinimartCollection = database.Collection("mini_mart_items")
	ActivitiesCollection = database.Collection("activities_hotel")
	AuditCollection = database.Collection("audit_trail")
}
