package database

import (
	"context"
	"fmt"
	"time"

	"student-recommendation-platform/config"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// NewMongoConnection opens a MongoDB client and verifies the connection with a ping.
// The caller owns the client and must disconnect it during shutdown.
func NewMongoConnection(cfg config.MongoConfig) (*mongo.Client, error) {
	if cfg.URI == "" || cfg.DBName == "" {
		return nil, fmt.Errorf("MONGO_URI and MONGO_DB_NAME must be set")
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logrus.Info("Successfully connected to MongoDB")

	return client, nil
}

// Disconnect closes the MongoDB client.
func Disconnect(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		logrus.Errorf("Failed to disconnect MongoDB: %v", err)
	}
}
