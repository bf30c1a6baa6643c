package db

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used across the stores.
const (
	UsersCollection         = "users"
	ProfilesCollection      = "user_profiles"
	DailyLogsCollection     = "daily_logs"
	WeightEntriesCollection = "weight_entries"
)

// Mongo is the process-wide database handle. It is acquired once at startup
// and passed explicitly into every store; nothing reads it as a global.
type Mongo struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// Collection returns a collection by name
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.Database.Collection(name)
}

// extractDBName parses the database name from the URI, defaulting to "wellness"
func extractDBName(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "wellness"
	}
	if u.Path != "" && u.Path != "/" {
		return u.Path[1:] // Trim leading '/'
	}
	return "wellness"
}

// Connect establishes a connection to MongoDB using the provided URI
func Connect(uri string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Verify connection with a ping
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	dbName := extractDBName(uri)
	log.Printf("Using database: %s", dbName)

	return &Mongo{
		Client:   client,
		Database: client.Database(dbName),
	}, nil
}

// EnsureIndexes creates the uniqueness constraints the stores rely on: one
// daily log per (user, date) and one account per email.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	logIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := m.Collection(DailyLogsCollection).Indexes().CreateOne(ctx, logIndex); err != nil {
		return fmt.Errorf("failed to create daily log index: %w", err)
	}

	emailIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := m.Collection(UsersCollection).Indexes().CreateOne(ctx, emailIndex); err != nil {
		return fmt.Errorf("failed to create user email index: %w", err)
	}

	return nil
}

// Disconnect closes the underlying client.
func (m *Mongo) Disconnect(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
