package database

import (
	"context"
	"fmt"

	"github.com/MSSkowron/registrar/pkg/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoDatabase holds a MongoDB client bound to a single database.
type MongoDatabase struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoDatabase connects to MongoDB at uri and verifies the connection with a ping
// before returning, so a failure surfaces to the caller instead of only being logged.
func NewMongoDatabase(ctx context.Context, uri, dbName string) (*MongoDatabase, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to check database connection: %w", err)
	}

	logger.Info("Connected to MongoDB")

	return &MongoDatabase{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// Collection returns a handle for the named collection.
func (mdb *MongoDatabase) Collection(name string) *mongo.Collection {
	return mdb.db.Collection(name)
}

// Close disconnects the client.
func (mdb *MongoDatabase) Close(ctx context.Context) error {
	if err := mdb.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
