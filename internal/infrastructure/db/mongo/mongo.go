package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sun-min-kim/TaskManagementAPI/internal/infrastructure/config"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultDatabase = "task_management"
	appName         = "task-management-api"
)

// clientOptions translates the service configuration into driver options.
func clientOptions(cfg config.MongoConfig) *options.ClientOptions {
	return options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName)
}

// databaseName falls back to the service default when the configuration
// leaves the database unset.
func databaseName(cfg config.MongoConfig) string {
	if cfg.Database == "" {
		return defaultDatabase
	}
	return cfg.Database
}

// Connect establishes the MongoDB client for the task store, verifies
// connectivity with a ping, and returns the client together with the
// service database.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions(cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(databaseName(cfg)), nil
}
