package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/kvbuilders/app/config"
)

// Connect builds a pooled MongoDB client from central config and verifies
// connectivity with a ping against the primary.
func Connect(cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	if cfg.URI == "" {
		return nil, nil, fmt.Errorf("mongo uri is empty")
	}
	if cfg.DBName == "" {
		return nil, nil, fmt.Errorf("mongo dbname is empty")
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(connectTimeout(cfg)).
		SetServerSelectionTimeout(selectTimeout(cfg))

	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	if cfg.MinPoolSize > 0 {
		opts.SetMinPoolSize(cfg.MinPoolSize)
	}
	if cfg.MaxIdleTimeMs > 0 {
		opts.SetMaxConnIdleTime(time.Duration(cfg.MaxIdleTimeMs) * time.Millisecond)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout(cfg))
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect failed: %w", err)
	}

	pingCtx, cancelPing := context.WithTimeout(context.Background(), selectTimeout(cfg))
	defer cancelPing()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	return client, client.Database(cfg.DBName), nil
}

// Disconnect closes the client with a bounded shutdown window.
func Disconnect(client *mongo.Client) error {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongo disconnect failed: %w", err)
	}
	return nil
}

func connectTimeout(cfg config.MongoConfig) time.Duration {
	if cfg.ConnectTimeoutS <= 0 {
		return 10 * time.Second
	}
	return time.Duration(cfg.ConnectTimeoutS) * time.Second
}

func selectTimeout(cfg config.MongoConfig) time.Duration {
	if cfg.SelectTimeoutS <= 0 {
		return 10 * time.Second
	}
	return time.Duration(cfg.SelectTimeoutS) * time.Second
}
