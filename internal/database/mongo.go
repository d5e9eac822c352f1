package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Config struct {
	URI      string
	Database string
}

type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func New(ctx context.Context, config Config) (*DB, error) {
	clientOpts := options.Client().
		ApplyURI(config.URI).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	return &DB{
		Client:   client,
		Database: client.Database(config.Database),
	}, nil
}

// NewWithBackoff connects and pings, retrying with exponential backoff.
func NewWithBackoff(ctx context.Context, config Config, maxRetries int) (*DB, error) {
	if maxRetries < 1 {
		maxRetries = 1
	}

	db, err := New(ctx, config)
	if err != nil {
		return nil, err
	}

	for i := range maxRetries {
		if i > 0 {
			backoff := time.Duration(1<<uint(i)) * time.Second
			log.Info().Dur("backoff", backoff).Msg("Waiting before MongoDB retry")

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				_ = db.Close(context.Background())
				return nil, ctx.Err()
			}
		}

		log.Info().Int("attempt", i+1).Int("max_retries", maxRetries).Msg("Connecting to MongoDB")

		err = db.Ping(ctx)
		if err == nil {
			log.Info().Int("attempts_needed", i+1).Str("database", config.Database).Msg("MongoDB connected")
			return db, nil
		}

		log.Warn().Err(err).Int("attempt", i+1).Msg("MongoDB ping failed")
	}

	_ = db.Close(context.Background())
	return nil, fmt.Errorf("failed to connect to MongoDB after %d attempts: %w", maxRetries, err)
}

func (db *DB) Collection(name string) *mongo.Collection {
	return db.Database.Collection(name)
}

func (db *DB) Ping(ctx context.Context) error {
	return db.Client.Ping(ctx, readpref.Primary())
}

func (db *DB) Close(ctx context.Context) error {
	return db.Client.Disconnect(ctx)
}
