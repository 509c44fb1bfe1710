package client

import (
	"context"
	"fmt"
	"time"

	"radar/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Client holds the external connections a service opened at startup.
type Client struct {
	Mongo *mongo.Client
}

func NewClient() *Client {
	return &Client{}
}

// ConnectMongo dials and pings MongoDB. Leads are only ever read, so
// secondaries are preferred when the deployment has them.
func (c *Client) ConnectMongo(ctx context.Context, log *logger.Logger, mongoURI string, connTimeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(mongoURI).
		SetReadPreference(readpref.SecondaryPreferred()).
		SetAppName("radar-leads")

	mc, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := mc.Ping(ctx, nil); err != nil {
		_ = mc.Disconnect(context.Background())
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Info("Successfully connected to MongoDB")
	c.Mongo = mc
	return nil
}

// GracefulShutdown closes every open connection.
func (c *Client) GracefulShutdown(ctx context.Context, log *logger.Logger) {
	if c.Mongo == nil {
		return
	}
	if err := c.Mongo.Disconnect(ctx); err != nil {
		log.Error("Failed to disconnect from MongoDB", "error", err)
		return
	}
	log.Info("Disconnected from MongoDB")
}
