package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

var errNilMongoClient = errors.New("mongodb client is nil")

// Config represents the mongodb connection options.
type Config struct {
	URI  string `yaml:"uri" mapstructure:"uri" default:"mongodb://localhost:27017"`
	Name string `yaml:"name" mapstructure:"name" default:"meridian"`
}

// Client wraps a mongo connection scoped to one database.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewClient connects to mongodb and verifies the connection with a ping.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("error connecting to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("error pinging mongodb: %w", err)
	}

	return &Client{
		client: client,
		db:     client.Database(cfg.Name),
	}, nil
}

func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
