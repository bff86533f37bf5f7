// Package mongo owns the process-wide MongoDB connection: it dials with bounded
// exponential backoff and exposes the handle that repositories are built on.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"inventory-management-api/pkg/jitter"
	"inventory-management-api/pkg/log"
)

const DefaultConnectTimeout = 10 * time.Second

// Config holds connection parameters.
type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
	ConnectRetries int
	RetryBaseDelay time.Duration
	RetryMaxDelay  time.Duration
}

// Client wraps a connected driver client and the selected database.
type Client struct {
	client *mongodriver.Client
	db     *mongodriver.Database
	cfg    Config
	l      log.Logger
}

// Connect dials MongoDB and pings the primary. Failed attempts are retried up to
// cfg.ConnectRetries times with jittered exponential backoff.
func Connect(ctx context.Context, cfg Config, l log.Logger) (*Client, error) {
	if cfg.URI == "" {
		return nil, errors.New("pkg/mongo.Connect: uri is required")
	}
	if cfg.Database == "" {
		return nil, errors.New("pkg/mongo.Connect: database is required")
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = DefaultConnectTimeout
	}

	for attempt := 0; ; attempt++ {
		c, err := dial(ctx, cfg)
		if err == nil {
			l.Infof(ctx, "MongoDB connected: database=%s", cfg.Database)
			return &Client{client: c, db: c.Database(cfg.Database), cfg: cfg, l: l}, nil
		}
		if attempt >= cfg.ConnectRetries {
			return nil, fmt.Errorf("pkg/mongo.Connect: giving up after %d attempt(s): %w", attempt+1, err)
		}

		delay := jitter.ExponentialBackoff(cfg.RetryBaseDelay, cfg.RetryMaxDelay, attempt, jitter.DefaultJitter)
		l.Warnf(ctx, "MongoDB connection attempt %d failed: %v (retrying in %s)", attempt+1, err, delay)

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("pkg/mongo.Connect: %w", ctx.Err())
		case <-time.After(delay):
		}
	}
}

func dial(ctx context.Context, cfg Config) (*mongodriver.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	c, err := mongodriver.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := c.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = c.Disconnect(context.Background())
		return nil, err
	}
	return c, nil
}

// Database returns the configured database.
func (c *Client) Database() *mongodriver.Database {
	return c.db
}

// Ping checks that the primary is reachable within the connect timeout.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.ConnectTimeout)
	defer cancel()
	return c.client.Ping(ctx, readpref.Primary())
}

// Disconnect closes every pooled connection.
func (c *Client) Disconnect(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("pkg/mongo.Disconnect: %w", err)
	}
	c.l.Info(ctx, "MongoDB disconnected")
	return nil
}
