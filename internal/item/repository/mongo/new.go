package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inventory-management-api/internal/item/repository"
	"inventory-management-api/pkg/log"
)

const DefaultCollection = "items"

// Pinger reports whether the backing server is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options configures the MongoDB-backed Repository.
type Options struct {
	Collection string
	OpTimeout  time.Duration
}

type implRepository struct {
	coll      *mongodriver.Collection
	pinger    Pinger
	opTimeout time.Duration
	now       func() time.Time
	l         log.Logger
}

// New creates a MongoDB-backed Repository on db. pinger is used for readiness checks.
func New(db *mongodriver.Database, pinger Pinger, opt Options, l log.Logger) repository.Repository {
	if db == nil {
		panic("item/repository/mongo: db is required")
	}
	if opt.Collection == "" {
		opt.Collection = DefaultCollection
	}
	if opt.OpTimeout <= 0 {
		opt.OpTimeout = 5 * time.Second
	}
	return &implRepository{
		coll:      db.Collection(opt.Collection),
		pinger:    pinger,
		opTimeout: opt.OpTimeout,
		now:       time.Now,
		l:         l,
	}
}

// EnsureIndexes creates the index backing newest-first listing.
func EnsureIndexes(ctx context.Context, db *mongodriver.Database, collection string) error {
	if collection == "" {
		collection = DefaultCollection
	}
	_, err := db.Collection(collection).Indexes().CreateOne(ctx, mongodriver.IndexModel{
		Keys:    bson.D{{Key: fieldCreatedAt, Value: -1}, {Key: fieldID, Value: -1}},
		Options: options.Index().SetName("createdAt_desc"),
	})
	if err != nil {
		return fmt.Errorf("item/repository/mongo.EnsureIndexes: %w", err)
	}
	return nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/mongo.%s", method)
}

func (r *implRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.opTimeout)
}
