package main

import (
	"context"
	"fmt"

	"inventory-management-api/config"
	"inventory-management-api/internal/item/repository"
	"inventory-management-api/internal/item/repository/memory"
	mongoRepo "inventory-management-api/internal/item/repository/mongo"
	"inventory-management-api/pkg/log"
	pkgMongo "inventory-management-api/pkg/mongo"
)

// openItemStore builds the configured item repository. The returned func
// releases the underlying connection.
func openItemStore(ctx context.Context, cfg *config.Config, l log.Logger) (repository.Repository, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		l.Warn(ctx, "Using in-memory item store: data is lost on restart")
		return memory.New(l), func() {}, nil

	case config.StoreDriverMongo:
		client, err := pkgMongo.Connect(ctx, pkgMongo.Config{
			URI:            cfg.Mongo.URI,
			Database:       cfg.Mongo.Database,
			ConnectTimeout: cfg.Mongo.ConnectTimeout,
			ConnectRetries: cfg.Mongo.ConnectRetries,
			RetryBaseDelay: cfg.Mongo.RetryBaseDelay,
			RetryMaxDelay:  cfg.Mongo.RetryMaxDelay,
		}, l)
		if err != nil {
			return nil, nil, err
		}

		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				l.Errorf(context.Background(), "MongoDB disconnect: %v", err)
			}
		}

		if err := mongoRepo.EnsureIndexes(ctx, client.Database(), cfg.Mongo.Collection); err != nil {
			closeFn()
			return nil, nil, err
		}

		repo := mongoRepo.New(client.Database(), client, mongoRepo.Options{
			Collection: cfg.Mongo.Collection,
			OpTimeout:  cfg.Mongo.OpTimeout,
		}, l)
		return repo, closeFn, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
