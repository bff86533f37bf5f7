package repository

import (
	"context"

	"inventory-management-api/internal/item"
)

// Repository is the composed interface for the item data store.
type Repository interface {
	ItemRepository
	Ping(ctx context.Context) error
}

// ItemRepository defines all data access methods for the Item entity.
// Lookups by an id the store cannot parse return ErrNotFound.
type ItemRepository interface {
	ListItems(ctx context.Context) ([]item.Item, error)
	GetOneItem(ctx context.Context, id string) (item.Item, error)
	CreateItem(ctx context.Context, opt CreateItemOptions) (item.Item, error)
	ReplaceItem(ctx context.Context, opt ReplaceItemOptions) (item.Item, error)
	PatchItem(ctx context.Context, opt PatchItemOptions) (item.Item, error)
	DeleteItem(ctx context.Context, id string) error
	SearchItems(ctx context.Context, opt SearchItemsOptions) ([]item.Item, error)
}
