package repository

import "inventory-management-api/internal/item"

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
	Name     string
	Quantity float64
	Price    float64
	Category string
}

// ReplaceItemOptions overwrites every mutable field of an Item.
type ReplaceItemOptions struct {
	ID       string
	Name     string
	Quantity float64
	Price    float64
	Category string
}

// PatchItemOptions merges the non-nil fields into an existing Item.
type PatchItemOptions struct {
	ID       string
	Name     *string
	Quantity *float64
	Price    *float64
	Category *string
}

// SearchItemsOptions matches Query against name and category, case-insensitively.
type SearchItemsOptions struct {
	Query string
}

// Apply returns base with the patch merged in. Category is normalized to the default when blank.
func (o PatchItemOptions) Apply(base item.Item) item.Item {
	if o.Name != nil {
		base.Name = *o.Name
	}
	if o.Quantity != nil {
		base.Quantity = *o.Quantity
	}
	if o.Price != nil {
		base.Price = *o.Price
	}
	if o.Category != nil {
		base.Category = item.CategoryOrDefault(*o.Category)
	}
	return base
}
