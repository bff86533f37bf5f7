package item

import "time"

// DefaultCategory is stored when an item is saved without a category.
const DefaultCategory = "Uncategorized"

// Item is the inventory record managed by this module.
type Item struct {
	ID        string
	Name      string
	Quantity  float64
	Price     float64
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// --- UseCase Inputs ---

type CreateItemInput struct {
	Name     string
	Quantity float64
	Price    float64
	Category string
}

type ReplaceItemInput struct {
	ID       string
	Name     string
	Quantity float64
	Price    float64
	Category string
}

// PatchItemInput carries only the fields the caller sent; nil means "keep".
type PatchItemInput struct {
	ID       string
	Name     *string
	Quantity *float64
	Price    *float64
	Category *string
}

type SearchItemsInput struct {
	Query string
}

// --- UseCase Outputs ---

type ListItemsOutput struct {
	Items []Item
}

type DetailItemOutput struct {
	Item Item
}

type CreateItemOutput struct {
	Item Item
}

type ReplaceItemOutput struct {
	Item Item
}

type PatchItemOutput struct {
	Item Item
}

type SearchItemsOutput struct {
	Items []Item
}
