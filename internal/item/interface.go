package item

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context) (ListItemsOutput, error)
	Detail(ctx context.Context, id string) (DetailItemOutput, error)
	Create(ctx context.Context, input CreateItemInput) (CreateItemOutput, error)
	Replace(ctx context.Context, input ReplaceItemInput) (ReplaceItemOutput, error)
	Patch(ctx context.Context, input PatchItemInput) (PatchItemOutput, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, input SearchItemsInput) (SearchItemsOutput, error)
}
