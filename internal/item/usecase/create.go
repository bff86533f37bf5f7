package usecase

import (
	"context"
	"strings"

	"inventory-management-api/internal/item"
	repo "inventory-management-api/internal/item/repository"
)

// Create persists a new Item.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateItemInput) (item.CreateItemOutput, error) {
	it, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Name:     strings.TrimSpace(input.Name),
		Quantity: input.Quantity,
		Price:    input.Price,
		Category: input.Category,
	})
	if err != nil {
		return item.CreateItemOutput{}, uc.mapRepoError(ctx, "Create", err)
	}

	uc.l.Debugf(ctx, "uc.Create: item %s created", it.ID)
	return item.CreateItemOutput{Item: it}, nil
}
