package usecase

import (
	"context"
	"strings"

	"inventory-management-api/internal/item"
	repo "inventory-management-api/internal/item/repository"
)

// Detail retrieves a single Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (item.DetailItemOutput, error) {
	it, err := uc.repo.GetOneItem(ctx, id)
	if err != nil {
		return item.DetailItemOutput{}, uc.mapRepoError(ctx, "Detail", err)
	}
	return item.DetailItemOutput{Item: it}, nil
}

// Replace overwrites every mutable field of an existing Item.
func (uc *implUseCase) Replace(ctx context.Context, input item.ReplaceItemInput) (item.ReplaceItemOutput, error) {
	it, err := uc.repo.ReplaceItem(ctx, repo.ReplaceItemOptions{
		ID:       input.ID,
		Name:     strings.TrimSpace(input.Name),
		Quantity: input.Quantity,
		Price:    input.Price,
		Category: input.Category,
	})
	if err != nil {
		return item.ReplaceItemOutput{}, uc.mapRepoError(ctx, "Replace", err)
	}
	return item.ReplaceItemOutput{Item: it}, nil
}

// Patch merges the supplied fields into an existing Item.
func (uc *implUseCase) Patch(ctx context.Context, input item.PatchItemInput) (item.PatchItemOutput, error) {
	opt := repo.PatchItemOptions{
		ID:       input.ID,
		Quantity: input.Quantity,
		Price:    input.Price,
		Category: input.Category,
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		opt.Name = &name
	}

	it, err := uc.repo.PatchItem(ctx, opt)
	if err != nil {
		return item.PatchItemOutput{}, uc.mapRepoError(ctx, "Patch", err)
	}
	return item.PatchItemOutput{Item: it}, nil
}

// Delete removes an Item by ID. A second delete of the same ID returns ErrItemNotFound.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		return uc.mapRepoError(ctx, "Delete", err)
	}
	uc.l.Debugf(ctx, "uc.Delete: item %s deleted", id)
	return nil
}
