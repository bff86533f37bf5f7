package usecase

import (
	"context"
	"strings"

	"inventory-management-api/internal/item"
	repo "inventory-management-api/internal/item/repository"
)

// List returns every Item, newest first.
func (uc *implUseCase) List(ctx context.Context) (item.ListItemsOutput, error) {
	items, err := uc.repo.ListItems(ctx)
	if err != nil {
		return item.ListItemsOutput{}, uc.mapRepoError(ctx, "List", err)
	}
	return item.ListItemsOutput{Items: items}, nil
}

// Search returns Items whose name or category contains the query, newest first.
func (uc *implUseCase) Search(ctx context.Context, input item.SearchItemsInput) (item.SearchItemsOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return item.SearchItemsOutput{}, item.ErrEmptyQuery
	}

	items, err := uc.repo.SearchItems(ctx, repo.SearchItemsOptions{Query: query})
	if err != nil {
		return item.SearchItemsOutput{}, uc.mapRepoError(ctx, "Search", err)
	}
	return item.SearchItemsOutput{Items: items}, nil
}
