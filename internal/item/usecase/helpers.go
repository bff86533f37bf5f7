package usecase

import (
	"context"
	"errors"
	"fmt"

	"inventory-management-api/internal/item"
	repo "inventory-management-api/internal/item/repository"
)

// mapRepoError translates repository failures into domain errors. Unknown errors are
// logged and returned unchanged.
func (uc *implUseCase) mapRepoError(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return item.ErrItemNotFound
	case errors.Is(err, repo.ErrEmptyQuery):
		return item.ErrEmptyQuery
	case errors.Is(err, repo.ErrInvalidRecord):
		// still matches item.ErrValidation through the wrapped ValidationError
		return err
	case errors.Is(err, repo.ErrUnavailable):
		uc.l.Warnf(ctx, "uc.%s: %v", op, err)
		return fmt.Errorf("%w: %v", item.ErrStoreUnavailable, err)
	default:
		uc.l.Errorf(ctx, "uc.%s: %v", op, err)
		return err
	}
}
