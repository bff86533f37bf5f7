package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"inventory-management-api/internal/item"
	repo "inventory-management-api/internal/item/repository"
)

// ListItems returns every Item, newest first.
func (r *implRepository) ListItems(ctx context.Context) ([]item.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(func(item.Item) bool { return true }), nil
}

func (r *implRepository) GetOneItem(ctx context.Context, id string) (item.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	it, ok := r.items[id]
	if !ok {
		return item.Item{}, repo.ErrNotFound
	}
	return it, nil
}

func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	now := r.now().UTC()
	it := item.Item{
		ID:        uuid.NewString(),
		Name:      opt.Name,
		Quantity:  opt.Quantity,
		Price:     opt.Price,
		Category:  item.CategoryOrDefault(opt.Category),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := it.Check(); err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return item.Item{}, fmt.Errorf("%w: %w", repo.ErrInvalidRecord, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	r.items[it.ID] = it
	r.seq[it.ID] = r.next
	return it, nil
}

func (r *implRepository) ReplaceItem(ctx context.Context, opt repo.ReplaceItemOptions) (item.Item, error) {
	return r.update(ctx, "ReplaceItem", opt.ID, func(it item.Item) item.Item {
		it.Name = opt.Name
		it.Quantity = opt.Quantity
		it.Price = opt.Price
		it.Category = item.CategoryOrDefault(opt.Category)
		return it
	})
}

func (r *implRepository) PatchItem(ctx context.Context, opt repo.PatchItemOptions) (item.Item, error) {
	return r.update(ctx, "PatchItem", opt.ID, opt.Apply)
}

func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.items, id)
	delete(r.seq, id)
	return nil
}

func (r *implRepository) SearchItems(ctx context.Context, opt repo.SearchItemsOptions) ([]item.Item, error) {
	q := strings.ToLower(strings.TrimSpace(opt.Query))
	if q == "" {
		return nil, repo.ErrEmptyQuery
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(func(it item.Item) bool {
		return strings.Contains(strings.ToLower(it.Name), q) ||
			strings.Contains(strings.ToLower(it.Category), q)
	}), nil
}

func (r *implRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}

// update applies mutate under the write lock and refreshes UpdatedAt.
func (r *implRepository) update(ctx context.Context, method, id string, mutate func(item.Item) item.Item) (item.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[id]
	if !ok {
		return item.Item{}, repo.ErrNotFound
	}

	it := mutate(existing)
	it.ID = existing.ID
	it.CreatedAt = existing.CreatedAt
	it.UpdatedAt = r.now().UTC()
	if it.UpdatedAt.Before(it.CreatedAt) {
		it.UpdatedAt = it.CreatedAt
	}
	if err := it.Check(); err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn(method), err)
		return item.Item{}, fmt.Errorf("%w: %w", repo.ErrInvalidRecord, err)
	}

	r.items[id] = it
	return it, nil
}

// sorted returns matching items ordered by CreatedAt desc; insertion order breaks ties.
// Callers must hold the read lock.
func (r *implRepository) sorted(match func(item.Item) bool) []item.Item {
	items := make([]item.Item, 0, len(r.items))
	for _, it := range r.items {
		if match(it) {
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return r.seq[items[i].ID] > r.seq[items[j].ID]
	})
	return items
}
