package usecase_test

import (
	"context"

	"inventory-management-api/internal/item"
	"inventory-management-api/internal/item/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// failingRepo returns err from every call.
type failingRepo struct {
	err error
}

func (r *failingRepo) ListItems(ctx context.Context) ([]item.Item, error) { return nil, r.err }
func (r *failingRepo) GetOneItem(ctx context.Context, id string) (item.Item, error) {
	return item.Item{}, r.err
}
func (r *failingRepo) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (item.Item, error) {
	return item.Item{}, r.err
}
func (r *failingRepo) ReplaceItem(ctx context.Context, opt repository.ReplaceItemOptions) (item.Item, error) {
	return item.Item{}, r.err
}
func (r *failingRepo) PatchItem(ctx context.Context, opt repository.PatchItemOptions) (item.Item, error) {
	return item.Item{}, r.err
}
func (r *failingRepo) DeleteItem(ctx context.Context, id string) error { return r.err }
func (r *failingRepo) SearchItems(ctx context.Context, opt repository.SearchItemsOptions) ([]item.Item, error) {
	return nil, r.err
}
func (r *failingRepo) Ping(ctx context.Context) error { return r.err }
