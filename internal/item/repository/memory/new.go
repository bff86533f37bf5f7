package memory

import (
	"fmt"
	"sync"
	"time"

	"inventory-management-api/internal/item"
	"inventory-management-api/internal/item/repository"
	"inventory-management-api/pkg/log"
)

type implRepository struct {
	mu    sync.RWMutex
	items map[string]item.Item
	seq   map[string]uint64
	next  uint64
	now   func() time.Time
	l     log.Logger
}

// Option customizes the in-memory repository.
type Option func(*implRepository)

// WithClock replaces time.Now, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(r *implRepository) { r.now = now }
}

// New creates an in-memory Repository. Data lives for the life of the process.
func New(l log.Logger, opts ...Option) repository.Repository {
	r := &implRepository{
		items: make(map[string]item.Item),
		seq:   make(map[string]uint64),
		now:   time.Now,
		l:     l,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/memory.%s", method)
}
