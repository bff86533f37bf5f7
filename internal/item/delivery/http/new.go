package http

import (
	"inventory-management-api/internal/item"
	"inventory-management-api/pkg/log"
)

type handler struct {
	l  log.Logger
	uc item.UseCase
	// exposeErrors puts internal error text into 500 responses; off in production.
	exposeErrors bool
}

// New creates a new HTTP handler for the item domain.
func New(l log.Logger, uc item.UseCase, exposeErrors bool) *handler {
	return &handler{
		l:            l,
		uc:           uc,
		exposeErrors: exposeErrors,
	}
}
