package middleware

import (
	"inventory-management-api/internal/model"
	"inventory-management-api/pkg/log"
)

// Config holds the cross-cutting HTTP settings.
type Config struct {
	Environment    model.Environment
	AllowedOrigins []string
}

type Middleware struct {
	l   log.Logger
	cfg Config
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:   l,
		cfg: cfg,
	}
}
