package log_test

import (
	"context"
	"testing"

	"inventory-management-api/pkg/log"
)

func TestRequestID(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		if got := log.RequestID(context.Background()); got != "" {
			t.Errorf("expected empty request id, got %q", got)
		}
	})

	t.Run("Stored", func(t *testing.T) {
		ctx := log.WithRequestID(context.Background(), "req-1")
		if got := log.RequestID(ctx); got != "req-1" {
			t.Errorf("expected req-1, got %q", got)
		}
	})
}

func TestInit(t *testing.T) {
	// Unknown level and encoding must not panic.
	l := log.Init(log.ZapConfig{Level: "loud", Mode: "debug", Encoding: "weird"})
	l.Infof(log.WithRequestID(context.Background(), "abc"), "hello %s", "world")

	p := log.Init(log.ZapConfig{Level: "error", Mode: log.ModeProduction, Encoding: log.EncodingJSON})
	p.Debug(context.Background(), "dropped")

	log.NewNop().Error(context.Background(), "nothing")
}
