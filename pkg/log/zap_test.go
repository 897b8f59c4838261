package log_test

import (
	"context"
	"testing"

	"smart-pto/pkg/log"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	if got := log.RequestID(ctx); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}

	ctx = log.WithRequestID(ctx, "req-1")
	if got := log.RequestID(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
}

func TestInitDoesNotPanic(t *testing.T) {
	for _, enc := range []string{"console", "json"} {
		l := log.Init(log.ZapConfig{Level: "info", Mode: "debug", Encoding: enc})
		l.Infof(log.WithRequestID(context.Background(), "abc"), "hello %s", enc)
		l.Debug(context.Background(), "filtered out")
	}
	log.NewNop().Error(context.Background(), "discarded")
}
