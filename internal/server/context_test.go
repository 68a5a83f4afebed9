package server

import (
	"context"
	"testing"

	"github.com/teemow/meetfewer/internal/schedule"
)

func newTestContext(t *testing.T) *ServerContext {
	t.Helper()

	sc, err := NewServerContext(context.Background(), schedule.NewStore())
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func TestNewServerContext(t *testing.T) {
	sc := newTestContext(t)

	if sc.Store() == nil {
		t.Error("Store() returned nil")
	}
	if sc.Planner() == nil {
		t.Error("Planner() returned nil")
	}
	if sc.Context() == nil {
		t.Error("Context() returned nil")
	}
	if sc.IsShutdown() {
		t.Error("new context should not be shutdown")
	}
}

func TestNewServerContext_RequiresStore(t *testing.T) {
	if _, err := NewServerContext(context.Background(), nil); err == nil {
		t.Error("expected error for nil store")
	}
}

func TestServerContext_Shutdown(t *testing.T) {
	sc := newTestContext(t)

	if err := sc.Shutdown(); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if !sc.IsShutdown() {
		t.Error("IsShutdown() should be true after Shutdown()")
	}

	// Context should be cancelled
	select {
	case <-sc.Context().Done():
	default:
		t.Error("context should be cancelled after Shutdown()")
	}

	// Second shutdown is a no-op
	if err := sc.Shutdown(); err != nil {
		t.Errorf("second Shutdown() error = %v", err)
	}
}

func TestServerContext_MetricsAndAuditLogger(t *testing.T) {
	sc := newTestContext(t)

	if sc.Metrics() != nil {
		t.Error("Metrics() should be nil before SetMetrics")
	}
	if sc.AuditLogger() != nil {
		t.Error("AuditLogger() should be nil before SetAuditLogger")
	}

	provider := createTestProvider(t)
	sc.SetMetrics(provider.Metrics())
	if sc.Metrics() == nil {
		t.Error("Metrics() should be non-nil after SetMetrics")
	}
}
