package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/teemow/meetfewer/internal/instrumentation"
	"github.com/teemow/meetfewer/internal/schedule"
)

// ServerContext holds the shared state for the MCP server: the calendar
// store, the planner that runs scheduling computations on top of it, and
// the optional instrumentation hooks used by tool handlers.
type ServerContext struct {
	ctx         context.Context
	cancel      context.CancelFunc
	store       *schedule.Store
	planner     *schedule.Planner
	metrics     *instrumentation.Metrics
	auditLogger *instrumentation.AuditLogger
	mu          sync.RWMutex
	shutdown    bool
}

// NewServerContext creates a new server context over the given store.
func NewServerContext(ctx context.Context, store *schedule.Store) (*ServerContext, error) {
	if store == nil {
		return nil, fmt.Errorf("store is required")
	}

	shutdownCtx, cancel := context.WithCancel(ctx)

	return &ServerContext{
		ctx:      shutdownCtx,
		cancel:   cancel,
		store:    store,
		planner:  schedule.NewPlanner(store),
		shutdown: false,
	}, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Store returns the calendar store.
func (sc *ServerContext) Store() *schedule.Store {
	return sc.store
}

// Planner returns the scheduling planner.
func (sc *ServerContext) Planner() *schedule.Planner {
	return sc.planner
}

// Metrics returns the metrics recorder, or nil if instrumentation
// is not configured.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetMetrics sets the metrics recorder used by tool handlers.
func (sc *ServerContext) SetMetrics(m *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = m
}

// AuditLogger returns the audit logger, or nil if audit logging
// is not configured.
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// SetAuditLogger sets the audit logger used by tool handlers.
func (sc *ServerContext) SetAuditLogger(al *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.auditLogger = al
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
