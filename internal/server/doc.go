// Package server provides the MCP server context, the Streamable HTTP
// transport, and the operational endpoints for the meetfewer application.
//
// # Key Components
//
// ServerContext holds the calendar store and planner shared by all tool
// handlers, along with optional metrics and audit logging hooks. It owns
// a cancellable context that is torn down on shutdown.
//
// HTTPServer wraps an MCP server with the Streamable HTTP transport on
// /mcp and registers the health endpoints. When metrics are configured,
// requests to the MCP endpoint are recorded with method, path, status,
// and duration.
//
// HealthChecker serves Kubernetes-style probes:
//   - /healthz: liveness, always ok while the process runs
//   - /readyz: readiness, fails during shutdown
//   - /healthz/detailed: uptime plus participant and meeting counts
//
// MetricsServer serves Prometheus metrics on a dedicated port, isolated
// from MCP traffic. StartWithReadySignal confirms the listener is bound
// before the caller proceeds, so a failed bind surfaces at startup
// instead of as missing scrapes.
package server
