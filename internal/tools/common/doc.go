// Package common provides shared utilities for MCP tool implementations.
//
// It contains the instrumentation wrappers that record tool invocation
// metrics and audit logs around handlers, and argument parsing helpers
// for the conventions shared by all scheduling tools: comma-separated
// participant lists, RFC 3339 timestamps, and numeric arguments that
// arrive as float64 from JSON.
package common
