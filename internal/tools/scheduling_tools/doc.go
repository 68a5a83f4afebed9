// Package scheduling_tools provides MCP tools for the scheduling engine:
// meeting lifecycle (create, cancel, reschedule, list), participant
// directory management, timezone-aware slot search, conflict detection,
// workload balancing, and meeting effectiveness analysis.
//
// All timestamps cross the tool boundary in RFC 3339 format. Conflicts
// are advisory throughout: tools report them but never refuse to
// schedule because of them.
package scheduling_tools
