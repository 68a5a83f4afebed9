package instrumentation

import "strings"

// Cardinality management helpers for metrics.
// These functions reduce high-cardinality label values to prevent metrics explosion.
//
// # Warning
//
// High cardinality in metrics can cause:
// - Increased memory usage in Prometheus/metrics backends
// - Slower query performance
// - Higher storage costs
//
// Always use these helpers when recording metrics with participant identifiers.

// ExtractParticipantDomain extracts the domain part from an email-shaped
// participant ID. This reduces cardinality by using the domain instead of
// the full address.
//
// Example:
//
//	ExtractParticipantDomain("jane@example.com")  // "example.com"
//	ExtractParticipantDomain("alice@company.com") // "company.com"
//	ExtractParticipantDomain("invalid")           // "unknown"
//	ExtractParticipantDomain("")                  // "unknown"
func ExtractParticipantDomain(id string) string {
	if id == "" {
		return "unknown"
	}

	parts := strings.Split(id, "@")
	if len(parts) == 2 && parts[1] != "" {
		return parts[1]
	}

	return "unknown"
}

// Common operation names for scheduling engine metrics.
// Status constants are defined in config.go.
const (
	OperationCreate          = "create"
	OperationRemove          = "remove"
	OperationReschedule      = "reschedule"
	OperationList            = "list"
	OperationFindSlots       = "find_slots"
	OperationDetectConflicts = "detect_conflicts"
	OperationWorkload        = "workload"
	OperationEffectiveness   = "effectiveness"
	OperationPatterns        = "patterns"
	OperationOptimize        = "optimize"
	OperationAgenda          = "agenda"
)
