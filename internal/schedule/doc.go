// Package schedule implements the meeting-scheduling engine: an in-memory
// calendar store, conflict detection, timezone-aware candidate generation,
// composite slot scoring, workload aggregation, and meeting-effectiveness
// scoring.
//
// All instants are stored and compared in UTC. Local wall-clock time only
// matters when evaluating a participant's working-hour preferences, and is
// always derived through the normalization helpers in timezone.go.
//
// The engine is advisory, not prohibitive: conflicts are reported alongside
// successful results and never block an operation.
package schedule
