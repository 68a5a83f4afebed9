// Package logging provides structured logging utilities for the meetfewer application.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - PII sanitization (participant-ID anonymization)
//   - Consistent attribute naming across the codebase
//   - Logger adapter interface for flexibility
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "schedule.create")
//	logger.Info("meeting created",
//	    logging.Status("success"))
//
// Sanitize sensitive data before logging:
//
//	logger.Info("conflict check",
//	    logging.ParticipantHash(id))
//
// # Security Considerations
//
// Participant IDs are usually email addresses; they are hashed before
// logging to prevent PII leakage while still allowing correlation.
package logging
