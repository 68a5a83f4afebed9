package logging

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
)

// Common log attribute keys for consistent naming across the codebase.
const (
	KeyOperation       = "operation"
	KeyTool            = "tool"
	KeyMeeting         = "meeting_id"
	KeyParticipant     = "participant"
	KeyParticipantHash = "participant_hash"
	KeyDuration        = "duration"
	KeyStatus          = "status"
	KeyError           = "error"
)

// Status values for consistent logging.
// Note: These are intentionally duplicated from instrumentation package
// to avoid circular dependencies (instrumentation imports logging).
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// WithOperation returns a logger with the operation attribute set.
func WithOperation(logger *slog.Logger, operation string) *slog.Logger {
	return logger.With(slog.String(KeyOperation, operation))
}

// WithTool returns a logger with the tool attribute set.
func WithTool(logger *slog.Logger, tool string) *slog.Logger {
	return logger.With(slog.String(KeyTool, tool))
}

// Operation returns a slog attribute for the operation name.
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Tool returns a slog attribute for the tool name.
func Tool(tool string) slog.Attr {
	return slog.String(KeyTool, tool)
}

// MeetingID returns a slog attribute for a meeting identifier.
func MeetingID(id string) slog.Attr {
	return slog.String(KeyMeeting, id)
}

// Status returns a slog attribute for the status.
func Status(status string) slog.Attr {
	return slog.String(KeyStatus, status)
}

// Err returns a slog attribute for an error.
// If err is nil, returns an empty Group attribute that will be omitted from output.
// This allows safely passing Err(maybeNilErr) without adding empty attributes.
//
// Usage:
//
//	logger.Info("operation", logging.Err(err))  // Safe even if err is nil
func Err(err error) slog.Attr {
	if err == nil {
		// Return an empty Group that slog will omit from output
		return slog.Group("")
	}
	return slog.String(KeyError, err.Error())
}

// AnonymizeParticipant returns a hashed representation of a participant
// ID for logging purposes. Participant IDs are typically email addresses,
// so this allows correlation of log entries without exposing PII.
func AnonymizeParticipant(id string) string {
	if id == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(id))
	return "participant:" + hex.EncodeToString(hash[:8])
}

// ParticipantHash returns a slog attribute with the anonymized
// participant ID. This is a convenience function to reduce repetition in
// logging calls and ensure consistent attribute naming.
//
// Usage:
//
//	logger.Info("meeting created", logging.ParticipantHash(organizer))
func ParticipantHash(id string) slog.Attr {
	return slog.String(KeyParticipantHash, AnonymizeParticipant(id))
}

// ExtractDomain extracts the domain part from an email-shaped
// participant ID. This is useful for lower-cardinality logging where the
// full address would create too many unique values.
func ExtractDomain(id string) string {
	if id == "" {
		return ""
	}
	parts := strings.Split(id, "@")
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}

// Domain returns a slog attribute for the participant's domain (lower
// cardinality than the full address).
func Domain(id string) slog.Attr {
	return slog.String("participant_domain", ExtractDomain(id))
}
