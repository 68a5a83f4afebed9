package schedule

import "errors"

// Sentinel errors returned by the engine. Callers match them with
// errors.Is; the wrapped message carries the offending identifier.
var (
	// ErrInvalidTimezone indicates an unknown IANA timezone identifier.
	ErrInvalidTimezone = errors.New("invalid timezone")

	// ErrInvalidMeeting indicates a structurally invalid meeting, such as
	// an empty participant set or an end not after the start.
	ErrInvalidMeeting = errors.New("invalid meeting")

	// ErrParticipantNotFound indicates an operation referenced a
	// participant the directory does not know.
	ErrParticipantNotFound = errors.New("participant not found")

	// ErrMeetingNotFound indicates an operation referenced a meeting ID
	// that is not in the store.
	ErrMeetingNotFound = errors.New("meeting not found")

	// ErrEmptyPeriod indicates an aggregation period with zero or
	// negative length.
	ErrEmptyPeriod = errors.New("empty period")
)
