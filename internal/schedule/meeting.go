package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Interval is a half-open time range [Start, End). All engine arithmetic
// treats interval ends as exclusive: two meetings that merely touch at a
// boundary do not overlap.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Overlaps reports whether the two half-open intervals share any instant.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Contains reports whether t falls inside the half-open interval.
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}

// Duration returns the interval length.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// OverlapMinutes returns the length of the intersection in minutes, zero
// when the intervals are disjoint.
func (iv Interval) OverlapMinutes(other Interval) int {
	start := iv.Start
	if other.Start.After(start) {
		start = other.Start
	}
	end := iv.End
	if other.End.Before(end) {
		end = other.End
	}
	if !start.Before(end) {
		return 0
	}
	return int(end.Sub(start) / time.Minute)
}

// Meeting is one scheduled meeting. Start and End are stored in UTC;
// Timezone records the organizer-facing zone the meeting was created in.
// Participants always lists the organizer first.
type Meeting struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Participants []string  `json:"participants"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Timezone     string    `json:"timezone"`
	Agenda       string    `json:"agenda,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewMeeting builds a validated meeting with a fresh ID. The participant
// list is trimmed and de-duplicated while preserving order; the first
// entry is the organizer.
func NewMeeting(title string, participants []string, start, end time.Time, timezone, agenda string) (Meeting, error) {
	cleaned := make([]string, 0, len(participants))
	seen := make(map[string]struct{}, len(participants))
	for _, p := range participants {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		cleaned = append(cleaned, p)
	}
	if len(cleaned) == 0 {
		return Meeting{}, fmt.Errorf("%w: meeting needs at least one participant", ErrInvalidMeeting)
	}
	if !end.After(start) {
		return Meeting{}, fmt.Errorf("%w: end %s is not after start %s", ErrInvalidMeeting, end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	if timezone == "" {
		timezone = "UTC"
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return Meeting{}, fmt.Errorf("%w: %q", ErrInvalidTimezone, timezone)
	}
	return Meeting{
		ID:           uuid.NewString(),
		Title:        title,
		Participants: cleaned,
		Start:        start.UTC(),
		End:          end.UTC(),
		Timezone:     timezone,
		Agenda:       agenda,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// Organizer returns the first participant.
func (m Meeting) Organizer() string {
	return m.Participants[0]
}

// Duration returns the meeting length.
func (m Meeting) Duration() time.Duration {
	return m.End.Sub(m.Start)
}

// Interval returns the meeting's half-open time range.
func (m Meeting) Interval() Interval {
	return Interval{Start: m.Start, End: m.End}
}

// Includes reports whether the given participant is on the meeting.
func (m Meeting) Includes(participant string) bool {
	for _, p := range m.Participants {
		if p == participant {
			return true
		}
	}
	return false
}
