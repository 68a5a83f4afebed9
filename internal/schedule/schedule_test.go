package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// mustParticipant builds a directory entry or fails the test.
func mustParticipant(t *testing.T, id, tz string, workStart, workEnd, maxDaily, minBreak int) Participant {
	t.Helper()
	p, err := NewParticipant(id, tz, workStart, workEnd, maxDaily, minBreak)
	require.NoError(t, err)
	return p
}

// newTestPlanner returns a planner over a store seeded with the given
// participants.
func newTestPlanner(t *testing.T, participants ...Participant) *Planner {
	t.Helper()
	store := NewStore()
	for _, p := range participants {
		store.UpsertParticipant(p)
	}
	return NewPlanner(store)
}

// addMeeting inserts a meeting and returns it.
func addMeeting(t *testing.T, store *Store, title string, participants []string, start time.Time, minutes int, agenda string) Meeting {
	t.Helper()
	m, err := NewMeeting(title, participants, start, start.Add(time.Duration(minutes)*time.Minute), "UTC", agenda)
	require.NoError(t, err)
	require.NoError(t, store.Add(m))
	return m
}

// utc is shorthand for an instant on 2025-06-10 (a Tuesday).
func utc(hour, minute int) time.Time {
	return time.Date(2025, time.June, 10, hour, minute, 0, 0, time.UTC)
}
