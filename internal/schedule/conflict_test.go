package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConflictsForHardOverlap(t *testing.T) {
	alice := mustParticipant(t, "alice", "UTC", 9, 17, 6, 15)
	pl := newTestPlanner(t, alice)
	existing := addMeeting(t, pl.Store(), "Busy", []string{"alice"}, utc(10, 0), 60, "")

	report, err := pl.ConflictsFor("alice", Interval{Start: utc(10, 30), End: utc(11, 30)})
	require.NoError(t, err)
	require.Len(t, report.Hard, 1)
	assert.Equal(t, existing.ID, report.Hard[0].Meeting.ID)
	assert.Equal(t, 30, report.Hard[0].OverlapMinutes)
	assert.True(t, report.HasHard())
}

func TestConflictsForBoundaryTouchIsNotHard(t *testing.T) {
	alice := mustParticipant(t, "alice", "UTC", 9, 17, 6, 30)
	pl := newTestPlanner(t, alice)
	addMeeting(t, pl.Store(), "Before", []string{"alice"}, utc(9, 0), 60, "")

	// Starts exactly when the existing meeting ends: zero gap, so a
	// soft conflict against the 30-minute minimum break, never hard.
	report, err := pl.ConflictsFor("alice", Interval{Start: utc(10, 0), End: utc(10, 30)})
	require.NoError(t, err)
	assert.Empty(t, report.Hard)
	require.Len(t, report.Soft, 1)
	assert.Equal(t, 0, report.Soft[0].GapMinutes)
	assert.Equal(t, 30, report.Soft[0].ShortfallMinutes)
}

func TestConflictsForZeroGapSoftConflict(t *testing.T) {
	alice := mustParticipant(t, "alice", "UTC", 9, 17, 6, 15)
	pl := newTestPlanner(t, alice)
	addMeeting(t, pl.Store(), "Back", []string{"alice"}, utc(11, 0), 30, "")

	// The proposal ends exactly when the meeting starts.
	report, err := pl.ConflictsFor("alice", Interval{Start: utc(10, 0), End: utc(11, 0)})
	require.NoError(t, err)
	assert.Empty(t, report.Hard)
	require.Len(t, report.Soft, 1)
	assert.Equal(t, 0, report.Soft[0].GapMinutes)
	assert.Equal(t, 15, report.Soft[0].ShortfallMinutes)
}

func TestConflictsForAdequateGap(t *testing.T) {
	alice := mustParticipant(t, "alice", "UTC", 9, 17, 6, 15)
	pl := newTestPlanner(t, alice)
	addMeeting(t, pl.Store(), "Earlier", []string{"alice"}, utc(9, 0), 60, "")

	report, err := pl.ConflictsFor("alice", Interval{Start: utc(10, 15), End: utc(11, 0)})
	require.NoError(t, err)
	assert.Empty(t, report.Hard)
	assert.Empty(t, report.Soft)
}

func TestConflictsForIgnoresListedMeetings(t *testing.T) {
	alice := mustParticipant(t, "alice", "UTC", 9, 17, 6, 15)
	pl := newTestPlanner(t, alice)
	m := addMeeting(t, pl.Store(), "Self", []string{"alice"}, utc(10, 0), 60, "")

	report, err := pl.ConflictsFor("alice", m.Interval(), m.ID)
	require.NoError(t, err)
	assert.Empty(t, report.Hard)
}

func TestDetectSchedulingConflictsAggregates(t *testing.T) {
	alice := mustParticipant(t, "alice", "UTC", 9, 17, 6, 15)
	bob := mustParticipant(t, "bob", "UTC", 9, 17, 6, 15)
	pl := newTestPlanner(t, alice, bob)
	addMeeting(t, pl.Store(), "Alice only", []string{"alice"}, utc(10, 0), 60, "")

	reports, err := pl.DetectSchedulingConflicts([]string{"alice", "bob"}, Interval{Start: utc(10, 0), End: utc(10, 30)})
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.True(t, reports[0].HasHard())
	assert.False(t, reports[1].HasHard())
}

func TestDetectSchedulingConflictsUnknownParticipant(t *testing.T) {
	pl := newTestPlanner(t)
	_, err := pl.DetectSchedulingConflicts([]string{"ghost"}, Interval{Start: utc(10, 0), End: utc(11, 0)})
	require.ErrorIs(t, err, ErrParticipantNotFound)
}
