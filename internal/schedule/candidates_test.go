package schedule

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectCandidates(t *testing.T, pl *Planner, participants []string, duration time.Duration, window Interval, granularity time.Duration) []Interval {
	t.Helper()
	seq, err := pl.Candidates(participants, duration, window, granularity)
	require.NoError(t, err)
	return slices.Collect(seq)
}

func TestCandidatesRespectWorkingHours(t *testing.T) {
	alice := mustParticipant(t, "alice", "UTC", 9, 17, 6, 15)
	pl := newTestPlanner(t, alice)

	day := Interval{Start: utc(0, 0), End: utc(23, 59)}
	slots := collectCandidates(t, pl, []string{"alice"}, time.Hour, day, 0)

	require.NotEmpty(t, slots)
	assert.Equal(t, utc(9, 0), slots[0].Start)
	last := slots[len(slots)-1]
	assert.Equal(t, utc(16, 0), last.Start, "last one-hour slot must end at the window close")
	for _, s := range slots {
		assert.GreaterOrEqual(t, s.Start.Hour(), 9)
		assert.False(t, s.End.After(utc(17, 0)))
	}
}

func TestCandidatesDefaultGranularity(t *testing.T) {
	alice := mustParticipant(t, "alice", "UTC", 9, 17, 6, 15)
	pl := newTestPlanner(t, alice)

	day := Interval{Start: utc(9, 0), End: utc(17, 0)}
	slots := collectCandidates(t, pl, []string{"alice"}, time.Hour, day, 0)
	require.GreaterOrEqual(t, len(slots), 2)
	assert.Equal(t, 30*time.Minute, slots[1].Start.Sub(slots[0].Start))
}

func TestCandidatesWindowShorterThanDuration(t *testing.T) {
	alice := mustParticipant(t, "alice", "UTC", 9, 17, 6, 15)
	pl := newTestPlanner(t, alice)

	window := Interval{Start: utc(9, 0), End: utc(9, 30)}
	slots := collectCandidates(t, pl, []string{"alice"}, time.Hour, window, 0)
	assert.Empty(t, slots, "short window yields an empty sequence, not an error")
}

func TestCandidatesDisjointTimezonesYieldNothing(t *testing.T) {
	// New York working 9-17 local is 13:00-21:00 UTC in June; Tokyo
	// 9-17 local is 00:00-08:00 UTC. No instant satisfies both.
	ny := mustParticipant(t, "ny@company.com", "America/New_York", 9, 17, 6, 15)
	tokyo := mustParticipant(t, "tokyo@company.com", "Asia/Tokyo", 9, 17, 6, 15)
	pl := newTestPlanner(t, ny, tokyo)

	window := Interval{Start: utc(0, 0), End: utc(0, 0).AddDate(0, 0, 3)}
	slots := collectCandidates(t, pl, []string{"ny@company.com", "tokyo@company.com"}, time.Hour, window, 0)
	assert.Empty(t, slots)
}

func TestCandidatesOverlappingTimezones(t *testing.T) {
	// New York and London overlap: London 9-18 local is 08:00-17:00
	// UTC, New York 9-17 local is 13:00-21:00 UTC, shared 13:00-17:00.
	ny := mustParticipant(t, "ny@company.com", "America/New_York", 9, 17, 6, 15)
	london := mustParticipant(t, "ldn@company.com", "Europe/London", 9, 18, 6, 15)
	pl := newTestPlanner(t, ny, london)

	day := Interval{Start: utc(0, 0), End: utc(0, 0).AddDate(0, 0, 1)}
	slots := collectCandidates(t, pl, []string{"ny@company.com", "ldn@company.com"}, time.Hour, day, 0)
	require.NotEmpty(t, slots)
	assert.Equal(t, utc(13, 0), slots[0].Start)
	assert.Equal(t, utc(16, 0), slots[len(slots)-1].Start)
}

func TestCandidatesDailyCap(t *testing.T) {
	alice := mustParticipant(t, "alice", "UTC", 9, 17, 3, 15)
	pl := newTestPlanner(t, alice)
	store := pl.Store()
	addMeeting(t, store, "A", []string{"alice"}, utc(9, 0), 30, "")
	addMeeting(t, store, "B", []string{"alice"}, utc(10, 0), 30, "")
	addMeeting(t, store, "C", []string{"alice"}, utc(11, 0), 30, "")

	day := Interval{Start: utc(9, 0), End: utc(17, 0)}
	slots := collectCandidates(t, pl, []string{"alice"}, 30*time.Minute, day, 0)
	assert.Empty(t, slots, "a participant at the daily cap admits no further slots that day")

	nextDay := Interval{Start: day.Start.AddDate(0, 0, 1), End: day.End.AddDate(0, 0, 1)}
	slots = collectCandidates(t, pl, []string{"alice"}, 30*time.Minute, nextDay, 0)
	assert.NotEmpty(t, slots, "the cap applies per day")
}

func TestCandidatesDailyCapCountsMeetingsOutsideWindow(t *testing.T) {
	alice := mustParticipant(t, "alice", "UTC", 9, 17, 3, 15)
	pl := newTestPlanner(t, alice)
	store := pl.Store()
	addMeeting(t, store, "A", []string{"alice"}, utc(9, 0), 30, "")
	addMeeting(t, store, "B", []string{"alice"}, utc(10, 0), 30, "")
	addMeeting(t, store, "C", []string{"alice"}, utc(11, 0), 30, "")

	// The window opens after all three meetings ended; the cap still
	// counts them because they start on the same local day.
	afternoon := Interval{Start: utc(12, 0), End: utc(17, 0)}
	slots := collectCandidates(t, pl, []string{"alice"}, 30*time.Minute, afternoon, 0)
	assert.Empty(t, slots, "meetings earlier the same day count toward the cap")

	nextDay := Interval{Start: afternoon.Start.AddDate(0, 0, 1), End: afternoon.End.AddDate(0, 0, 1)}
	slots = collectCandidates(t, pl, []string{"alice"}, 30*time.Minute, nextDay, 0)
	assert.NotEmpty(t, slots)
}

func TestCandidatesEarlyTermination(t *testing.T) {
	alice := mustParticipant(t, "alice", "UTC", 9, 17, 6, 15)
	pl := newTestPlanner(t, alice)

	seq, err := pl.Candidates([]string{"alice"}, 30*time.Minute, Interval{Start: utc(9, 0), End: utc(17, 0)}, 0)
	require.NoError(t, err)

	count := 0
	for range seq {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)

	// The sequence is restartable.
	first := slices.Collect(seq)
	again := slices.Collect(seq)
	assert.Equal(t, first, again)
}

func TestCandidatesUnknownParticipant(t *testing.T) {
	pl := newTestPlanner(t)
	_, err := pl.Candidates([]string{"ghost"}, time.Hour, Interval{Start: utc(9, 0), End: utc(17, 0)}, 0)
	require.ErrorIs(t, err, ErrParticipantNotFound)
}
