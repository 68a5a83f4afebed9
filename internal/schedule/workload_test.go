package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekOf(t *testing.T) Interval {
	t.Helper()
	return Interval{Start: utc(0, 0), End: utc(0, 0).AddDate(0, 0, 7)}
}

func TestSummarize(t *testing.T) {
	alice := mustParticipant(t, "alice", "UTC", 9, 17, 6, 15)
	pl := newTestPlanner(t, alice)
	store := pl.Store()
	addMeeting(t, store, "A", []string{"alice"}, utc(9, 0), 60, "")
	addMeeting(t, store, "B", []string{"alice"}, utc(14, 0), 30, "")
	addMeeting(t, store, "C", []string{"alice"}, utc(10, 0).AddDate(0, 0, 1), 45, "")

	s, err := pl.Summarize("alice", weekOf(t))
	require.NoError(t, err)
	assert.Equal(t, 3, s.MeetingCount)
	assert.Equal(t, 135, s.TotalMinutes)
	assert.Equal(t, 90, s.MinutesPerDay["2025-06-10"])
	assert.Equal(t, 45, s.MinutesPerDay["2025-06-11"])
	assert.Equal(t, "2025-06-10", s.BusiestDay)
	assert.Equal(t, 90, s.BusiestDayMinutes)
}

func TestSummarizeBucketsInHomeTimezone(t *testing.T) {
	// 23:00 UTC on June 10 is already June 11 in Tokyo.
	diana := mustParticipant(t, "diana", "Asia/Tokyo", 9, 17, 6, 15)
	pl := newTestPlanner(t, diana)
	addMeeting(t, pl.Store(), "Late", []string{"diana"}, utc(23, 0), 30, "")

	s, err := pl.Summarize("diana", weekOf(t))
	require.NoError(t, err)
	assert.Equal(t, 30, s.MinutesPerDay["2025-06-11"])
	assert.Empty(t, s.MinutesPerDay["2025-06-10"])
}

func TestSummarizeEmptyPeriod(t *testing.T) {
	alice := mustParticipant(t, "alice", "UTC", 9, 17, 6, 15)
	pl := newTestPlanner(t, alice)

	_, err := pl.Summarize("alice", Interval{Start: utc(10, 0), End: utc(10, 0)})
	require.ErrorIs(t, err, ErrEmptyPeriod)

	_, err = pl.Summarize("alice", Interval{Start: utc(10, 0), End: utc(9, 0)})
	require.ErrorIs(t, err, ErrEmptyPeriod)
}

func TestCalculateWorkloadBalanceIdenticalLoads(t *testing.T) {
	alice := mustParticipant(t, "alice", "UTC", 9, 17, 6, 15)
	bob := mustParticipant(t, "bob", "UTC", 9, 17, 6, 15)
	pl := newTestPlanner(t, alice, bob)
	store := pl.Store()
	addMeeting(t, store, "A", []string{"alice"}, utc(9, 0), 60, "")
	addMeeting(t, store, "B", []string{"bob"}, utc(11, 0), 60, "")

	b, err := pl.CalculateWorkloadBalance([]string{"alice", "bob"}, weekOf(t))
	require.NoError(t, err)
	assert.Equal(t, 60.0, b.MeanMinutes)
	assert.Zero(t, b.StdDevMinutes)
	assert.Zero(t, b.Imbalance, "identical loads have zero imbalance")
}

func TestCalculateWorkloadBalanceSkewedLoads(t *testing.T) {
	alice := mustParticipant(t, "alice", "UTC", 9, 17, 6, 15)
	bob := mustParticipant(t, "bob", "UTC", 9, 17, 6, 15)
	pl := newTestPlanner(t, alice, bob)
	addMeeting(t, pl.Store(), "Long", []string{"alice"}, utc(9, 0), 180, "")

	b, err := pl.CalculateWorkloadBalance([]string{"alice", "bob"}, weekOf(t))
	require.NoError(t, err)
	assert.Equal(t, 90.0, b.MeanMinutes)
	assert.Equal(t, 90.0, b.StdDevMinutes)
	assert.Equal(t, 1.0, b.Imbalance)
}

func TestCalculateWorkloadBalanceEmptyCalendars(t *testing.T) {
	alice := mustParticipant(t, "alice", "UTC", 9, 17, 6, 15)
	bob := mustParticipant(t, "bob", "UTC", 9, 17, 6, 15)
	pl := newTestPlanner(t, alice, bob)

	b, err := pl.CalculateWorkloadBalance([]string{"alice", "bob"}, weekOf(t))
	require.NoError(t, err)
	assert.Zero(t, b.Imbalance, "zero mean must not divide")
}

func TestCalculateWorkloadBalanceEmptyPeriod(t *testing.T) {
	pl := newTestPlanner(t)
	_, err := pl.CalculateWorkloadBalance(nil, Interval{Start: utc(10, 0), End: utc(10, 0)})
	require.ErrorIs(t, err, ErrEmptyPeriod)
}
