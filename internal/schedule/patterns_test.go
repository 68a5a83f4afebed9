package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeMeetingPatterns(t *testing.T) {
	alice := mustParticipant(t, "alice", "UTC", 9, 17, 6, 15)
	pl := newTestPlanner(t, alice)
	store := pl.Store()
	// June 10 2025 is a Tuesday.
	addMeeting(t, store, "A", []string{"alice"}, utc(9, 0), 60, "")
	addMeeting(t, store, "B", []string{"alice"}, utc(14, 0), 30, "")
	addMeeting(t, store, "C", []string{"alice"}, utc(9, 0).AddDate(0, 0, 1), 90, "")

	r, err := pl.AnalyzeMeetingPatterns("alice", weekOf(t))
	require.NoError(t, err)
	assert.Equal(t, 3, r.MeetingCount)
	assert.Equal(t, 180, r.TotalMinutes)
	assert.Equal(t, 60.0, r.AverageMinutes)
	assert.Equal(t, 2, r.ByWeekday["Tuesday"])
	assert.Equal(t, 1, r.ByWeekday["Wednesday"])
	assert.Equal(t, 2, r.ByHour[9])
	assert.Equal(t, "Tuesday", r.BusiestWeekday)
}

func TestAnalyzeMeetingPatternsInsights(t *testing.T) {
	alice := mustParticipant(t, "alice", "UTC", 9, 17, 6, 15)
	pl := newTestPlanner(t, alice)
	store := pl.Store()
	addMeeting(t, store, "Early", []string{"alice"}, utc(7, 0), 30, "")
	addMeeting(t, store, "Marathon", []string{"alice"}, utc(10, 0), 120, "")

	r, err := pl.AnalyzeMeetingPatterns("alice", weekOf(t))
	require.NoError(t, err)
	assert.Contains(t, r.Insights, "1 meetings start before working hours")
	assert.Contains(t, r.Insights, "1 meetings exceed an hour")
}

func TestAnalyzeMeetingPatternsEmptyPeriod(t *testing.T) {
	alice := mustParticipant(t, "alice", "UTC", 9, 17, 6, 15)
	pl := newTestPlanner(t, alice)
	_, err := pl.AnalyzeMeetingPatterns("alice", Interval{Start: utc(10, 0), End: utc(10, 0)})
	require.ErrorIs(t, err, ErrEmptyPeriod)
}

func TestOptimizeScheduleFindsProblems(t *testing.T) {
	alice := mustParticipant(t, "alice", "UTC", 9, 17, 3, 15)
	pl := newTestPlanner(t, alice)
	store := pl.Store()
	// Four meetings on one day, over the cap of three; the second pair
	// is back-to-back; one starts before working hours.
	addMeeting(t, store, "Dawn", []string{"alice"}, utc(7, 0), 30, "")
	addMeeting(t, store, "One", []string{"alice"}, utc(10, 0), 30, "")
	addMeeting(t, store, "Two", []string{"alice"}, utc(10, 30), 30, "")
	addMeeting(t, store, "Three", []string{"alice"}, utc(14, 0), 30, "")

	r, err := pl.OptimizeSchedule("alice", weekOf(t))
	require.NoError(t, err)

	categories := make(map[string]int)
	for _, rec := range r.Recommendations {
		categories[rec.Category]++
	}
	assert.Equal(t, 1, categories["overload"])
	assert.Equal(t, 1, categories["off-hours"])
	assert.GreaterOrEqual(t, categories["back-to-back"], 1)

	require.NotEmpty(t, r.Recommendations)
	assert.Equal(t, "high", r.Recommendations[0].Priority, "most urgent first")
}

func TestOptimizeScheduleCleanCalendar(t *testing.T) {
	alice := mustParticipant(t, "alice", "UTC", 9, 17, 6, 15)
	pl := newTestPlanner(t, alice)
	addMeeting(t, pl.Store(), "Fine", []string{"alice"}, utc(10, 0), 30, "")

	r, err := pl.OptimizeSchedule("alice", weekOf(t))
	require.NoError(t, err)
	assert.Empty(t, r.Recommendations)
}
