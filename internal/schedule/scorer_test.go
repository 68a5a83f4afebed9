package schedule

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOptimalSlotsExcludesHardConflicts(t *testing.T) {
	alice := mustParticipant(t, "alice", "UTC", 9, 17, 6, 15)
	bob := mustParticipant(t, "bob", "UTC", 9, 17, 6, 15)
	pl := newTestPlanner(t, alice, bob)
	busy := addMeeting(t, pl.Store(), "Busy", []string{"bob"}, utc(10, 0), 120, "")

	window := Interval{Start: utc(9, 0), End: utc(17, 0)}
	slots, err := pl.FindOptimalSlots([]string{"alice", "bob"}, time.Hour, window, 50)
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	for _, s := range slots {
		assert.False(t, s.Slot.Overlaps(busy.Interval()),
			"slot %s overlaps an existing meeting", s.Slot.Start)
	}
}

func TestFindOptimalSlotsScoreBounds(t *testing.T) {
	alice := mustParticipant(t, "alice", "UTC", 9, 17, 6, 15)
	pl := newTestPlanner(t, alice)
	addMeeting(t, pl.Store(), "Existing", []string{"alice"}, utc(11, 0), 30, "")

	window := Interval{Start: utc(9, 0), End: utc(17, 0)}
	slots, err := pl.FindOptimalSlots([]string{"alice"}, 30*time.Minute, window, 50)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for _, s := range slots {
		for name, v := range map[string]float64{
			"score":         s.Score,
			"preferenceFit": s.PreferenceFit,
			"loadBalance":   s.LoadBalance,
			"breakAdequacy": s.BreakAdequacy,
			"timing":        s.Timing,
		} {
			assert.GreaterOrEqual(t, v, 0.0, name)
			assert.LessOrEqual(t, v, 1.0, name)
		}
		want := 0.35*s.PreferenceFit + 0.25*s.LoadBalance + 0.20*s.BreakAdequacy + 0.20*s.Timing
		assert.InDelta(t, want, s.Score, 1e-9, "score must equal the weighted component sum")
	}
}

func TestFindOptimalSlotsOrdering(t *testing.T) {
	alice := mustParticipant(t, "alice", "UTC", 9, 17, 6, 15)
	pl := newTestPlanner(t, alice)

	window := Interval{Start: utc(9, 0), End: utc(17, 0)}
	slots, err := pl.FindOptimalSlots([]string{"alice"}, 30*time.Minute, window, 50)
	require.NoError(t, err)
	require.Greater(t, len(slots), 1)

	for i := 1; i < len(slots); i++ {
		prev, cur := slots[i-1], slots[i]
		if math.Abs(prev.Score-cur.Score) < 1e-12 {
			assert.True(t, prev.Slot.Start.Before(cur.Slot.Start), "ties break by earlier start")
		} else {
			assert.Greater(t, prev.Score, cur.Score)
		}
	}
}

func TestFindOptimalSlotsTopN(t *testing.T) {
	alice := mustParticipant(t, "alice", "UTC", 9, 17, 6, 15)
	pl := newTestPlanner(t, alice)

	window := Interval{Start: utc(9, 0), End: utc(17, 0)}
	slots, err := pl.FindOptimalSlots([]string{"alice"}, 30*time.Minute, window, 3)
	require.NoError(t, err)
	assert.Len(t, slots, 3)

	slots, err = pl.FindOptimalSlots([]string{"alice"}, 30*time.Minute, window, 0)
	require.NoError(t, err)
	assert.Len(t, slots, DefaultTopSlots)
}

func TestFindOptimalSlotsFullyBookedIsEmpty(t *testing.T) {
	alice := mustParticipant(t, "alice", "UTC", 9, 17, 6, 15)
	pl := newTestPlanner(t, alice)
	addMeeting(t, pl.Store(), "All day", []string{"alice"}, utc(9, 0), 8*60, "")

	window := Interval{Start: utc(9, 0), End: utc(17, 0)}
	slots, err := pl.FindOptimalSlots([]string{"alice"}, time.Hour, window, 5)
	require.NoError(t, err)
	assert.Empty(t, slots, "an empty result is a valid answer")
}

func TestScoreSlotPenalizesTightBreaks(t *testing.T) {
	alice := mustParticipant(t, "alice", "UTC", 9, 17, 6, 30)
	pl := newTestPlanner(t, alice)
	addMeeting(t, pl.Store(), "Morning", []string{"alice"}, utc(10, 0), 60, "")

	window := Interval{Start: utc(9, 0), End: utc(17, 0)}
	slots, err := pl.FindOptimalSlots([]string{"alice"}, 30*time.Minute, window, 50)
	require.NoError(t, err)

	var backToBack, relaxed *SlotScore
	for i := range slots {
		switch {
		case slots[i].Slot.Start.Equal(utc(11, 0)):
			backToBack = &slots[i]
		case slots[i].Slot.Start.Equal(utc(14, 0)):
			relaxed = &slots[i]
		}
	}
	require.NotNil(t, backToBack)
	require.NotNil(t, relaxed)
	assert.Equal(t, 0.0, backToBack.BreakAdequacy, "zero gap means zero break adequacy")
	assert.Equal(t, 1, backToBack.SoftConflicts)
	assert.Equal(t, 1.0, relaxed.BreakAdequacy)
	assert.Zero(t, relaxed.SoftConflicts)
}

func TestLoadBalanceCountsMeetingsBeforeWindow(t *testing.T) {
	alice := mustParticipant(t, "alice", "UTC", 9, 17, 4, 15)
	pl := newTestPlanner(t, alice)
	addMeeting(t, pl.Store(), "A", []string{"alice"}, utc(9, 0), 30, "")
	addMeeting(t, pl.Store(), "B", []string{"alice"}, utc(10, 30), 30, "")

	// Both meetings ended before the window opens but load that day is
	// already 2 of 4.
	window := Interval{Start: utc(12, 0), End: utc(17, 0)}
	slots, err := pl.FindOptimalSlots([]string{"alice"}, 30*time.Minute, window, 50)
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	for _, s := range slots {
		assert.InDelta(t, 0.5, s.LoadBalance, 1e-9,
			"slot %s must see the morning meetings in its daily load", s.Slot.Start)
	}
}

func TestPreferenceFitIsIdealBandFraction(t *testing.T) {
	alice := mustParticipant(t, "alice", "UTC", 9, 17, 6, 15)
	bob := mustParticipant(t, "bob", "UTC", 12, 20, 6, 15)
	pl := newTestPlanner(t, alice, bob)

	window := Interval{Start: utc(8, 0), End: utc(20, 0)}
	avail, err := pl.snapshotAvailability([]string{"alice", "bob"}, window)
	require.NoError(t, err)

	slotAt := func(h, m int) Interval {
		start := utc(h, m)
		return Interval{Start: start, End: start.Add(30 * time.Minute)}
	}

	// Ideal bands: alice 10:00-15:00, bob 13:00-18:00.
	assert.Equal(t, 0.0, preferenceFit(avail, slotAt(9, 0)), "ideal for nobody scores zero")
	assert.Equal(t, 0.5, preferenceFit(avail, slotAt(10, 0)))
	assert.Equal(t, 1.0, preferenceFit(avail, slotAt(13, 30)))
}

func TestTimeOfDayQualityCurve(t *testing.T) {
	assert.Equal(t, 1.0, timeOfDayQuality(9))
	assert.Equal(t, 1.0, timeOfDayQuality(10))
	assert.Equal(t, 0.9, timeOfDayQuality(14))
	assert.Equal(t, 0.4, timeOfDayQuality(12), "lunch hour is penalized")
	assert.Equal(t, 0.2, timeOfDayQuality(22))
}

func TestMidweekFactor(t *testing.T) {
	assert.Equal(t, 1.0, midweekFactor(time.Wednesday))
	assert.Equal(t, 0.7, midweekFactor(time.Friday))
	assert.Equal(t, 0.3, midweekFactor(time.Sunday))
}
