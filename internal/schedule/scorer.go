package schedule

import (
	"sort"
	"time"
)

// Composite score weights. They sum to 1.0 so the weighted total stays
// in [0,1] as long as every component does.
const (
	weightPreferenceFit = 0.35
	weightLoadBalance   = 0.25
	weightBreakAdequacy = 0.20
	weightTiming        = 0.20
)

// DefaultTopSlots is the number of slots FindOptimalSlots returns when
// the caller does not ask for a specific count.
const DefaultTopSlots = 5

// SlotScore is one scored candidate slot with its component breakdown.
// Score is the weighted sum of the four components.
type SlotScore struct {
	Slot          Interval `json:"slot"`
	Score         float64  `json:"score"`
	PreferenceFit float64  `json:"preferenceFit"`
	LoadBalance   float64  `json:"loadBalance"`
	BreakAdequacy float64  `json:"breakAdequacy"`
	Timing        float64  `json:"timing"`
	SoftConflicts int      `json:"softConflicts"`
}

// availability is one participant's calendar snapshot used while scoring
// a window of candidate slots.
type availability struct {
	participant Participant
	location    *time.Location
	meetings    []Meeting
	perDay      map[string]int
}

// FindOptimalSlots generates candidates for the window, drops every slot
// with a hard conflict for any participant, scores the rest, and returns
// the top N ordered by score descending, ties broken by earlier start.
// An empty result is a valid answer.
func (pl *Planner) FindOptimalSlots(participants []string, duration time.Duration, window Interval, topN int) ([]SlotScore, error) {
	if topN <= 0 {
		topN = DefaultTopSlots
	}
	candidates, err := pl.Candidates(participants, duration, window, DefaultGranularity)
	if err != nil {
		return nil, err
	}
	avail, err := pl.snapshotAvailability(participants, window)
	if err != nil {
		return nil, err
	}

	var scored []SlotScore
	for slot := range candidates {
		if hardConflicted(avail, slot) {
			continue
		}
		scored = append(scored, scoreSlot(avail, slot))
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Slot.Start.Before(scored[j].Slot.Start)
	})
	if len(scored) > topN {
		scored = scored[:topN]
	}
	return scored, nil
}

func (pl *Planner) snapshotAvailability(participants []string, window Interval) ([]availability, error) {
	resolved, err := pl.store.Resolve(participants)
	if err != nil {
		return nil, err
	}
	out := make([]availability, 0, len(resolved))
	for _, p := range resolved {
		loc, err := p.Location()
		if err != nil {
			return nil, err
		}
		// Cover the whole local days the window touches so daily load
		// counts meetings outside the window too; the pad also keeps
		// adjacent meetings visible for break adequacy.
		lookup := Interval{Start: window.Start.Add(-dayLookupPad), End: window.End.Add(dayLookupPad)}
		meetings, err := pl.store.MeetingsFor(p.ID, &lookup)
		if err != nil {
			return nil, err
		}
		perDay := make(map[string]int, len(meetings))
		for _, m := range meetings {
			perDay[m.Start.In(loc).Format(time.DateOnly)]++
		}
		out = append(out, availability{participant: p, location: loc, meetings: meetings, perDay: perDay})
	}
	return out, nil
}

func hardConflicted(avail []availability, slot Interval) bool {
	for _, a := range avail {
		for _, m := range a.meetings {
			if m.Interval().Overlaps(slot) {
				return true
			}
		}
	}
	return false
}

func scoreSlot(avail []availability, slot Interval) SlotScore {
	score := SlotScore{
		Slot:          slot,
		PreferenceFit: preferenceFit(avail, slot),
		LoadBalance:   loadBalance(avail, slot),
		Timing:        timingQuality(avail, slot),
	}
	score.BreakAdequacy, score.SoftConflicts = breakAdequacy(avail, slot)
	score.Score = weightPreferenceFit*score.PreferenceFit +
		weightLoadBalance*score.LoadBalance +
		weightBreakAdequacy*score.BreakAdequacy +
		weightTiming*score.Timing
	return score
}

// preferenceFit is the fraction of participants whose local start falls
// inside the ideal band of their working day, an hour after the window
// opens through two hours before it closes. A slot ideal for nobody
// scores zero.
func preferenceFit(avail []availability, slot Interval) float64 {
	if len(avail) == 0 {
		return 0
	}
	inside := 0
	for _, a := range avail {
		local := slot.Start.In(a.location)
		idealStart := time.Date(local.Year(), local.Month(), local.Day(),
			a.participant.WorkStartHour+1, 0, 0, 0, a.location)
		idealEnd := time.Date(local.Year(), local.Month(), local.Day(),
			a.participant.WorkEndHour-2, 0, 0, 0, a.location)
		if idealStart.Before(idealEnd) &&
			!slot.Start.Before(idealStart) && slot.Start.Before(idealEnd) {
			inside++
		}
	}
	return float64(inside) / float64(len(avail))
}

// loadBalance is 1 minus the highest daily-load ratio across the
// participants on the slot's local day, clamped to [0,1].
func loadBalance(avail []availability, slot Interval) float64 {
	var worst float64
	for _, a := range avail {
		day := slot.Start.In(a.location).Format(time.DateOnly)
		ratio := float64(a.perDay[day]) / float64(a.participant.MaxDailyMeetings)
		if ratio > worst {
			worst = ratio
		}
	}
	if worst > 1 {
		worst = 1
	}
	return 1 - worst
}

// breakAdequacy decays linearly with the worst break shortfall across
// participants: a gap at or above a participant's minimum break scores
// 1.0, a back-to-back meeting scores 0. Also counts the soft conflicts
// the slot would create.
func breakAdequacy(avail []availability, slot Interval) (float64, int) {
	adequacy := 1.0
	soft := 0
	for _, a := range avail {
		minBreak := a.participant.MinBreakMinutes
		if minBreak <= 0 {
			continue
		}
		for _, m := range a.meetings {
			iv := m.Interval()
			if iv.Overlaps(slot) {
				continue
			}
			gap := gapMinutes(iv, slot)
			if gap >= minBreak {
				continue
			}
			soft++
			if s := float64(gap) / float64(minBreak); s < adequacy {
				adequacy = s
			}
		}
	}
	return adequacy, soft
}

// timingQuality blends the time-of-day curve with a mid-week factor,
// averaged over the participants' local clocks. Tuesday through Thursday
// score best; the lunch hour drags the curve down.
func timingQuality(avail []availability, slot Interval) float64 {
	if len(avail) == 0 {
		return 0
	}
	var sum float64
	for _, a := range avail {
		local := slot.Start.In(a.location)
		sum += 0.6*timeOfDayQuality(local.Hour()) + 0.4*midweekFactor(local.Weekday())
	}
	return sum / float64(len(avail))
}

// timeOfDayQuality rates a local starting hour. Late morning is best,
// early afternoon close behind, the lunch hour penalized, and anything
// outside typical office hours scores poorly.
func timeOfDayQuality(hour int) float64 {
	switch {
	case hour >= 9 && hour < 11:
		return 1.0
	case hour >= 14 && hour < 16:
		return 0.9
	case hour == 11:
		return 0.8
	case hour == 13:
		return 0.7
	case hour == 8 || hour == 16:
		return 0.6
	case hour == 12:
		return 0.4
	default:
		return 0.2
	}
}

func midweekFactor(day time.Weekday) float64 {
	switch day {
	case time.Tuesday, time.Wednesday, time.Thursday:
		return 1.0
	case time.Monday, time.Friday:
		return 0.7
	default:
		return 0.3
	}
}
