package schedule

import (
	"fmt"
	"iter"
	"time"
)

// DefaultGranularity is the step between candidate starts when the
// caller does not choose one.
const DefaultGranularity = 30 * time.Minute

// dayLookupPad widens calendar lookups around a search window so that
// every meeting starting on a local day the window touches is seen,
// whatever the participant's UTC offset. Two days exceeds a full day
// plus the largest offset.
const dayLookupPad = 48 * time.Hour

// candidateFilter holds one participant's availability data, snapshotted
// so the lazy sequence never goes back to the store.
type candidateFilter struct {
	participant Participant
	location    *time.Location
	perDay      map[string]int // local date -> meetings starting that day
}

func (f candidateFilter) admits(slot Interval) bool {
	localStart := slot.Start.In(f.location)
	dayStart := time.Date(localStart.Year(), localStart.Month(), localStart.Day(),
		f.participant.WorkStartHour, 0, 0, 0, f.location)
	dayEnd := time.Date(localStart.Year(), localStart.Month(), localStart.Day(),
		f.participant.WorkEndHour, 0, 0, 0, f.location)
	if slot.Start.Before(dayStart) || slot.End.After(dayEnd) {
		return false
	}
	return f.perDay[localStart.Format(time.DateOnly)] < f.participant.MaxDailyMeetings
}

// Candidates returns a lazy, restartable sequence of candidate slots of
// the given duration inside the search window, stepping by granularity
// (DefaultGranularity when zero). A slot survives only if, for every
// participant, it lies entirely inside that participant's local
// working-hour window and the participant is under their daily meeting
// cap on the slot's local day. A window shorter than the duration yields
// an empty sequence, not an error.
//
// Participant directory state and calendars are snapshotted up front;
// ranging over the sequence touches no locks and may be abandoned early.
func (pl *Planner) Candidates(participants []string, duration time.Duration, window Interval, granularity time.Duration) (iter.Seq[Interval], error) {
	if duration <= 0 {
		return nil, fmt.Errorf("%w: non-positive duration", ErrInvalidMeeting)
	}
	if granularity <= 0 {
		granularity = DefaultGranularity
	}
	resolved, err := pl.store.Resolve(participants)
	if err != nil {
		return nil, err
	}

	filters := make([]candidateFilter, 0, len(resolved))
	for _, p := range resolved {
		loc, err := p.Location()
		if err != nil {
			return nil, err
		}
		// The cap is per local day, so the lookup must cover the whole
		// local days the window touches, not just the window itself.
		lookup := Interval{Start: window.Start.Add(-dayLookupPad), End: window.End.Add(dayLookupPad)}
		meetings, err := pl.store.MeetingsFor(p.ID, &lookup)
		if err != nil {
			return nil, err
		}
		perDay := make(map[string]int, len(meetings))
		for _, m := range meetings {
			perDay[m.Start.In(loc).Format(time.DateOnly)]++
		}
		filters = append(filters, candidateFilter{participant: p, location: loc, perDay: perDay})
	}

	return func(yield func(Interval) bool) {
		for start := window.Start; !start.Add(duration).After(window.End); start = start.Add(granularity) {
			slot := Interval{Start: start, End: start.Add(duration)}
			ok := true
			for _, f := range filters {
				if !f.admits(slot) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			if !yield(slot) {
				return
			}
		}
	}, nil
}
