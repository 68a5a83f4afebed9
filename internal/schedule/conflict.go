package schedule

import "time"

// Conflict is a hard conflict: an existing meeting that overlaps the
// proposed slot.
type Conflict struct {
	Meeting        Meeting `json:"meeting"`
	OverlapMinutes int     `json:"overlapMinutes"`
}

// SoftConflict is a meeting adjacent to the proposed slot with less
// recovery time than the participant's minimum break.
type SoftConflict struct {
	Meeting          Meeting `json:"meeting"`
	GapMinutes       int     `json:"gapMinutes"`
	ShortfallMinutes int     `json:"shortfallMinutes"`
}

// ConflictReport collects one participant's hard and soft conflicts with
// a proposed slot. Conflicts are advisory: the engine reports them and
// leaves the decision to the caller.
type ConflictReport struct {
	Participant string         `json:"participant"`
	Hard        []Conflict     `json:"hard,omitempty"`
	Soft        []SoftConflict `json:"soft,omitempty"`
}

// HasHard reports whether the participant has at least one hard conflict.
func (r ConflictReport) HasHard() bool {
	return len(r.Hard) > 0
}

// ConflictsFor examines one participant's calendar against a proposed
// slot. A meeting conflicts hard when the half-open intervals overlap;
// meetings that merely touch the slot boundary are never hard conflicts.
// A non-overlapping meeting conflicts softly when the gap between it and
// the slot is shorter than the participant's minimum break. Meetings
// whose ID is in ignore are skipped, so a meeting can be checked against
// the rest of the calendar without colliding with itself.
func (pl *Planner) ConflictsFor(participant string, slot Interval, ignore ...string) (ConflictReport, error) {
	p, err := pl.store.Participant(participant)
	if err != nil {
		return ConflictReport{}, err
	}
	// Widen the lookup window so near-miss neighbors are seen even when
	// they do not overlap the slot itself.
	pad := time.Duration(p.MinBreakMinutes) * time.Minute
	window := Interval{Start: slot.Start.Add(-pad - time.Minute), End: slot.End.Add(pad + time.Minute)}
	meetings, err := pl.store.MeetingsFor(participant, &window)
	if err != nil {
		return ConflictReport{}, err
	}

	report := ConflictReport{Participant: participant}
	skip := make(map[string]struct{}, len(ignore))
	for _, id := range ignore {
		skip[id] = struct{}{}
	}
	for _, m := range meetings {
		if _, ok := skip[m.ID]; ok {
			continue
		}
		if m.Interval().Overlaps(slot) {
			report.Hard = append(report.Hard, Conflict{
				Meeting:        m,
				OverlapMinutes: m.Interval().OverlapMinutes(slot),
			})
			continue
		}
		gap := gapMinutes(m.Interval(), slot)
		if gap < p.MinBreakMinutes {
			report.Soft = append(report.Soft, SoftConflict{
				Meeting:          m,
				GapMinutes:       gap,
				ShortfallMinutes: p.MinBreakMinutes - gap,
			})
		}
	}
	return report, nil
}

// DetectSchedulingConflicts aggregates conflict reports for every listed
// participant against the proposed slot.
func (pl *Planner) DetectSchedulingConflicts(participants []string, slot Interval, ignore ...string) ([]ConflictReport, error) {
	reports := make([]ConflictReport, 0, len(participants))
	for _, id := range participants {
		r, err := pl.ConflictsFor(id, slot, ignore...)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// gapMinutes returns the whole minutes between two disjoint intervals.
// Touching intervals have a gap of zero.
func gapMinutes(a, b Interval) int {
	switch {
	case !a.End.After(b.Start):
		return int(b.Start.Sub(a.End) / time.Minute)
	case !b.End.After(a.Start):
		return int(a.Start.Sub(b.End) / time.Minute)
	default:
		return 0
	}
}
