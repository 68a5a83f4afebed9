package schedule

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// WorkloadSummary aggregates one participant's meetings over a period.
// Per-day buckets are keyed by local date in the participant's home
// timezone.
type WorkloadSummary struct {
	Participant       string         `json:"participant"`
	MeetingCount      int            `json:"meetingCount"`
	TotalMinutes      int            `json:"totalMinutes"`
	MinutesPerDay     map[string]int `json:"minutesPerDay"`
	BusiestDay        string         `json:"busiestDay,omitempty"`
	BusiestDayMinutes int            `json:"busiestDayMinutes"`
}

// WorkloadBalance compares summaries across a group. Imbalance is the
// coefficient of variation of total minutes (population standard
// deviation over the mean), zero for identical or uniformly empty loads.
type WorkloadBalance struct {
	Summaries     []WorkloadSummary `json:"summaries"`
	MeanMinutes   float64           `json:"meanMinutes"`
	StdDevMinutes float64           `json:"stdDevMinutes"`
	Imbalance     float64           `json:"imbalance"`
}

// Summarize aggregates the participant's meetings overlapping the
// period: count, total minutes, per-day minutes in the home timezone,
// and the busiest day. A zero or negative period is ErrEmptyPeriod.
func (pl *Planner) Summarize(participant string, period Interval) (WorkloadSummary, error) {
	if !period.End.After(period.Start) {
		return WorkloadSummary{}, fmt.Errorf("%w: %s to %s", ErrEmptyPeriod,
			period.Start.Format(time.RFC3339), period.End.Format(time.RFC3339))
	}
	p, err := pl.store.Participant(participant)
	if err != nil {
		return WorkloadSummary{}, err
	}
	loc, err := p.Location()
	if err != nil {
		return WorkloadSummary{}, err
	}
	meetings, err := pl.store.MeetingsFor(participant, &period)
	if err != nil {
		return WorkloadSummary{}, err
	}

	summary := WorkloadSummary{
		Participant:   participant,
		MeetingCount:  len(meetings),
		MinutesPerDay: make(map[string]int),
	}
	for _, m := range meetings {
		minutes := int(m.Duration() / time.Minute)
		summary.TotalMinutes += minutes
		day := m.Start.In(loc).Format(time.DateOnly)
		summary.MinutesPerDay[day] += minutes
	}

	days := make([]string, 0, len(summary.MinutesPerDay))
	for day := range summary.MinutesPerDay {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		if summary.MinutesPerDay[day] > summary.BusiestDayMinutes {
			summary.BusiestDay = day
			summary.BusiestDayMinutes = summary.MinutesPerDay[day]
		}
	}
	return summary, nil
}

// CalculateWorkloadBalance summarizes every participant over the period
// and derives the group's load imbalance.
func (pl *Planner) CalculateWorkloadBalance(participants []string, period Interval) (WorkloadBalance, error) {
	if !period.End.After(period.Start) {
		return WorkloadBalance{}, fmt.Errorf("%w: %s to %s", ErrEmptyPeriod,
			period.Start.Format(time.RFC3339), period.End.Format(time.RFC3339))
	}
	balance := WorkloadBalance{Summaries: make([]WorkloadSummary, 0, len(participants))}
	var total float64
	for _, id := range participants {
		s, err := pl.Summarize(id, period)
		if err != nil {
			return WorkloadBalance{}, err
		}
		balance.Summaries = append(balance.Summaries, s)
		total += float64(s.TotalMinutes)
	}
	if len(balance.Summaries) == 0 {
		return balance, nil
	}

	n := float64(len(balance.Summaries))
	balance.MeanMinutes = total / n
	var sq float64
	for _, s := range balance.Summaries {
		d := float64(s.TotalMinutes) - balance.MeanMinutes
		sq += d * d
	}
	balance.StdDevMinutes = math.Sqrt(sq / n)
	if balance.MeanMinutes > 0 {
		balance.Imbalance = balance.StdDevMinutes / balance.MeanMinutes
	}
	return balance, nil
}
