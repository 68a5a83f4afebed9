package schedule

import (
	"fmt"
	"sort"
	"time"
)

// PatternReport describes one participant's meeting habits over a
// period. Buckets use the participant's home timezone.
type PatternReport struct {
	Participant    string         `json:"participant"`
	Period         Interval       `json:"period"`
	MeetingCount   int            `json:"meetingCount"`
	TotalMinutes   int            `json:"totalMinutes"`
	AverageMinutes float64        `json:"averageMinutes"`
	ByWeekday      map[string]int `json:"byWeekday"`
	ByHour         map[int]int    `json:"byHour"`
	BusiestWeekday string         `json:"busiestWeekday,omitempty"`
	Insights       []string       `json:"insights,omitempty"`
}

// AnalyzeMeetingPatterns buckets the participant's meetings by local
// weekday and starting hour and derives deterministic insights.
func (pl *Planner) AnalyzeMeetingPatterns(participant string, period Interval) (PatternReport, error) {
	if !period.End.After(period.Start) {
		return PatternReport{}, fmt.Errorf("%w: %s to %s", ErrEmptyPeriod,
			period.Start.Format(time.RFC3339), period.End.Format(time.RFC3339))
	}
	p, err := pl.store.Participant(participant)
	if err != nil {
		return PatternReport{}, err
	}
	loc, err := p.Location()
	if err != nil {
		return PatternReport{}, err
	}
	meetings, err := pl.store.MeetingsFor(participant, &period)
	if err != nil {
		return PatternReport{}, err
	}

	report := PatternReport{
		Participant:  participant,
		Period:       period,
		MeetingCount: len(meetings),
		ByWeekday:    make(map[string]int),
		ByHour:       make(map[int]int),
	}
	early, late, long := 0, 0, 0
	for _, m := range meetings {
		local := m.Start.In(loc)
		report.TotalMinutes += int(m.Duration() / time.Minute)
		report.ByWeekday[local.Weekday().String()]++
		report.ByHour[local.Hour()]++
		if local.Hour() < p.WorkStartHour {
			early++
		}
		if local.Hour() >= p.WorkEndHour-1 {
			late++
		}
		if m.Duration() > time.Hour {
			long++
		}
	}
	if report.MeetingCount > 0 {
		report.AverageMinutes = float64(report.TotalMinutes) / float64(report.MeetingCount)
	}
	report.BusiestWeekday = busiestWeekday(report.ByWeekday)

	days := period.End.Sub(period.Start).Hours() / 24
	if days >= 1 && float64(report.MeetingCount)/days > float64(p.MaxDailyMeetings)*0.8 {
		report.Insights = append(report.Insights, "meeting load is close to the daily cap on most days")
	}
	if early > 0 {
		report.Insights = append(report.Insights, fmt.Sprintf("%d meetings start before working hours", early))
	}
	if late > 0 {
		report.Insights = append(report.Insights, fmt.Sprintf("%d meetings run into the end of the working day", late))
	}
	if long > 0 {
		report.Insights = append(report.Insights, fmt.Sprintf("%d meetings exceed an hour", long))
	}
	return report, nil
}

func busiestWeekday(byWeekday map[string]int) string {
	names := make([]string, 0, len(byWeekday))
	for name := range byWeekday {
		names = append(names, name)
	}
	sort.Strings(names)
	best, bestCount := "", 0
	for _, name := range names {
		if byWeekday[name] > bestCount {
			best, bestCount = name, byWeekday[name]
		}
	}
	return best
}

// Recommendation is one prioritized suggestion from OptimizeSchedule.
type Recommendation struct {
	Priority string `json:"priority"`
	Category string `json:"category"`
	Detail   string `json:"detail"`
}

// OptimizationReport lists schedule problems found for a participant
// over a period, most urgent first.
type OptimizationReport struct {
	Participant     string           `json:"participant"`
	Period          Interval         `json:"period"`
	Recommendations []Recommendation `json:"recommendations"`
}

// OptimizeSchedule scans for overloaded days, meetings outside working
// hours, back-to-back meetings below the minimum break, and overlong
// meetings, and emits prioritized recommendations.
func (pl *Planner) OptimizeSchedule(participant string, period Interval) (OptimizationReport, error) {
	if !period.End.After(period.Start) {
		return OptimizationReport{}, fmt.Errorf("%w: %s to %s", ErrEmptyPeriod,
			period.Start.Format(time.RFC3339), period.End.Format(time.RFC3339))
	}
	p, err := pl.store.Participant(participant)
	if err != nil {
		return OptimizationReport{}, err
	}
	loc, err := p.Location()
	if err != nil {
		return OptimizationReport{}, err
	}
	meetings, err := pl.store.MeetingsFor(participant, &period)
	if err != nil {
		return OptimizationReport{}, err
	}

	report := OptimizationReport{Participant: participant, Period: period}

	perDay := make(map[string]int)
	for _, m := range meetings {
		perDay[m.Start.In(loc).Format(time.DateOnly)]++
	}
	days := make([]string, 0, len(perDay))
	for day := range perDay {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		if perDay[day] > p.MaxDailyMeetings {
			report.Recommendations = append(report.Recommendations, Recommendation{
				Priority: "high",
				Category: "overload",
				Detail:   fmt.Sprintf("%s has %d meetings, over the cap of %d; move some to lighter days", day, perDay[day], p.MaxDailyMeetings),
			})
		}
	}

	for _, m := range meetings {
		local := m.Start.In(loc)
		localEnd := m.End.In(loc)
		if local.Hour() < p.WorkStartHour || localEnd.After(endOfWorkday(local, p, loc)) {
			report.Recommendations = append(report.Recommendations, Recommendation{
				Priority: "medium",
				Category: "off-hours",
				Detail:   fmt.Sprintf("%q at %s is outside the %02d:00-%02d:00 working window", m.Title, local.Format("Mon 15:04"), p.WorkStartHour, p.WorkEndHour),
			})
		}
	}

	// meetings are ordered by start; compare each pair of neighbors.
	for i := 1; i < len(meetings); i++ {
		prev, next := meetings[i-1], meetings[i]
		if prev.Interval().Overlaps(next.Interval()) {
			continue
		}
		gap := gapMinutes(prev.Interval(), next.Interval())
		if gap < p.MinBreakMinutes {
			report.Recommendations = append(report.Recommendations, Recommendation{
				Priority: "medium",
				Category: "back-to-back",
				Detail:   fmt.Sprintf("%q follows %q with only %d minutes of break (minimum %d)", next.Title, prev.Title, gap, p.MinBreakMinutes),
			})
		}
	}

	for _, m := range meetings {
		ref := ReferenceDuration(ClassifyMeeting(m.Title))
		if m.Duration() > 2*ref {
			report.Recommendations = append(report.Recommendations, Recommendation{
				Priority: "low",
				Category: "overlong",
				Detail:   fmt.Sprintf("%q runs %d minutes, over twice the usual %d", m.Title, int(m.Duration()/time.Minute), int(ref/time.Minute)),
			})
		}
	}

	sort.SliceStable(report.Recommendations, func(i, j int) bool {
		return priorityRank(report.Recommendations[i].Priority) < priorityRank(report.Recommendations[j].Priority)
	})
	return report, nil
}

func endOfWorkday(local time.Time, p Participant, loc *time.Location) time.Time {
	return time.Date(local.Year(), local.Month(), local.Day(), p.WorkEndHour, 0, 0, 0, loc)
}

func priorityRank(priority string) int {
	switch priority {
	case "high":
		return 0
	case "medium":
		return 1
	default:
		return 2
	}
}
