package schedule

import (
	"fmt"
	"time"
)

// SampleParticipants returns the built-in demo directory: eight people
// spread across timezones with varied working hours and preferences.
func SampleParticipants() []Participant {
	entries := []struct {
		id                   string
		tz                   string
		start, end           int
		maxDaily, breakHours int
	}{
		{"alice@company.com", "America/New_York", 9, 17, 6, 15},
		{"bob@company.com", "America/Los_Angeles", 8, 16, 5, 15},
		{"charlie@company.com", "Europe/London", 9, 18, 7, 10},
		{"diana@company.com", "Asia/Tokyo", 9, 17, 6, 15},
		{"eve@company.com", "Australia/Sydney", 8, 16, 5, 20},
		{"frank@company.com", "America/Chicago", 9, 17, 6, 15},
		{"grace@company.com", "Europe/Berlin", 8, 17, 6, 10},
		{"henry@company.com", "Asia/Singapore", 9, 18, 7, 15},
	}
	out := make([]Participant, 0, len(entries))
	for _, e := range entries {
		p, err := NewParticipant(e.id, e.tz, e.start, e.end, e.maxDaily, e.breakHours)
		if err != nil {
			// The table above is static; a failure here is a programming error.
			panic(err)
		}
		out = append(out, p)
	}
	return out
}

// sampleMeetings describes the demo calendar relative to a base day.
// Offsets are days after base; hours are local to the given zone.
var sampleMeetings = []struct {
	title        string
	organizer    string
	others       []string
	zone         string
	dayOffset    int
	hour, minute int
	minutes      int
	agenda       string
}{
	{"Daily Standup", "alice@company.com", []string{"bob@company.com", "frank@company.com"}, "America/New_York", 1, 9, 30, 15, "Yesterday, today, blockers"},
	{"Daily Standup", "alice@company.com", []string{"bob@company.com", "frank@company.com"}, "America/New_York", 2, 9, 30, 15, "Yesterday, today, blockers"},
	{"Sprint Planning", "alice@company.com", []string{"bob@company.com", "charlie@company.com", "frank@company.com"}, "America/New_York", 1, 11, 0, 60, "Sprint goal, backlog grooming, capacity"},
	{"Design Review", "charlie@company.com", []string{"grace@company.com", "alice@company.com"}, "Europe/London", 2, 14, 0, 45, "Walk through the new layout proposals"},
	{"1on1 Alice / Bob", "alice@company.com", []string{"bob@company.com"}, "America/New_York", 3, 14, 0, 30, ""},
	{"Product Brainstorm", "grace@company.com", []string{"charlie@company.com", "henry@company.com"}, "Europe/Berlin", 3, 10, 0, 60, "Ideas for the Q4 roadmap"},
	{"All-Hands", "alice@company.com", []string{"bob@company.com", "charlie@company.com", "diana@company.com", "eve@company.com", "frank@company.com", "grace@company.com", "henry@company.com"}, "America/New_York", 4, 10, 0, 60, "Company updates and Q&A"},
	{"Release Retrospective", "frank@company.com", []string{"alice@company.com", "bob@company.com"}, "America/Chicago", 4, 15, 0, 45, "What went well, what to change"},
	{"APAC Sync", "diana@company.com", []string{"henry@company.com", "eve@company.com"}, "Asia/Tokyo", 2, 10, 0, 30, "Regional status round"},
	{"Budget Planning", "charlie@company.com", []string{"grace@company.com"}, "Europe/London", 5, 11, 0, 90, "Headcount and tooling spend"},
}

// Seed fills a store with the demo directory and a deterministic week of
// meetings starting the day after base. Used by serve --sample-data.
func Seed(store *Store, base time.Time) error {
	for _, p := range SampleParticipants() {
		store.UpsertParticipant(p)
	}
	day := base.UTC().Truncate(24 * time.Hour)
	for _, sm := range sampleMeetings {
		local := day.AddDate(0, 0, sm.dayOffset)
		start, err := ToAbsolute(time.Date(local.Year(), local.Month(), local.Day(), sm.hour, sm.minute, 0, 0, time.UTC), sm.zone)
		if err != nil {
			return fmt.Errorf("seeding %q: %w", sm.title, err)
		}
		participants := append([]string{sm.organizer}, sm.others...)
		m, err := NewMeeting(sm.title, participants, start, start.Add(time.Duration(sm.minutes)*time.Minute), sm.zone, sm.agenda)
		if err != nil {
			return fmt.Errorf("seeding %q: %w", sm.title, err)
		}
		if err := store.Add(m); err != nil {
			return fmt.Errorf("seeding %q: %w", sm.title, err)
		}
	}
	return nil
}
