package schedule

import (
	"fmt"
	"time"
)

// Default scheduling preferences applied when a participant is registered
// without explicit values.
const (
	DefaultWorkStartHour    = 9
	DefaultWorkEndHour      = 17
	DefaultMaxDailyMeetings = 6
	DefaultMinBreakMinutes  = 15
)

// Participant describes one directory entry: an identifier (typically an
// email address), a home timezone, and scheduling preferences. Working
// hours are whole local hours, half-open: a participant with
// WorkStartHour=9, WorkEndHour=17 is available from 09:00 up to but not
// including 17:00 local wall-clock time.
type Participant struct {
	ID               string `json:"id"`
	Timezone         string `json:"timezone"`
	WorkStartHour    int    `json:"workStartHour"`
	WorkEndHour      int    `json:"workEndHour"`
	MaxDailyMeetings int    `json:"maxDailyMeetings"`
	MinBreakMinutes  int    `json:"minBreakMinutes"`
}

// NewParticipant builds a validated participant. Zero-valued preferences
// are filled with the defaults above.
func NewParticipant(id, timezone string, workStart, workEnd, maxDaily, minBreak int) (Participant, error) {
	if id == "" {
		return Participant{}, fmt.Errorf("%w: participant ID must not be empty", ErrInvalidMeeting)
	}
	if _, err := time.LoadLocation(timezone); err != nil || timezone == "" {
		return Participant{}, fmt.Errorf("%w: %q", ErrInvalidTimezone, timezone)
	}
	p := Participant{
		ID:               id,
		Timezone:         timezone,
		WorkStartHour:    workStart,
		WorkEndHour:      workEnd,
		MaxDailyMeetings: maxDaily,
		MinBreakMinutes:  minBreak,
	}
	if p.WorkStartHour == 0 && p.WorkEndHour == 0 {
		p.WorkStartHour = DefaultWorkStartHour
		p.WorkEndHour = DefaultWorkEndHour
	}
	if p.WorkStartHour < 0 || p.WorkEndHour > 24 || p.WorkStartHour >= p.WorkEndHour {
		return Participant{}, fmt.Errorf("%w: working hours %d-%d out of order", ErrInvalidMeeting, p.WorkStartHour, p.WorkEndHour)
	}
	if p.MaxDailyMeetings <= 0 {
		p.MaxDailyMeetings = DefaultMaxDailyMeetings
	}
	if p.MinBreakMinutes < 0 {
		return Participant{}, fmt.Errorf("%w: negative minimum break", ErrInvalidMeeting)
	}
	if p.MinBreakMinutes == 0 {
		p.MinBreakMinutes = DefaultMinBreakMinutes
	}
	return p, nil
}

// Location resolves the participant's home timezone. The zone was
// validated at construction, so a failure here means the participant was
// built outside NewParticipant.
func (p Participant) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, p.Timezone)
	}
	return loc, nil
}

// WorkingWindow returns the participant's working hours on the local day
// containing local, as absolute instants. The window is half-open.
func (p Participant) WorkingWindow(local time.Time) (Interval, error) {
	loc, err := p.Location()
	if err != nil {
		return Interval{}, err
	}
	day := local.In(loc)
	start := time.Date(day.Year(), day.Month(), day.Day(), p.WorkStartHour, 0, 0, 0, loc)
	end := time.Date(day.Year(), day.Month(), day.Day(), p.WorkEndHour, 0, 0, 0, loc)
	return Interval{Start: start.UTC(), End: end.UTC()}, nil
}
