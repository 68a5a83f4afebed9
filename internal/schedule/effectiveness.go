package schedule

import (
	"fmt"
	"strings"
	"time"
)

// MeetingType is a keyword-derived classification of a meeting title.
type MeetingType string

const (
	TypeStandup    MeetingType = "standup"
	TypePlanning   MeetingType = "planning"
	TypeReview     MeetingType = "review"
	TypeBrainstorm MeetingType = "brainstorm"
	TypeOneOnOne   MeetingType = "1on1"
	TypeAllHands   MeetingType = "all-hands"
	TypeGeneric    MeetingType = "generic"
)

// typeKeywords maps title keywords to meeting types. Order matters: the
// first keyword found in the lowercased title wins.
var typeKeywords = []struct {
	keyword string
	typ     MeetingType
}{
	{"standup", TypeStandup},
	{"stand-up", TypeStandup},
	{"daily sync", TypeStandup},
	{"sync", TypeStandup},
	{"1on1", TypeOneOnOne},
	{"1:1", TypeOneOnOne},
	{"one-on-one", TypeOneOnOne},
	{"all-hands", TypeAllHands},
	{"all hands", TypeAllHands},
	{"town hall", TypeAllHands},
	{"planning", TypePlanning},
	{"strategy", TypePlanning},
	{"review", TypeReview},
	{"retrospective", TypeReview},
	{"retro", TypeReview},
	{"brainstorm", TypeBrainstorm},
	{"ideation", TypeBrainstorm},
}

// referenceDurations holds the reference length per meeting type.
var referenceDurations = map[MeetingType]time.Duration{
	TypeStandup:    15 * time.Minute,
	TypeOneOnOne:   30 * time.Minute,
	TypeReview:     45 * time.Minute,
	TypePlanning:   60 * time.Minute,
	TypeBrainstorm: 60 * time.Minute,
	TypeAllHands:   60 * time.Minute,
	TypeGeneric:    30 * time.Minute,
}

// ClassifyMeeting derives the meeting type from the title.
func ClassifyMeeting(title string) MeetingType {
	lower := strings.ToLower(title)
	for _, tk := range typeKeywords {
		if strings.Contains(lower, tk.keyword) {
			return tk.typ
		}
	}
	return TypeGeneric
}

// ReferenceDuration returns the reference length for a meeting type.
func ReferenceDuration(typ MeetingType) time.Duration {
	if d, ok := referenceDurations[typ]; ok {
		return d
	}
	return referenceDurations[TypeGeneric]
}

// EffectivenessReport scores one meeting. The four factors carry equal
// weight and each lies in [0,1], so Score does too.
type EffectivenessReport struct {
	MeetingID          string      `json:"meetingId"`
	Type               MeetingType `json:"type"`
	Score              float64     `json:"score"`
	DurationEfficiency float64     `json:"durationEfficiency"`
	GroupSize          float64     `json:"groupSize"`
	AgendaPresence     float64     `json:"agendaPresence"`
	TimeOfDay          float64     `json:"timeOfDay"`
	Suggestions        []string    `json:"suggestions,omitempty"`
}

// ScoreMeetingEffectiveness rates a scheduled meeting on duration
// efficiency against its type's reference duration, group size, agenda
// presence, and time-of-day quality on the organizer's local clock.
func (pl *Planner) ScoreMeetingEffectiveness(meetingID string) (EffectivenessReport, error) {
	m, err := pl.store.Meeting(meetingID)
	if err != nil {
		return EffectivenessReport{}, err
	}

	report := EffectivenessReport{
		MeetingID: m.ID,
		Type:      ClassifyMeeting(m.Title),
	}
	report.DurationEfficiency = durationEfficiency(m.Duration(), ReferenceDuration(report.Type))
	report.GroupSize = groupSizeEfficiency(len(m.Participants))
	if strings.TrimSpace(m.Agenda) != "" {
		report.AgendaPresence = 1.0
	} else {
		report.AgendaPresence = 0.3
	}

	// The organizer's directory zone decides local time; fall back to
	// the zone the meeting was created in when the organizer is not
	// registered.
	zone := m.Timezone
	if p, err := pl.store.Participant(m.Organizer()); err == nil {
		zone = p.Timezone
	}
	local, err := ToLocal(m.Start, zone)
	if err != nil {
		return EffectivenessReport{}, err
	}
	report.TimeOfDay = timeOfDayQuality(local.Hour())

	report.Score = (report.DurationEfficiency + report.GroupSize +
		report.AgendaPresence + report.TimeOfDay) / 4
	report.Suggestions = effectivenessSuggestions(m, report)
	return report, nil
}

// durationEfficiency peaks at the reference duration and decays
// symmetrically as the ratio between actual and reference grows.
func durationEfficiency(actual, reference time.Duration) float64 {
	if actual <= 0 || reference <= 0 {
		return 0
	}
	if actual > reference {
		return float64(reference) / float64(actual)
	}
	return float64(actual) / float64(reference)
}

// groupSizeEfficiency peaks for three to six participants.
func groupSizeEfficiency(size int) float64 {
	switch {
	case size >= 3 && size <= 6:
		return 1.0
	case size == 2:
		return 0.8
	case size >= 7 && size <= 10:
		return 0.7
	case size == 1:
		return 0.4
	default:
		return 0.4
	}
}

func effectivenessSuggestions(m Meeting, r EffectivenessReport) []string {
	var out []string
	ref := ReferenceDuration(r.Type)
	if m.Duration() > ref {
		out = append(out, fmt.Sprintf("shorten to %d minutes, the usual length for a %s", int(ref/time.Minute), r.Type))
	}
	if r.AgendaPresence < 1.0 {
		out = append(out, "add an agenda so participants can prepare")
	}
	if len(m.Participants) > 6 {
		out = append(out, "trim the invite list; meetings work best with 3-6 people")
	}
	if r.TimeOfDay < 0.6 {
		out = append(out, "move to late morning or early afternoon on the organizer's clock")
	}
	return out
}
