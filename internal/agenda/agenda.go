// Package agenda produces deterministic agenda suggestions for a
// meeting topic: a timed item list plus preparation tips, templated by
// the same keyword classification the engine uses for meeting types.
package agenda

import (
	"fmt"
	"time"

	"github.com/teemow/meetfewer/internal/schedule"
)

// Item is one agenda entry with its time allocation.
type Item struct {
	Title   string `json:"title"`
	Minutes int    `json:"minutes"`
}

// Suggestion is a complete agenda proposal for a topic.
type Suggestion struct {
	Topic           string               `json:"topic"`
	MeetingType     schedule.MeetingType `json:"meetingType"`
	TotalMinutes    int                  `json:"totalMinutes"`
	Items           []Item               `json:"items"`
	PreparationTips []string             `json:"preparationTips"`
}

// templates maps a meeting type to its agenda shape. Item minutes sum to
// the type's reference duration.
var templates = map[schedule.MeetingType]struct {
	items []Item
	tips  []string
}{
	schedule.TypeStandup: {
		items: []Item{
			{"What moved since yesterday", 5},
			{"Today's focus", 5},
			{"Blockers", 5},
		},
		tips: []string{
			"keep updates to one minute per person",
			"park anything needing discussion for after the standup",
		},
	},
	schedule.TypePlanning: {
		items: []Item{
			{"Goal for the cycle", 10},
			{"Review candidate work items", 25},
			{"Estimate and commit", 20},
			{"Risks and dependencies", 5},
		},
		tips: []string{
			"groom the backlog before the session",
			"bring capacity numbers for the team",
		},
	},
	schedule.TypeReview: {
		items: []Item{
			{"Context and goals", 5},
			{"Walkthrough", 25},
			{"Feedback and decisions", 10},
			{"Action items", 5},
		},
		tips: []string{
			"circulate the material a day ahead",
			"note decisions and owners as you go",
		},
	},
	schedule.TypeBrainstorm: {
		items: []Item{
			{"Frame the problem", 10},
			{"Silent idea generation", 10},
			{"Share and cluster", 25},
			{"Pick directions to explore", 15},
		},
		tips: []string{
			"defer judgement until the clustering step",
			"capture every idea, merge later",
		},
	},
	schedule.TypeOneOnOne: {
		items: []Item{
			{"How things are going", 10},
			{"Topics from both sides", 15},
			{"Growth and feedback", 5},
		},
		tips: []string{
			"share discussion topics beforehand",
			"revisit action items from last time",
		},
	},
	schedule.TypeAllHands: {
		items: []Item{
			{"Company updates", 20},
			{"Team highlights", 20},
			{"Questions and answers", 20},
		},
		tips: []string{
			"collect questions ahead of time",
			"record the session for absent colleagues",
		},
	},
	schedule.TypeGeneric: {
		items: []Item{
			{"Context", 5},
			{"Discussion", 20},
			{"Next steps", 5},
		},
		tips: []string{
			"state the desired outcome in the invite",
		},
	},
}

// Generate builds an agenda suggestion for the topic. The participant
// list only shapes the advice: large groups get a facilitation tip and
// a round of introductions.
func Generate(topic string, participants []string) Suggestion {
	typ := schedule.ClassifyMeeting(topic)
	tmpl := templates[typ]

	s := Suggestion{
		Topic:       topic,
		MeetingType: typ,
		Items:       make([]Item, 0, len(tmpl.items)+1),
	}
	if len(participants) > 6 && typ != schedule.TypeAllHands {
		s.Items = append(s.Items, Item{Title: "Introductions", Minutes: 5})
	}
	s.Items = append(s.Items, tmpl.items...)
	for _, it := range s.Items {
		s.TotalMinutes += it.Minutes
	}

	s.PreparationTips = append(s.PreparationTips, tmpl.tips...)
	if len(participants) > 6 {
		s.PreparationTips = append(s.PreparationTips,
			fmt.Sprintf("with %d attendees, assign a facilitator to keep time", len(participants)))
	}
	return s
}

// FitsDuration reports whether the suggestion fits in the given slot
// length.
func (s Suggestion) FitsDuration(d time.Duration) bool {
	return time.Duration(s.TotalMinutes)*time.Minute <= d
}
