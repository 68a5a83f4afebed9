package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/meetfewer/internal/schedule"
)

func TestGenerateMatchesTopicType(t *testing.T) {
	tests := []struct {
		topic string
		want  schedule.MeetingType
	}{
		{"Daily Standup", schedule.TypeStandup},
		{"Sprint Planning", schedule.TypePlanning},
		{"Design Review", schedule.TypeReview},
		{"Roadmap Brainstorm", schedule.TypeBrainstorm},
		{"1:1 with Sam", schedule.TypeOneOnOne},
		{"Quarterly All-Hands", schedule.TypeAllHands},
		{"Vendor Selection", schedule.TypeGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			s := Generate(tt.topic, []string{"a", "b", "c"})
			assert.Equal(t, tt.want, s.MeetingType)
			assert.NotEmpty(t, s.Items)
			assert.NotEmpty(t, s.PreparationTips)
		})
	}
}

func TestGenerateTotalsMatchReferenceDuration(t *testing.T) {
	s := Generate("Sprint Planning", []string{"a", "b"})
	ref := int(schedule.ReferenceDuration(schedule.TypePlanning) / time.Minute)
	assert.Equal(t, ref, s.TotalMinutes)

	var sum int
	for _, it := range s.Items {
		sum += it.Minutes
	}
	assert.Equal(t, s.TotalMinutes, sum)
}

func TestGenerateLargeGroup(t *testing.T) {
	many := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	s := Generate("Design Review", many)

	require.NotEmpty(t, s.Items)
	assert.Equal(t, "Introductions", s.Items[0].Title)
	assert.Contains(t, s.PreparationTips, "with 8 attendees, assign a facilitator to keep time")
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate("Team Sync", []string{"a", "b"})
	b := Generate("Team Sync", []string{"a", "b"})
	assert.Equal(t, a, b)
}

func TestFitsDuration(t *testing.T) {
	s := Generate("Daily Standup", []string{"a", "b"})
	assert.True(t, s.FitsDuration(15*time.Minute))
	assert.False(t, s.FitsDuration(10*time.Minute))
}
