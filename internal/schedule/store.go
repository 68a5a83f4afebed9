package schedule

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is the in-memory calendar: a participant directory plus the set
// of scheduled meetings. A single read-write mutex guards all state;
// every exported operation acquires the lock exactly once, so reads run
// concurrently and writes serialize.
type Store struct {
	mu           sync.RWMutex
	participants map[string]Participant
	meetings     map[string]Meeting
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		participants: make(map[string]Participant),
		meetings:     make(map[string]Meeting),
	}
}

// UpsertParticipant registers or replaces a directory entry.
func (s *Store) UpsertParticipant(p Participant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.participants[p.ID] = p
}

// Participant looks up one directory entry.
func (s *Store) Participant(id string) (Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.participants[id]
	if !ok {
		return Participant{}, fmt.Errorf("%w: %q", ErrParticipantNotFound, id)
	}
	return p, nil
}

// Participants returns the directory ordered by ID.
func (s *Store) Participants() []Participant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Participant, 0, len(s.participants))
	for _, p := range s.participants {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Resolve maps participant IDs to directory entries, failing on the
// first unknown ID.
func (s *Store) Resolve(ids []string) ([]Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolveLocked(ids)
}

func (s *Store) resolveLocked(ids []string) ([]Participant, error) {
	out := make([]Participant, 0, len(ids))
	for _, id := range ids {
		p, ok := s.participants[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrParticipantNotFound, id)
		}
		out = append(out, p)
	}
	return out, nil
}

// Add inserts a meeting. Every listed participant must exist in the
// directory; on any validation failure the store is left untouched.
// Conflicts with existing meetings never block an add.
func (s *Store) Add(m Meeting) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(m.Participants) == 0 {
		return fmt.Errorf("%w: meeting needs at least one participant", ErrInvalidMeeting)
	}
	if !m.End.After(m.Start) {
		return fmt.Errorf("%w: end is not after start", ErrInvalidMeeting)
	}
	if _, err := s.resolveLocked(m.Participants); err != nil {
		return err
	}
	if _, exists := s.meetings[m.ID]; exists {
		return fmt.Errorf("%w: duplicate meeting ID %q", ErrInvalidMeeting, m.ID)
	}
	s.meetings[m.ID] = m
	return nil
}

// Remove deletes a meeting and returns it.
func (s *Store) Remove(id string) (Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.meetings[id]
	if !ok {
		return Meeting{}, fmt.Errorf("%w: %q", ErrMeetingNotFound, id)
	}
	delete(s.meetings, id)
	return m, nil
}

// Meeting looks up one meeting by ID.
func (s *Store) Meeting(id string) (Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.meetings[id]
	if !ok {
		return Meeting{}, fmt.Errorf("%w: %q", ErrMeetingNotFound, id)
	}
	return m, nil
}

// Reschedule moves a meeting to a new start, keeping its duration and
// content but issuing a fresh ID and creation timestamp. The old entry
// is removed and the replacement inserted under one lock acquisition.
func (s *Store) Reschedule(id string, newStart time.Time) (Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.meetings[id]
	if !ok {
		return Meeting{}, fmt.Errorf("%w: %q", ErrMeetingNotFound, id)
	}
	moved := old
	moved.ID = uuid.NewString()
	moved.Start = newStart.UTC()
	moved.End = newStart.UTC().Add(old.Duration())
	moved.CreatedAt = time.Now().UTC()
	delete(s.meetings, id)
	s.meetings[moved.ID] = moved
	return moved, nil
}

// MeetingsFor returns the participant's meetings ordered by start time,
// then creation time. A non-nil window restricts the result to meetings
// overlapping it (half-open).
func (s *Store) MeetingsFor(participant string, window *Interval) ([]Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.participants[participant]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrParticipantNotFound, participant)
	}
	var out []Meeting
	for _, m := range s.meetings {
		if !m.Includes(participant) {
			continue
		}
		if window != nil && !m.Interval().Overlaps(*window) {
			continue
		}
		out = append(out, m)
	}
	sortMeetings(out)
	return out, nil
}

// Meetings returns all meetings ordered by start time, then creation
// time.
func (s *Store) Meetings() []Meeting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Meeting, 0, len(s.meetings))
	for _, m := range s.meetings {
		out = append(out, m)
	}
	sortMeetings(out)
	return out
}

// Counts reports directory and calendar sizes, for health reporting.
func (s *Store) Counts() (participants, meetings int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.participants), len(s.meetings)
}

func sortMeetings(ms []Meeting) {
	sort.Slice(ms, func(i, j int) bool {
		if !ms[i].Start.Equal(ms[j].Start) {
			return ms[i].Start.Before(ms[j].Start)
		}
		return ms[i].CreatedAt.Before(ms[j].CreatedAt)
	})
}
