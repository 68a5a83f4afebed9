package schedule

import "time"

// Planner runs the scheduling computations on top of a store: conflict
// detection, candidate generation, slot scoring, workload aggregation,
// and effectiveness scoring. It holds no state of its own beyond the
// store reference and a clock, so a single planner is safe for
// concurrent use.
type Planner struct {
	store *Store
	now   func() time.Time
}

// NewPlanner returns a planner over the given store.
func NewPlanner(store *Store) *Planner {
	return &Planner{store: store, now: time.Now}
}

// Store exposes the underlying calendar store.
func (pl *Planner) Store() *Store {
	return pl.store
}
