package achievements

import (
	"time"
)

// Unlock is the durable per-achievement record. Monotonic: once unlocked,
// never reset except by the external reset collaborator.
type Unlock struct {
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}

// State maps achievement id to its unlock record. Ids unknown to the
// current catalog are preserved verbatim so downgrades don't lose
// history; catalog ids absent from the map default to locked.
type State map[string]Unlock

// NewState returns an empty achievement state.
func NewState() State {
	return make(State)
}

// Clone returns a copy of the state.
func (s State) Clone() State {
	c := make(State, len(s))
	for id, u := range s {
		c[id] = u
	}
	return c
}

// UnlockedCount returns how many achievements are unlocked.
func (s State) UnlockedCount() int {
	n := 0
	for _, u := range s {
		if u.Unlocked {
			n++
		}
	}
	return n
}
