package achievements

import (
	"time"

	"guessr/internal/player"
	"guessr/internal/session"
)

// Evaluate runs every still-locked catalog entry's predicate against the
// session summary and the updated player state. It returns the merged
// state and the entries that unlocked this pass, in catalog order.
//
// The prior state is never mutated, and unlocked entries are never
// re-evaluated, so unlockedAt timestamps are stable and re-running the
// same session against the same prior inputs is idempotent.
func Evaluate(catalog []Definition, sum *session.Summary, st *player.State, prior State, now time.Time) (State, []Definition) {
	next := prior.Clone()

	var unlocked []Definition
	for _, def := range catalog {
		if next[def.ID].Unlocked {
			continue
		}
		if !def.Unlock(sum, st) {
			continue
		}
		at := now
		next[def.ID] = Unlock{Unlocked: true, UnlockedAt: &at}
		unlocked = append(unlocked, def)
	}
	return next, unlocked
}
