package engine

import (
	"time"

	"guessr/internal/player"
	"guessr/internal/session"
)

// Milestone names. Each is written at most once, with the timestamp of
// the cycle that first satisfied it.
const (
	MilestoneFirstSession   = "first_session"
	MilestoneFirst500       = "first_500_session"
	MilestonePerfectSession = "first_perfect_session"
	MilestoneFirstMarathon  = "first_marathon"
	MilestoneLevel5         = "first_level_5"
	MilestoneLevel10        = "first_level_10"
)

// applyMilestones records lifetime firsts against the updated state.
func applyMilestones(st *player.State, sum *session.Summary, now time.Time) {
	mark := func(name string, hit bool) {
		if !hit {
			return
		}
		if _, done := st.Milestones[name]; done {
			return
		}
		if st.Milestones == nil {
			st.Milestones = make(map[string]time.Time)
		}
		st.Milestones[name] = now
	}

	mark(MilestoneFirstSession, true)
	mark(MilestoneFirst500, sum.FinalScore >= 500)
	mark(MilestonePerfectSession, sum.FinalScore == sum.MaxPossibleScore)
	mark(MilestoneFirstMarathon, sum.Mode == session.ModeMarathon)
	mark(MilestoneLevel5, st.Level >= 5)
	mark(MilestoneLevel10, st.Level >= 10)
}
