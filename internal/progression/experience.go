package progression

import (
	"math"

	"guessr/internal/player"
	"guessr/internal/session"
)

const (
	// BaseSessionXP is granted for any completed session.
	BaseSessionXP = 10

	// StreakBonusMin is the minimum max-streak that earns the streak bonus.
	StreakBonusMin = 3
)

// ModeMultiplier returns the experience multiplier for a game mode.
func ModeMultiplier(m session.Mode) float64 {
	switch m {
	case session.ModeMarathon:
		return 1.5
	case session.ModeBlitz:
		return 1.2
	case session.ModeCategoryChallenge:
		return 1.1
	default:
		return 1.0
	}
}

// ExperienceGain computes the XP awarded for a session: base + score
// share + streak bonus, scaled by the mode multiplier, plus a flat
// performance bonus that is deliberately not multiplied.
func ExperienceGain(sum *session.Summary) int {
	xp := BaseSessionXP + sum.FinalScore/10
	if sum.MaxStreak >= StreakBonusMin {
		xp += 2 * sum.MaxStreak
	}

	total := int(math.Round(float64(xp) * ModeMultiplier(sum.Mode)))
	return total + performanceBonus(sum.PerformanceRatio())
}

func performanceBonus(ratio float64) int {
	switch {
	case ratio >= 0.9:
		return 20
	case ratio >= 0.8:
		return 10
	case ratio >= 0.7:
		return 5
	default:
		return 0
	}
}

// ExperienceResult reports what a session did to the player's progression.
type ExperienceResult struct {
	Gained       int
	LevelsGained int
}

// ApplyExperience adds the session's XP to the state and runs the
// level-up drain loop.
func ApplyExperience(st *player.State, sum *session.Summary) ExperienceResult {
	gained := ExperienceGain(sum)
	st.Experience += gained
	levels := st.DrainLevelUps()
	return ExperienceResult{Gained: gained, LevelsGained: levels}
}
