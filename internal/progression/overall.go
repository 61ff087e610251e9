package progression

import (
	"math"

	"guessr/internal/player"
)

// OverallScore derives the composite player score from the fully updated
// state. It is recomputed from scratch every cycle; the stored value is
// only a cache.
func OverallScore(st *player.State, unlockedAchievements int) int {
	score := st.Level*100 +
		st.Experience/10 +
		st.GamesPlayed*5 +
		st.AverageScore/2 +
		int(math.Floor(st.SkillRatings.Mean())) +
		unlockedAchievements*25 +
		st.StreakRecord*10

	if st.GamesPlayed > 10 {
		best := st.BestSingleGame
		if best < 1 {
			best = 1
		}
		score += int(math.Floor(float64(st.AverageScore) / float64(best) * 100))
	}
	return score
}
