package progression

import (
	"guessr/internal/player"
	"guessr/internal/session"
)

// ApplyStats folds a session's totals into the lifetime aggregates:
// games played, score totals and averages, best single game, mode and
// category mastery, and the streak record.
func ApplyStats(st *player.State, sum *session.Summary) {
	st.GamesPlayed++
	st.TotalGameScore += sum.FinalScore
	st.AverageScore = st.TotalGameScore / st.GamesPlayed
	if sum.FinalScore > st.BestSingleGame {
		st.BestSingleGame = sum.FinalScore
	}
	if sum.MaxStreak > st.StreakRecord {
		st.StreakRecord = sum.MaxStreak
	}

	if st.ModeMastery == nil {
		st.ModeMastery = make(map[session.Mode]player.ModeMastery)
	}
	mm := st.ModeMastery[sum.Mode]
	mm.Played++
	mm.TotalScore += sum.FinalScore
	mm.AverageScore = mm.TotalScore / mm.Played
	if sum.FinalScore > mm.BestScore {
		mm.BestScore = sum.FinalScore
	}
	st.ModeMastery[sum.Mode] = mm

	if st.CategoryMastery == nil {
		st.CategoryMastery = make(map[string]player.CategoryMastery)
	}
	for category, perf := range sum.CategoryPerformance {
		cm := st.CategoryMastery[category]
		cm.QuestionsAnswered += perf.QuestionsAnswered
		cm.TotalScore += perf.TotalScore
		if perf.BestScore > cm.BestScore {
			cm.BestScore = perf.BestScore
		}
		if cm.QuestionsAnswered > 0 {
			cm.AverageScore = cm.TotalScore / cm.QuestionsAnswered
		}
		st.CategoryMastery[category] = cm
	}
}
