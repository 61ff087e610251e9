package achievements

import (
	"fmt"

	"guessr/internal/player"
	"guessr/internal/session"
)

// Category groups achievements for display.
type Category string

const (
	CategoryScore         Category = "score"
	CategoryStreak        Category = "streak"
	CategoryMode          Category = "mode"
	CategoryKnowledge     Category = "knowledge"
	CategoryParticipation Category = "participation"
	CategorySpecial       Category = "special"
)

// Predicate decides whether an achievement unlocks given the just-finished
// session and the already-updated player state. Predicates are pure: no
// side effects, no dependence on other achievements' unlock state.
type Predicate func(sum *session.Summary, st *player.State) bool

// Definition is one catalog entry. The catalog ships with the engine and
// is immutable at runtime; adding an entry in a later release unlocks it
// only for sessions played from then on.
type Definition struct {
	ID          string
	Name        string
	Description string
	Category    Category
	Unlock      Predicate
}

// Catalog returns the full achievement catalog.
func Catalog() []Definition {
	return []Definition{
		// Single-session score thresholds.
		scoreAchievement("bronze_round", "Bronze Round", 300),
		scoreAchievement("silver_round", "Silver Round", 500),
		scoreAchievement("gold_round", "Gold Round", 700),
		{
			ID: "perfect_game", Name: "Perfect Game",
			Description: "Finish a session with the maximum possible score",
			Category:    CategoryScore,
			Unlock: func(sum *session.Summary, _ *player.State) bool {
				return sum.FinalScore == sum.MaxPossibleScore
			},
		},
		{
			ID: "bullseye", Name: "Bullseye",
			Description: "Nail an exact answer for 110+ points",
			Category:    CategoryScore,
			Unlock: func(sum *session.Summary, _ *player.State) bool {
				for _, a := range sum.Answers {
					if a.Score >= 110 {
						return true
					}
				}
				return false
			},
		},

		// Streaks, session and lifetime.
		streakAchievement("hot_streak", "Hot Streak", 5),
		streakAchievement("on_fire", "On Fire", 10),
		{
			ID: "streak_legend", Name: "Streak Legend",
			Description: "Hold a lifetime streak record of 15",
			Category:    CategoryStreak,
			Unlock: func(_ *session.Summary, st *player.State) bool {
				return st.StreakRecord >= 15
			},
		},

		// Mode-specific.
		{
			ID: "marathon_finisher", Name: "Marathon Finisher",
			Description: "Score 600+ in a marathon session",
			Category:    CategoryMode,
			Unlock: func(sum *session.Summary, _ *player.State) bool {
				return sum.Mode == session.ModeMarathon && sum.FinalScore >= 600
			},
		},
		{
			ID: "blitz_ace", Name: "Blitz Ace",
			Description: "Hit 80% of the maximum score in blitz",
			Category:    CategoryMode,
			Unlock: func(sum *session.Summary, _ *player.State) bool {
				return sum.Mode == session.ModeBlitz && sum.PerformanceRatio() >= 0.8
			},
		},
		{
			ID: "all_modes", Name: "All-Rounder",
			Description: "Play every game mode at least once",
			Category:    CategoryMode,
			Unlock: func(_ *session.Summary, st *player.State) bool {
				for _, m := range session.Modes {
					if st.ModeMastery[m].Played == 0 {
						return false
					}
				}
				return true
			},
		},

		// Category knowledge.
		{
			ID: "specialist", Name: "Specialist",
			Description: "Score 400+ in a single-category session",
			Category:    CategoryKnowledge,
			Unlock: func(sum *session.Summary, _ *player.State) bool {
				return len(sum.Categories) == 1 && sum.FinalScore >= 400
			},
		},
		{
			ID: "explorer", Name: "Explorer",
			Description: "Answer questions across 5 lifetime categories",
			Category:    CategoryKnowledge,
			Unlock: func(_ *session.Summary, st *player.State) bool {
				return len(st.CategoryMastery) >= 5
			},
		},
		{
			ID: "category_devotee", Name: "Category Devotee",
			Description: "Answer 50 lifetime questions in one category",
			Category:    CategoryKnowledge,
			Unlock: func(_ *session.Summary, st *player.State) bool {
				for _, cm := range st.CategoryMastery {
					if cm.QuestionsAnswered >= 50 {
						return true
					}
				}
				return false
			},
		},

		// Participation counts.
		gamesAchievement("first_game", "Breaking the Ice", 1),
		gamesAchievement("regular", "Regular", 10),
		gamesAchievement("dedicated", "Dedicated", 50),
		gamesAchievement("centurion", "Centurion", 100),

		// Specials.
		{
			ID: "comeback", Name: "Comeback",
			Description: "Recover from a weak start with a strong final answer",
			Category:    CategorySpecial,
			// Mean of the first two answers against the last answer.
			Unlock: func(sum *session.Summary, _ *player.State) bool {
				n := len(sum.Answers)
				if n < 3 {
					return false
				}
				firstTwo := float64(sum.Answers[0].Score+sum.Answers[1].Score) / 2
				last := float64(sum.Answers[n-1].Score)
				return firstTwo < session.GoodAnswerThreshold && last >= 2*firstTwo && last >= session.GoodAnswerThreshold
			},
		},
		{
			ID: "seasoned_mind", Name: "Seasoned Mind",
			Description: "Raise every skill rating to 75 or above",
			Category:    CategorySpecial,
			Unlock: func(_ *session.Summary, st *player.State) bool {
				r := st.SkillRatings
				return r.Accuracy >= 75 && r.Speed >= 75 && r.Consistency >= 75 &&
					r.Knowledge >= 75 && r.Strategy >= 75
			},
		},
		{
			ID: "level_10", Name: "Double Digits",
			Description: "Reach level 10",
			Category:    CategorySpecial,
			Unlock: func(_ *session.Summary, st *player.State) bool {
				return st.Level >= 10
			},
		},
	}
}

func scoreAchievement(id, name string, threshold int) Definition {
	return Definition{
		ID: id, Name: name,
		Description: fmt.Sprintf("Score %d+ in a single session", threshold),
		Category:    CategoryScore,
		Unlock: func(sum *session.Summary, _ *player.State) bool {
			return sum.FinalScore >= threshold
		},
	}
}

func streakAchievement(id, name string, length int) Definition {
	return Definition{
		ID: id, Name: name,
		Description: fmt.Sprintf("Answer %d questions well in a row", length),
		Category:    CategoryStreak,
		Unlock: func(sum *session.Summary, _ *player.State) bool {
			return sum.MaxStreak >= length
		},
	}
}

func gamesAchievement(id, name string, count int) Definition {
	return Definition{
		ID: id, Name: name,
		Description: fmt.Sprintf("Complete %d sessions", count),
		Category:    CategoryParticipation,
		Unlock: func(_ *session.Summary, st *player.State) bool {
			return st.GamesPlayed >= count
		},
	}
}
