package player

import (
	"time"

	"guessr/internal/session"
)

// DefaultSkillRating is the starting value for every skill axis. The
// exponential smoothing pulls ratings away from this neutral midpoint as
// sessions accumulate.
const DefaultSkillRating = 50.0

// SkillRatings holds the five smoothed skill metrics, each in [0,100].
type SkillRatings struct {
	Accuracy    float64 `json:"accuracy"`
	Speed       float64 `json:"speed"`
	Consistency float64 `json:"consistency"`
	Knowledge   float64 `json:"knowledge"`
	Strategy    float64 `json:"strategy"`
}

// Mean returns the average of the five ratings.
func (r SkillRatings) Mean() float64 {
	return (r.Accuracy + r.Speed + r.Consistency + r.Knowledge + r.Strategy) / 5
}

// ModeMastery aggregates lifetime performance for one game mode.
type ModeMastery struct {
	Played       int `json:"played"`
	TotalScore   int `json:"total_score"`
	BestScore    int `json:"best_score"`
	AverageScore int `json:"average_score"`
}

// CategoryMastery aggregates lifetime performance for one question category.
type CategoryMastery struct {
	QuestionsAnswered int `json:"questions_answered"`
	TotalScore        int `json:"total_score"`
	BestScore         int `json:"best_score"`
	AverageScore      int `json:"average_score"`
}

// State is the durable per-player progression record. It is mutated only
// by the progression engine's update cycle and persisted as one JSON
// document in the durable store.
type State struct {
	Level                 int `json:"level"`
	Experience            int `json:"experience"`
	ExperienceToNextLevel int `json:"experience_to_next_level"`

	GamesPlayed    int `json:"games_played"`
	TotalGameScore int `json:"total_game_score"`
	AverageScore   int `json:"average_score"`
	BestSingleGame int `json:"best_single_game"`

	SkillRatings SkillRatings `json:"skill_ratings"`

	ModeMastery     map[session.Mode]ModeMastery `json:"mode_mastery"`
	CategoryMastery map[string]CategoryMastery   `json:"category_mastery"`

	StreakRecord int `json:"streak_record"`

	Milestones map[string]time.Time `json:"milestones"`

	// OverallScore is a derived cache, recomputed every update cycle.
	OverallScore int `json:"overall_score"`
}

// NewState returns the default state for a player's first session.
func NewState() *State {
	return &State{
		Level:                 1,
		ExperienceToNextLevel: ExperienceToNextLevel(1),
		SkillRatings: SkillRatings{
			Accuracy:    DefaultSkillRating,
			Speed:       DefaultSkillRating,
			Consistency: DefaultSkillRating,
			Knowledge:   DefaultSkillRating,
			Strategy:    DefaultSkillRating,
		},
		ModeMastery:     make(map[session.Mode]ModeMastery),
		CategoryMastery: make(map[string]CategoryMastery),
		Milestones:      make(map[string]time.Time),
	}
}

// Clone returns a deep copy. The update cycle works on a copy so a failed
// cycle leaves the loaded state untouched.
func (s *State) Clone() *State {
	c := *s
	c.ModeMastery = make(map[session.Mode]ModeMastery, len(s.ModeMastery))
	for k, v := range s.ModeMastery {
		c.ModeMastery[k] = v
	}
	c.CategoryMastery = make(map[string]CategoryMastery, len(s.CategoryMastery))
	for k, v := range s.CategoryMastery {
		c.CategoryMastery[k] = v
	}
	c.Milestones = make(map[string]time.Time, len(s.Milestones))
	for k, v := range s.Milestones {
		c.Milestones[k] = v
	}
	return &c
}
