package session

import (
	"guessr/internal/scoring"
)

// Mode identifies a game mode.
type Mode string

const (
	ModeClassic           Mode = "classic"
	ModeMarathon          Mode = "marathon"
	ModeBlitz             Mode = "blitz"
	ModeCategoryChallenge Mode = "category-challenge"
)

// Modes lists every known game mode.
var Modes = []Mode{ModeClassic, ModeMarathon, ModeBlitz, ModeCategoryChallenge}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	for _, known := range Modes {
		if m == known {
			return true
		}
	}
	return false
}

// AnswerEvent is one answered question, captured at submission time.
// TimeRemaining is frozen at the submission instant and is never
// re-derived from a live countdown.
type AnswerEvent struct {
	QuestionID    string             `json:"question_id" validate:"required"`
	Category      string             `json:"category" validate:"required"`
	Difficulty    scoring.Difficulty `json:"difficulty" validate:"required"`
	UserAnswer    string             `json:"user_answer" validate:"required"`
	CorrectAnswer string             `json:"correct_answer" validate:"required"`
	TimeRemaining float64            `json:"time_remaining" validate:"gte=0"`
	TimeLimit     float64            `json:"time_limit" validate:"gt=0"`
	Score         int                `json:"score" validate:"gte=0,lte=120"`
}

// CategoryPerformance accumulates per-category results within one session.
type CategoryPerformance struct {
	QuestionsAnswered int `json:"questions_answered"`
	TotalScore        int `json:"total_score"`
	BestScore         int `json:"best_score"`
}

// Summary is the folded result of one completed game. It is built once,
// passed through the progression engine, and discarded; only its effects
// on player state persist.
type Summary struct {
	ID                  string
	Mode                Mode
	Answers             []AnswerEvent
	FinalScore          int
	MaxPossibleScore    int
	MaxStreak           int
	TotalTime           float64 // seconds spent across all questions
	Categories          []string
	Difficulties        []scoring.Difficulty
	CategoryPerformance map[string]CategoryPerformance
}

// PerformanceRatio returns finalScore / maxPossibleScore in [0,1].
func (s *Summary) PerformanceRatio() float64 {
	if s.MaxPossibleScore == 0 {
		return 0
	}
	return float64(s.FinalScore) / float64(s.MaxPossibleScore)
}

// AverageTimeRemaining returns the mean captured time-remaining across answers.
func (s *Summary) AverageTimeRemaining() float64 {
	if len(s.Answers) == 0 {
		return 0
	}
	var sum float64
	for _, a := range s.Answers {
		sum += a.TimeRemaining
	}
	return sum / float64(len(s.Answers))
}
