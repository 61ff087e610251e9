package session

import (
	"errors"

	"github.com/google/uuid"

	"guessr/internal/scoring"
)

// GoodAnswerThreshold is the minimum question score that counts toward a
// streak.
const GoodAnswerThreshold = 60

// ErrNoAnswers is returned when an empty session reaches the aggregator.
// Abandoned sessions must be discarded by the caller before this point.
var ErrNoAnswers = errors.New("session has no answers")

// Aggregate folds an ordered sequence of answer events into a Summary.
// The events are assumed validated; Aggregate only rejects emptiness.
func Aggregate(mode Mode, answers []AnswerEvent) (*Summary, error) {
	if len(answers) == 0 {
		return nil, ErrNoAnswers
	}

	s := &Summary{
		ID:                  uuid.NewString(),
		Mode:                mode,
		Answers:             answers,
		MaxPossibleScore:    len(answers) * scoring.MaxScore,
		CategoryPerformance: make(map[string]CategoryPerformance),
	}

	streak := 0
	seenCategory := make(map[string]bool)
	seenDifficulty := make(map[scoring.Difficulty]bool)

	for _, a := range answers {
		s.FinalScore += a.Score
		s.TotalTime += a.TimeLimit - a.TimeRemaining

		if a.Score >= GoodAnswerThreshold {
			streak++
			if streak > s.MaxStreak {
				s.MaxStreak = streak
			}
		} else {
			streak = 0
		}

		perf := s.CategoryPerformance[a.Category]
		perf.QuestionsAnswered++
		perf.TotalScore += a.Score
		if a.Score > perf.BestScore {
			perf.BestScore = a.Score
		}
		s.CategoryPerformance[a.Category] = perf

		if !seenCategory[a.Category] {
			seenCategory[a.Category] = true
			s.Categories = append(s.Categories, a.Category)
		}
		if !seenDifficulty[a.Difficulty] {
			seenDifficulty[a.Difficulty] = true
			s.Difficulties = append(s.Difficulties, a.Difficulty)
		}
	}

	return s, nil
}
