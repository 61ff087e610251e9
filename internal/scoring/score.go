package scoring

import (
	"math"
	"strconv"
)

const (
	// MaxScore is the ceiling for any single question score.
	MaxScore = 120

	// FallbackScore is awarded when the answers don't allow a
	// relative-difference computation (non-numeric input, or a correct
	// answer of zero).
	FallbackScore = 5
)

// Difficulty tags a question's difficulty tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known difficulty tags.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Multiplier returns the score multiplier for the difficulty.
// Unknown tags fall back to 1.0; validation happens upstream.
func (d Difficulty) Multiplier() float64 {
	switch d {
	case DifficultyMedium:
		return 1.1
	case DifficultyHard:
		return 1.25
	default:
		return 1.0
	}
}

// scoreTier maps a maximum percentage difference to a base score.
// Tiers are ordered tightest first; the first match wins, so a value
// sitting exactly on a boundary takes the higher score.
type scoreTier struct {
	maxDiff float64
	base    float64
}

var scoreTiers = []scoreTier{
	{0, 110}, // exact match
	{2, 100},
	{5, 90},
	{10, 75},
	{20, 60},
	{40, 40},
	{100, 20},
}

const tierFloor = 10.0 // anything worse than 100% off

// Score converts a single answered question into points.
//
// userAnswer and correctAnswer are the raw submitted values; both must
// parse as numbers for the proportional tiers to apply, otherwise the
// fallback score is returned. timeRemaining is the countdown value
// captured at the submission instant and must never be recomputed.
func Score(userAnswer, correctAnswer string, timeRemaining, timeLimit float64, difficulty Difficulty) int {
	user, errU := strconv.ParseFloat(userAnswer, 64)
	correct, errC := strconv.ParseFloat(correctAnswer, 64)
	if errU != nil || errC != nil || correct == 0 {
		return FallbackScore
	}

	// Multiply before dividing so integer boundary cases (exactly 2%,
	// 5%, ...) stay exact and tie into the higher tier.
	diff := math.Abs(user-correct) * 100 / math.Abs(correct)

	base := tierFloor
	for _, t := range scoreTiers {
		if diff <= t.maxDiff {
			base = t.base
			break
		}
	}

	score := base * timeMultiplier(timeRemaining, timeLimit) * difficulty.Multiplier()

	final := int(math.Round(score))
	if final > MaxScore {
		final = MaxScore
	}
	return final
}

// timeMultiplier rewards answering with time to spare: up to +10% for an
// instantaneous answer, scaling linearly down to +0% at the buzzer.
func timeMultiplier(timeRemaining, timeLimit float64) float64 {
	if timeLimit <= 0 {
		return 1.0
	}
	if timeRemaining < 0 {
		timeRemaining = 0
	}
	if timeRemaining > timeLimit {
		timeRemaining = timeLimit
	}
	return 1.0 + 0.1*timeRemaining/timeLimit
}
