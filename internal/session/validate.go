package session

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks a finished-session payload before it enters the engine.
// It covers the InputError taxonomy: empty sessions, unknown modes or
// difficulty tags, negative or inconsistent time values, out-of-range
// scores.
func Validate(mode Mode, answers []AnswerEvent) error {
	if !mode.Valid() {
		return fmt.Errorf("unknown mode %q", mode)
	}
	if len(answers) == 0 {
		return ErrNoAnswers
	}

	for i, a := range answers {
		if err := validate.Struct(a); err != nil {
			return fmt.Errorf("answer %d: %w", i, err)
		}
		// Cross-field rules the struct tags can't express.
		if !a.Difficulty.Valid() {
			return fmt.Errorf("answer %d: unknown difficulty %q", i, a.Difficulty)
		}
		if a.TimeRemaining > a.TimeLimit {
			return fmt.Errorf("answer %d: time remaining %.1f exceeds limit %.1f", i, a.TimeRemaining, a.TimeLimit)
		}
	}
	return nil
}
