package engine

import (
	"errors"
	"fmt"
)

// InputError marks a malformed or empty session. The player state is
// left untouched when one is returned.
type InputError struct {
	Err error
}

func (e *InputError) Error() string { return fmt.Sprintf("invalid session: %v", e.Err) }
func (e *InputError) Unwrap() error { return e.Err }

// IsInputError reports whether err is an InputError.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// PersistenceError marks a durable-store failure. The whole cycle is
// safe to replay: the models are pure functions of the prior state and
// the session, so a retry recomputes the identical result.
type PersistenceError struct {
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("durable store: %v", e.Err)
	}
	return fmt.Sprintf("durable store (%s): %v", e.Key, e.Err)
}
func (e *PersistenceError) Unwrap() error { return e.Err }
