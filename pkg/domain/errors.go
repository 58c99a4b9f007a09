package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyTape is returned when a machine is constructed without any cells.
var ErrEmptyTape = errors.New("initial tape must not be empty")

// ErrStartIndexOutOfRange is returned when the start position does not index
// an existing cell of the initial tape.
var ErrStartIndexOutOfRange = errors.New("start index outside the initial tape")

// ConfigError reports malformed construction input: an invalid transition
// table, a bad builder wiring, or an out-of-range machine parameter. It is
// raised at construction or table-assignment time, never while stepping.
type ConfigError struct {
	Subject string // what was being configured (state label, parameter name)
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration for %q: %s", e.Subject, e.Reason)
}

// TapeLimitError reports that a step would grow the tape past the safety cap.
// It is fatal to the run; a caller should treat it as a likely divergent
// computation, not retry it.
type TapeLimitError struct {
	Limit  int // configured maximum number of cells
	Needed int // cells the rejected growth would have required
}

func (e *TapeLimitError) Error() string {
	return fmt.Sprintf("tape growth to %d cells exceeds the safety limit of %d", e.Needed, e.Limit)
}
