package domain

import "context"

// StepEvent describes one applied transition. It is emitted after the write,
// the growth and the head move have all taken effect.
type StepEvent struct {
	Step    int    `json:"step"`     // 1-based index of the step within this machine's life
	State   string `json:"state"`    // label of the state the machine moved INTO
	Head    int    `json:"head"`     // logical head coordinate after the move
	Read    Symbol `json:"read"`     // symbol that was under the head before the step
	Wrote   Symbol `json:"wrote"`    // symbol written to the old head cell
	TapeLen int    `json:"tape_len"` // materialized tape cells after any growth
}

// HaltEvent describes the terminal configuration of a machine: the state and
// symbol for which no transition resolved. Nothing was written or moved.
type HaltEvent struct {
	Steps int    `json:"steps"` // steps executed before halting
	State string `json:"state"` // label of the state that failed to resolve
	Head  int    `json:"head"`
	Read  Symbol `json:"read"`
}

// LifecycleHooks defines callbacks for machine observability.
//
// Hooks are a pure side channel: the engine never reads anything back from
// them, and a machine run with nil hooks computes the same result. Callbacks
// run synchronously on the stepping goroutine.
type LifecycleHooks struct {
	OnStep func(context.Context, *StepEvent)
	OnHalt func(context.Context, *HaltEvent)
}
