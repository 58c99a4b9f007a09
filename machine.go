package turingo

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/gcamargo0/turingo/pkg/domain"
)

// DefaultMaxSteps is the step budget used by callers that do not care to
// pick one.
const DefaultMaxSteps = 1000

// RunOutcome tags how a Run call ended.
type RunOutcome string

const (
	// OutcomeHalted means no transition resolved: the machine terminated
	// cleanly and cannot be resumed.
	OutcomeHalted RunOutcome = "halted"

	// OutcomeBudgetExhausted means the step budget ran out first. The
	// machine itself is still running and a further Step or Run resumes it.
	OutcomeBudgetExhausted RunOutcome = "budget_exhausted"
)

// Result is the report of a Run call.
type Result struct {
	Tape    []domain.Symbol // snapshot of the materialized tape, leftmost cell first
	Begin   int             // logical coordinate of Tape[0]
	Head    int             // logical head coordinate
	State   string          // label of the last active state
	Current *domain.State   // the active state, nil once halted
	Steps   int             // steps executed over the machine's whole life
	Outcome RunOutcome
}

// Machine executes a Turing machine: it owns the tape, the head position and
// the current state, and nothing else shares them. A Machine is not safe for
// concurrent use, but independent Machines share no state and may run on
// separate goroutines freely.
type Machine struct {
	tape    *Tape
	head    int
	current *domain.State
	last    *domain.State // state that was active when the machine halted
	steps   int

	implicitBlankHalt bool
	hooks             domain.LifecycleHooks
	logger            *slog.Logger
}

// Option configures a Machine at construction time.
type Option func(*Machine)

// WithLogger sets the structured logger for per-step debug output.
// The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithLifecycleHooks registers observability callbacks. Hooks are a side
// channel; execution does not depend on them.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Machine) {
		m.hooks = hooks
	}
}

// WithImplicitBlankHalt controls whether reading a blank with no explicit
// blank rule halts the machine (the default) instead of consulting the table
// like any other symbol.
func WithImplicitBlankHalt(enabled bool) Option {
	return func(m *Machine) {
		m.implicitBlankHalt = enabled
	}
}

// WithTapeLimit overrides the safety cap on materialized tape cells.
func WithTapeLimit(cells int) Option {
	return func(m *Machine) {
		m.tape.limit = cells
	}
}

// New constructs a machine in the given start state, with the given initial
// tape contents and head position. The start index must address an existing
// cell: the initial tape is the machine's defined input, and an empty one
// has no cell for the head to sit on.
func New(start *domain.State, tape []domain.Symbol, startIndex int, opts ...Option) (*Machine, error) {
	if start == nil {
		return nil, &domain.ConfigError{Subject: "machine", Reason: "start state is nil"}
	}
	if len(tape) == 0 {
		return nil, fmt.Errorf("machine: %w", domain.ErrEmptyTape)
	}
	if startIndex < 0 || startIndex >= len(tape) {
		return nil, fmt.Errorf("machine: start index %d with %d cells: %w",
			startIndex, len(tape), domain.ErrStartIndexOutOfRange)
	}

	m := &Machine{
		tape:              newTape(tape, DefaultTapeLimit),
		head:              startIndex,
		current:           start,
		implicitBlankHalt: true,
		logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Step executes a single transition.
//
// It returns true when the machine continues and false once it has halted;
// stepping a halted machine is a no-op. A halt leaves the tape and head
// exactly as read: the write and the move only happen on the continue path,
// and the write always targets the cell the head was on BEFORE the move. An
// error is returned only when tape growth would exceed the safety limit.
func (m *Machine) Step(ctx context.Context) (bool, error) {
	if m.current == nil {
		return false, nil
	}

	read := m.tape.At(m.head)
	out := m.current.Resolve(read, m.head, m.implicitBlankHalt)

	if out.Halted {
		m.last = m.current
		m.current = nil
		m.logger.Debug("machine halted",
			"state", m.last.Label(),
			"head", m.head,
			"read", read.String(),
			"steps", m.steps,
		)
		if m.hooks.OnHalt != nil {
			m.hooks.OnHalt(ctx, &domain.HaltEvent{
				Steps: m.steps,
				State: m.last.Label(),
				Head:  m.head,
				Read:  read,
			})
		}
		return false, nil
	}

	m.tape.set(m.head, out.Write)
	if err := m.tape.growTo(out.Head); err != nil {
		return false, fmt.Errorf("machine: step %d: %w", m.steps+1, err)
	}
	m.head = out.Head
	m.current = out.Next
	m.steps++

	m.logger.Debug("step",
		"step", m.steps,
		"state", m.current.Label(),
		"head", m.head,
		"read", read.String(),
		"wrote", out.Write.String(),
	)
	if m.hooks.OnStep != nil {
		m.hooks.OnStep(ctx, &domain.StepEvent{
			Step:    m.steps,
			State:   m.current.Label(),
			Head:    m.head,
			Read:    read,
			Wrote:   out.Write,
			TapeLen: m.tape.Len(),
		})
	}
	return true, nil
}

// Run steps the machine until it halts, the budget is spent, the context is
// cancelled, or a step fails.
//
// Exhausting the budget is a normal outcome, not an error: the Result's
// Outcome field tells it apart from a clean halt, and the machine remains
// resumable. Run(ctx, 0) performs no steps.
func (m *Machine) Run(ctx context.Context, maxSteps int) (Result, error) {
	for i := 0; i < maxSteps; i++ {
		if err := ctx.Err(); err != nil {
			return m.result(""), err
		}
		cont, err := m.Step(ctx)
		if err != nil {
			return m.result(""), err
		}
		if !cont {
			return m.result(OutcomeHalted), nil
		}
	}
	if m.Halted() {
		return m.result(OutcomeHalted), nil
	}
	return m.result(OutcomeBudgetExhausted), nil
}

func (m *Machine) result(outcome RunOutcome) Result {
	return Result{
		Tape:    m.tape.Cells(),
		Begin:   m.tape.Begin(),
		Head:    m.head,
		State:   m.StateLabel(),
		Current: m.current,
		Steps:   m.steps,
		Outcome: outcome,
	}
}

// Halted reports whether the machine has terminated.
func (m *Machine) Halted() bool {
	return m.current == nil
}

// Current returns the active state, or nil once the machine has halted.
func (m *Machine) Current() *domain.State {
	return m.current
}

// StateLabel returns the label of the active state, or of the state that
// was active when the machine halted.
func (m *Machine) StateLabel() string {
	if m.current != nil {
		return m.current.Label()
	}
	if m.last != nil {
		return m.last.Label()
	}
	return ""
}

// Head returns the logical head coordinate.
func (m *Machine) Head() int {
	return m.head
}

// Steps returns the number of transitions applied so far.
func (m *Machine) Steps() int {
	return m.steps
}

// Tape exposes the machine's tape for inspection and rendering.
func (m *Machine) Tape() *Tape {
	return m.tape
}

// Snapshot returns a one-line summary of the current configuration.
func (m *Machine) Snapshot() string {
	return fmt.Sprintf("State=%s Head=%d Symbol=%s", m.StateLabel(), m.head, m.tape.At(m.head))
}
