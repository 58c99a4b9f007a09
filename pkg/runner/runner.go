package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gcamargo0/turingo"
)

// TapeRenderer turns the machine's current configuration into one printable
// line. This allows TUI rendering (colors, head highlighting) without
// coupling the core package to a terminal.
type TapeRenderer func(m *turingo.Machine) string

// Runner drives a Machine step by step, rendering after each transition.
type Runner struct {
	// Output receives the per-step renderings. If nil, os.Stdout is used.
	Output io.Writer

	// Renderer formats the machine for output. If nil, Machine.Snapshot
	// is used.
	Renderer TapeRenderer

	// Logger is used for internal debug logging. If nil, a no-op logger
	// is used.
	Logger *slog.Logger

	// Quiet suppresses all per-step output. The returned Result is
	// unaffected.
	Quiet bool
}

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithOutput sets the destination for per-step renderings.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.Output = w
	}
}

// WithRenderer sets a custom tape renderer.
func WithRenderer(render TapeRenderer) Option {
	return func(r *Runner) {
		r.Renderer = render
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithQuiet disables per-step output.
func WithQuiet(quiet bool) Option {
	return func(r *Runner) {
		r.Quiet = quiet
	}
}

// NewRunner creates a Runner writing plain snapshots to Stdout.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the machine until it halts, the step budget is spent, the
// context is cancelled, or a step fails. Outcome reporting matches
// Machine.Run: budget exhaustion is a normal, resumable outcome.
func (r *Runner) Run(ctx context.Context, m *turingo.Machine, maxSteps int) (turingo.Result, error) {
	out := r.Output
	if out == nil {
		out = os.Stdout
	}
	render := r.Renderer
	if render == nil {
		render = func(m *turingo.Machine) string { return m.Snapshot() }
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	for i := 0; i < maxSteps; i++ {
		if err := ctx.Err(); err != nil {
			return r.report(m, ""), err
		}
		cont, err := m.Step(ctx)
		if err != nil {
			logger.Error("step failed", "err", err, "steps", m.Steps())
			return r.report(m, ""), err
		}
		if !cont {
			if !r.Quiet {
				fmt.Fprintf(out, "===== machine halted after %d steps =====\n", m.Steps())
				fmt.Fprintln(out, render(m))
			}
			logger.Debug("machine halted", "steps", m.Steps(), "state", m.StateLabel())
			return r.report(m, turingo.OutcomeHalted), nil
		}
		if !r.Quiet {
			fmt.Fprintln(out, render(m))
		}
	}

	if m.Halted() {
		return r.report(m, turingo.OutcomeHalted), nil
	}
	logger.Debug("step budget exhausted", "steps", m.Steps(), "budget", maxSteps)
	return r.report(m, turingo.OutcomeBudgetExhausted), nil
}

func (r *Runner) report(m *turingo.Machine, outcome turingo.RunOutcome) turingo.Result {
	return turingo.Result{
		Tape:    m.Tape().Cells(),
		Begin:   m.Tape().Begin(),
		Head:    m.Head(),
		State:   m.StateLabel(),
		Current: m.Current(),
		Steps:   m.Steps(),
		Outcome: outcome,
	}
}
