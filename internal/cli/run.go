package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gcamargo0/turingo"
	"github.com/gcamargo0/turingo/internal/presentation/tui"
	"github.com/gcamargo0/turingo/pkg/machines"
	"github.com/gcamargo0/turingo/pkg/runner"
)

// RunParams collects everything the run command resolved from flags and
// config.
type RunParams struct {
	Machine    string
	Tape       string // empty selects the machine's default input
	StartIndex int
	MaxSteps   int
	TapeLimit  int
	Quiet      bool
	JSON       bool // machine-readable report on stdout, no per-step output
	Logger     *slog.Logger
	Out        io.Writer // nil means os.Stdout
}

type runReport struct {
	Machine string   `json:"machine"`
	Tape    []string `json:"tape"`
	Begin   int      `json:"begin"`
	Head    int      `json:"head"`
	State   string   `json:"state"`
	Steps   int      `json:"steps"`
	Outcome string   `json:"outcome"`
}

// RunMachine executes one catalog machine end to end and writes the report.
func RunMachine(ctx context.Context, p RunParams) error {
	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	def, ok := machines.Get(p.Machine)
	if !ok {
		return fmt.Errorf("unknown machine %q (try: %s)", p.Machine, strings.Join(machines.Names(), ", "))
	}

	tape, err := def.Tape(p.Tape)
	if err != nil {
		return err
	}
	start, err := def.Build()
	if err != nil {
		return fmt.Errorf("failed to build %s: %w", def.Name, err)
	}

	opts := []turingo.Option{turingo.WithLogger(logger)}
	if p.TapeLimit > 0 {
		opts = append(opts, turingo.WithTapeLimit(p.TapeLimit))
	}
	m, err := turingo.New(start, tape, p.StartIndex, opts...)
	if err != nil {
		return err
	}

	render := runner.TapeRenderer(nil)
	if !p.JSON && IsTerminal(os.Stdout) {
		render = tui.NewTapeRenderer()
	}

	r := runner.NewRunner(
		runner.WithOutput(out),
		runner.WithRenderer(render),
		runner.WithLogger(logger),
		runner.WithQuiet(p.Quiet || p.JSON),
	)

	res, err := r.Run(ctx, m, p.MaxSteps)
	if err != nil {
		return err
	}

	if p.JSON {
		cells := make([]string, len(res.Tape))
		for i, c := range res.Tape {
			cells[i] = c.String()
		}
		enc := json.NewEncoder(out)
		return enc.Encode(runReport{
			Machine: def.Name,
			Tape:    cells,
			Begin:   res.Begin,
			Head:    res.Head,
			State:   res.State,
			Steps:   res.Steps,
			Outcome: string(res.Outcome),
		})
	}

	var tapeStr strings.Builder
	for _, c := range res.Tape {
		tapeStr.WriteString(c.String())
	}
	switch res.Outcome {
	case turingo.OutcomeHalted:
		fmt.Fprintf(out, "%s halted after %d steps\n", def.Name, res.Steps)
	case turingo.OutcomeBudgetExhausted:
		fmt.Fprintf(out, "%s still running after %d steps (budget exhausted)\n", def.Name, res.Steps)
	}
	fmt.Fprintf(out, "final tape: %s (head=%d, state=%s)\n", tapeStr.String(), res.Head, res.State)
	return nil
}
