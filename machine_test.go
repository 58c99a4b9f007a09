package turingo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcamargo0/turingo/pkg/domain"
)

var (
	zero = domain.Sym(0)
	one  = domain.Sym(1)
)

// oneRule builds a start state with a single transition into a rule-less
// halting state.
func oneRule(read, write domain.Symbol, move domain.Action) *domain.State {
	q0 := domain.NewState("q0")
	halt := domain.NewState("halt")
	if err := q0.Assign(map[domain.Symbol]domain.Transition{
		read: {Next: halt, Write: write, Move: move},
	}); err != nil {
		panic(err)
	}
	return q0
}

func TestNewValidation(t *testing.T) {
	start := oneRule(zero, one, domain.Right)

	_, err := New(start, nil, 0)
	require.ErrorIs(t, err, domain.ErrEmptyTape)

	_, err = New(start, []domain.Symbol{zero}, 1)
	require.ErrorIs(t, err, domain.ErrStartIndexOutOfRange)

	_, err = New(start, []domain.Symbol{zero}, -1)
	require.ErrorIs(t, err, domain.ErrStartIndexOutOfRange)

	var cfgErr *domain.ConfigError
	_, err = New(nil, []domain.Symbol{zero}, 0)
	require.ErrorAs(t, err, &cfgErr)
}

func TestSingleTransitionThenHalt(t *testing.T) {
	ctx := context.Background()
	m, err := New(oneRule(zero, one, domain.Right), []domain.Symbol{zero}, 0)
	require.NoError(t, err)

	cont, err := m.Step(ctx)
	require.NoError(t, err)
	require.True(t, cont)

	assert.Equal(t, []domain.Symbol{one, domain.Blank}, m.Tape().Cells())
	assert.Equal(t, 1, m.Head())
	assert.Equal(t, "halt", m.StateLabel())
	assert.False(t, m.Halted())

	// The halting state has no rules; the next step stops cleanly.
	cont, err = m.Step(ctx)
	require.NoError(t, err)
	require.False(t, cont)
	assert.True(t, m.Halted())
	assert.Nil(t, m.Current())
	assert.Equal(t, 1, m.Steps())
}

func TestLeftGrowth(t *testing.T) {
	m, err := New(oneRule(zero, one, domain.Left), []domain.Symbol{zero}, 0)
	require.NoError(t, err)

	cont, err := m.Step(context.Background())
	require.NoError(t, err)
	require.True(t, cont)

	assert.Equal(t, []domain.Symbol{domain.Blank, one}, m.Tape().Cells())
	assert.Equal(t, -1, m.Head())
	assert.Equal(t, -1, m.Tape().Begin())
	// The freshly grown cell under the head is blank until something
	// writes to it.
	assert.Equal(t, domain.Blank, m.Tape().At(m.Head()))
}

func TestGrowthIsExact(t *testing.T) {
	tests := []struct {
		name      string
		move      domain.Action
		wantLen   int
		wantBegin int
		wantHead  int
	}{
		{"right 1", domain.Right, 2, 0, 1},
		{"right 2", domain.Move(2), 3, 0, 2},
		{"right 50", domain.Move(50), 51, 0, 50},
		{"left 1", domain.Left, 2, -1, -1},
		{"left 2", domain.Move(-2), 3, -2, -2},
		{"left 50", domain.Move(-50), 51, -50, -50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(oneRule(zero, one, tt.move), []domain.Symbol{zero}, 0)
			require.NoError(t, err)

			_, err = m.Step(context.Background())
			require.NoError(t, err)

			assert.Equal(t, tt.wantLen, m.Tape().Len(), "materialized cells")
			assert.Equal(t, tt.wantBegin, m.Tape().Begin())
			assert.Equal(t, tt.wantHead, m.Head())
			// Writes target the pre-move cell; the landing cell is blank.
			assert.Equal(t, one, m.Tape().At(0))
			assert.Equal(t, domain.Blank, m.Tape().At(tt.wantHead))
		})
	}
}

func TestNoWriteOnHalt(t *testing.T) {
	q0 := domain.NewState("q0") // no rules at all
	m, err := New(q0, []domain.Symbol{zero}, 0)
	require.NoError(t, err)

	cont, err := m.Step(context.Background())
	require.NoError(t, err)
	require.False(t, cont)

	assert.Equal(t, []domain.Symbol{zero}, m.Tape().Cells(), "halt must not write")
	assert.Equal(t, 0, m.Head())
	assert.Equal(t, 0, m.Steps())
}

func TestRunZeroBudget(t *testing.T) {
	m, err := New(oneRule(zero, one, domain.Right), []domain.Symbol{zero}, 0)
	require.NoError(t, err)

	res, err := m.Run(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, OutcomeBudgetExhausted, res.Outcome)
	assert.Equal(t, 0, res.Steps)
	assert.Equal(t, []domain.Symbol{zero}, res.Tape)
	assert.Equal(t, "q0", res.State)
	assert.False(t, m.Halted())
}

func TestRunBudgetExhaustedIsResumable(t *testing.T) {
	// Runs forever: every read writes a 1 and moves right.
	q0 := domain.NewState("spin")
	require.NoError(t, q0.Assign(map[domain.Symbol]domain.Transition{
		zero:         {Next: q0, Write: one, Move: domain.Right},
		one:          {Next: q0, Write: one, Move: domain.Right},
		domain.Blank: {Next: q0, Write: one, Move: domain.Right},
	}))

	m, err := New(q0, []domain.Symbol{zero}, 0)
	require.NoError(t, err)
	ctx := context.Background()

	res, err := m.Run(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, OutcomeBudgetExhausted, res.Outcome)
	assert.Equal(t, 5, res.Steps)
	require.False(t, m.Halted())

	// The machine object is still running; a second Run resumes it.
	res, err = m.Run(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, OutcomeBudgetExhausted, res.Outcome)
	assert.Equal(t, 8, res.Steps)
}

func TestRunHaltReportsOutcome(t *testing.T) {
	m, err := New(oneRule(zero, one, domain.Right), []domain.Symbol{zero}, 0)
	require.NoError(t, err)

	res, err := m.Run(context.Background(), 100)
	require.NoError(t, err)

	assert.Equal(t, OutcomeHalted, res.Outcome)
	assert.Equal(t, 1, res.Steps)
	assert.Equal(t, "halt", res.State)
	assert.Nil(t, res.Current)
}

func TestRunContextCancellation(t *testing.T) {
	m, err := New(oneRule(zero, one, domain.Right), []domain.Symbol{zero}, 0)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = m.Run(ctx, 100)
	require.ErrorIs(t, err, context.Canceled)
}

func TestTapeSafetyLimit(t *testing.T) {
	// A giant jump must be rejected up front, not allocated cell by cell.
	m, err := New(oneRule(zero, one, domain.Move(2_000_000)), []domain.Symbol{zero}, 0)
	require.NoError(t, err)

	_, err = m.Step(context.Background())
	require.Error(t, err)

	var limitErr *domain.TapeLimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, DefaultTapeLimit, limitErr.Limit)
	assert.Equal(t, 2_000_001, limitErr.Needed)
}

func TestWithTapeLimit(t *testing.T) {
	m, err := New(oneRule(zero, one, domain.Move(50)), []domain.Symbol{zero}, 0,
		WithTapeLimit(10))
	require.NoError(t, err)

	_, err = m.Step(context.Background())
	var limitErr *domain.TapeLimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, 10, limitErr.Limit)
}

func TestStepAfterHaltIsNoop(t *testing.T) {
	m, err := New(domain.NewState("q0"), []domain.Symbol{zero}, 0)
	require.NoError(t, err)
	ctx := context.Background()

	cont, err := m.Step(ctx)
	require.NoError(t, err)
	require.False(t, cont)

	cont, err = m.Step(ctx)
	require.NoError(t, err)
	assert.False(t, cont)
	assert.Equal(t, []domain.Symbol{zero}, m.Tape().Cells())
}

func TestImplicitBlankHaltDisabled(t *testing.T) {
	// With the implicit halt off, a blank resolves like any other symbol;
	// with no blank rule the machine still halts, via the plain miss path.
	q0 := domain.NewState("q0")
	require.NoError(t, q0.Assign(map[domain.Symbol]domain.Transition{
		zero: {Next: q0, Write: one, Move: domain.Right},
	}))

	m, err := New(q0, []domain.Symbol{zero, zero}, 0, WithImplicitBlankHalt(false))
	require.NoError(t, err)

	res, err := m.Run(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, OutcomeHalted, res.Outcome)
	assert.Equal(t, 2, res.Steps)
}

func TestLifecycleHooks(t *testing.T) {
	var steps []domain.StepEvent
	var halts []domain.HaltEvent

	hooks := domain.LifecycleHooks{
		OnStep: func(_ context.Context, e *domain.StepEvent) { steps = append(steps, *e) },
		OnHalt: func(_ context.Context, e *domain.HaltEvent) { halts = append(halts, *e) },
	}

	m, err := New(oneRule(zero, one, domain.Right), []domain.Symbol{zero}, 0,
		WithLifecycleHooks(hooks))
	require.NoError(t, err)

	res, err := m.Run(context.Background(), 10)
	require.NoError(t, err)
	require.Equal(t, OutcomeHalted, res.Outcome)

	require.Len(t, steps, 1)
	assert.Equal(t, 1, steps[0].Step)
	assert.Equal(t, "halt", steps[0].State)
	assert.Equal(t, 1, steps[0].Head)
	assert.Equal(t, zero, steps[0].Read)
	assert.Equal(t, one, steps[0].Wrote)
	assert.Equal(t, 2, steps[0].TapeLen)

	require.Len(t, halts, 1)
	assert.Equal(t, 1, halts[0].Steps)
	assert.Equal(t, "halt", halts[0].State)
	assert.Equal(t, domain.Blank, halts[0].Read)
}

func TestBinaryIncrementScenario(t *testing.T) {
	scan := domain.NewState("scan")
	add := domain.NewState("add")
	carry := domain.NewState("carry")
	halt := domain.NewState("halt")

	require.NoError(t, scan.Assign(map[domain.Symbol]domain.Transition{
		zero:         {Next: scan, Write: zero, Move: domain.Right},
		one:          {Next: scan, Write: one, Move: domain.Right},
		domain.Blank: {Next: add, Write: domain.Blank, Move: domain.Left},
	}))
	require.NoError(t, add.Assign(map[domain.Symbol]domain.Transition{
		zero:         {Next: halt, Write: one, Move: domain.Neutral},
		one:          {Next: carry, Write: zero, Move: domain.Left},
		domain.Blank: {Next: halt, Write: one, Move: domain.Neutral},
	}))
	require.NoError(t, carry.Assign(map[domain.Symbol]domain.Transition{
		one:          {Next: carry, Write: zero, Move: domain.Left},
		zero:         {Next: halt, Write: one, Move: domain.Neutral},
		domain.Blank: {Next: halt, Write: one, Move: domain.Neutral},
	}))

	m, err := New(scan, []domain.Symbol{one, zero, one, one}, 0)
	require.NoError(t, err)

	res, err := m.Run(context.Background(), DefaultMaxSteps)
	require.NoError(t, err)

	assert.Equal(t, OutcomeHalted, res.Outcome)
	// 1011 + 1 = 1100, plus the trailing blank the scan materialized.
	assert.Equal(t, []domain.Symbol{one, one, zero, zero, domain.Blank}, res.Tape)
}

func TestOverflowGrowsLeft(t *testing.T) {
	// 11 + 1 = 100: the carry walks off the left edge and writes the new
	// leading 1 into a cell grown at a negative coordinate.
	scan := domain.NewState("scan")
	add := domain.NewState("add")
	carry := domain.NewState("carry")
	halt := domain.NewState("halt")

	require.NoError(t, scan.Assign(map[domain.Symbol]domain.Transition{
		one:          {Next: scan, Write: one, Move: domain.Right},
		domain.Blank: {Next: add, Write: domain.Blank, Move: domain.Left},
	}))
	require.NoError(t, add.Assign(map[domain.Symbol]domain.Transition{
		one:          {Next: carry, Write: zero, Move: domain.Left},
		domain.Blank: {Next: halt, Write: one, Move: domain.Neutral},
	}))
	require.NoError(t, carry.Assign(map[domain.Symbol]domain.Transition{
		one:          {Next: carry, Write: zero, Move: domain.Left},
		domain.Blank: {Next: halt, Write: one, Move: domain.Neutral},
	}))

	m, err := New(scan, []domain.Symbol{one, one}, 0)
	require.NoError(t, err)

	res, err := m.Run(context.Background(), DefaultMaxSteps)
	require.NoError(t, err)

	assert.Equal(t, OutcomeHalted, res.Outcome)
	assert.Equal(t, -1, res.Begin)
	assert.Equal(t, []domain.Symbol{one, zero, zero, domain.Blank}, res.Tape)
	assert.Equal(t, -1, res.Head)
}

func TestSnapshot(t *testing.T) {
	m, err := New(oneRule(zero, one, domain.Right), []domain.Symbol{zero}, 0)
	require.NoError(t, err)
	assert.Equal(t, "State=q0 Head=0 Symbol=0", m.Snapshot())
}
