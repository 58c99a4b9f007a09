package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcamargo0/turingo/pkg/domain"
)

var (
	zero = domain.Sym(0)
	one  = domain.Sym(1)
)

func TestBuildWiresForwardReferences(t *testing.T) {
	// "a" references "b" before "b" is declared; Build resolves it anyway.
	b := New()
	b.State("a").On(zero, "b", one, domain.Right)
	b.State("b").On(zero, "a", zero, domain.Left)

	start, err := b.Build("a")
	require.NoError(t, err)
	require.Equal(t, "a", start.Label())

	out := start.Resolve(zero, 0, true)
	require.False(t, out.Halted)
	assert.Equal(t, "b", out.Next.Label())
	assert.Equal(t, one, out.Write)
	assert.Equal(t, 1, out.Head)

	// The cycle closes: b's rule points back at the same a.
	back := out.Next.Resolve(zero, 1, true)
	require.False(t, back.Halted)
	assert.Same(t, start, back.Next)
}

func TestBuildSelfLoop(t *testing.T) {
	b := New()
	b.State("spin").Loop(one, zero, domain.Right)

	start, err := b.Build("spin")
	require.NoError(t, err)

	out := start.Resolve(one, 3, true)
	require.False(t, out.Halted)
	assert.Same(t, start, out.Next)
	assert.Equal(t, 4, out.Head)
}

func TestBuildUnknownStart(t *testing.T) {
	b := New()
	b.State("a").Loop(zero, zero, domain.Right)

	_, err := b.Build("missing")
	var cfgErr *domain.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "missing", cfgErr.Subject)
}

func TestBuildUndeclaredTarget(t *testing.T) {
	b := New()
	b.State("a").On(zero, "nowhere", one, domain.Right)

	_, err := b.Build("a")
	var cfgErr *domain.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "a", cfgErr.Subject)
	assert.Contains(t, cfgErr.Reason, "nowhere")
}

func TestDuplicateRuleReported(t *testing.T) {
	b := New()
	b.State("a").
		On(zero, "a", one, domain.Right).
		On(zero, "a", zero, domain.Left)

	_, err := b.Build("a")
	var cfgErr *domain.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "a", cfgErr.Subject)
	assert.Contains(t, cfgErr.Reason, "duplicate")
}

func TestStateIsIdempotent(t *testing.T) {
	b := New()
	first := b.State("a")
	second := b.State("a")
	assert.Same(t, first, second)
	assert.Equal(t, []string{"a"}, b.Labels())
}

func TestRulelessStateHalts(t *testing.T) {
	b := New()
	b.State("a").On(zero, "done", zero, domain.Right)
	b.State("done")

	start, err := b.Build("a")
	require.NoError(t, err)

	out := start.Resolve(zero, 0, true)
	require.False(t, out.Halted)
	assert.True(t, out.Next.Resolve(one, 1, true).Halted)
}

func TestLabelsSorted(t *testing.T) {
	b := New()
	b.State("c")
	b.State("a")
	b.State("b")
	assert.Equal(t, []string{"a", "b", "c"}, b.Labels())
}

func TestBuildTwiceYieldsIndependentStates(t *testing.T) {
	b := New()
	b.State("a").Loop(zero, one, domain.Right)

	first, err := b.Build("a")
	require.NoError(t, err)
	second, err := b.Build("a")
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, first.Label(), second.Label())
}
