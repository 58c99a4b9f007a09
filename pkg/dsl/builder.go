package dsl

import (
	"sort"

	"github.com/gcamargo0/turingo/pkg/domain"
)

// Builder accumulates state declarations and compiles them into wired
// domain.State values.
type Builder struct {
	states map[string]*StateBuilder
	order  []string
}

// New creates an empty machine builder.
func New() *Builder {
	return &Builder{states: make(map[string]*StateBuilder)}
}

// State declares a state by label, or returns the existing declaration.
// A state that never receives a rule is a halting state for every symbol.
func (b *Builder) State(label string) *StateBuilder {
	if sb, ok := b.states[label]; ok {
		return sb
	}
	sb := &StateBuilder{label: label, rules: make(map[domain.Symbol]rule)}
	b.states[label] = sb
	b.order = append(b.order, label)
	return sb
}

// Build resolves every rule's target label, assigns the validated transition
// tables, and returns the start state. An unknown start or target label is a
// configuration error; so is a symbol with two rules in one state (caught at
// declaration time by StateBuilder).
func (b *Builder) Build(start string) (*domain.State, error) {
	compiled := make(map[string]*domain.State, len(b.states))
	for _, label := range b.order {
		compiled[label] = domain.NewState(label)
	}

	startState, ok := compiled[start]
	if !ok {
		return nil, &domain.ConfigError{Subject: start, Reason: "start state was never declared"}
	}

	for _, label := range b.order {
		sb := b.states[label]
		if sb.err != nil {
			return nil, sb.err
		}
		table := make(map[domain.Symbol]domain.Transition, len(sb.rules))
		for read, r := range sb.rules {
			next, ok := compiled[r.next]
			if !ok {
				return nil, &domain.ConfigError{
					Subject: label,
					Reason:  "rule on " + read.String() + " targets undeclared state " + r.next,
				}
			}
			table[read] = domain.Transition{Next: next, Write: r.write, Move: r.move}
		}
		if err := compiled[label].Assign(table); err != nil {
			return nil, err
		}
	}
	return startState, nil
}

// Labels returns the declared state labels, sorted for stable display.
func (b *Builder) Labels() []string {
	out := append([]string(nil), b.order...)
	sort.Strings(out)
	return out
}

type rule struct {
	next  string
	write domain.Symbol
	move  domain.Action
}

// StateBuilder collects the rules of one state.
type StateBuilder struct {
	label string
	rules map[domain.Symbol]rule
	err   *domain.ConfigError
}

// On adds a rule: reading `read` writes `write`, moves the head with `move`
// and enters the state labelled `next`. Declaring two rules for the same
// symbol is a configuration error, reported by Build.
func (sb *StateBuilder) On(read domain.Symbol, next string, write domain.Symbol, move domain.Action) *StateBuilder {
	if _, dup := sb.rules[read]; dup && sb.err == nil {
		sb.err = &domain.ConfigError{Subject: sb.label, Reason: "duplicate rule for symbol " + read.String()}
	}
	sb.rules[read] = rule{next: next, write: write, move: move}
	return sb
}

// Loop is shorthand for a rule that stays in this state.
func (sb *StateBuilder) Loop(read domain.Symbol, write domain.Symbol, move domain.Action) *StateBuilder {
	return sb.On(read, sb.label, write, move)
}
