/*
Package turingo is a deterministic single-tape Turing machine engine.

It separates the machine definition (states and their transition tables,
built from the value types in pkg/domain) from execution (the Machine, which
owns the tape, the head and the current state) and from observation
(lifecycle hooks and loggers, which are pure side channels).

# Concept

A machine is a finite set of states. Each state maps a read symbol to a
transition: the next state, the symbol to write, and a head movement. The
Machine applies transitions until none matches, growing the tape on demand in
both directions. The absence of a rule is the halt signal; it is never an
error.

# Usage

Wire the states (directly, or with the fluent builder in pkg/dsl), then
construct and run a machine:

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/gcamargo0/turingo"
		"github.com/gcamargo0/turingo/pkg/domain"
	)

	func main() {
		zero, one := domain.Sym(0), domain.Sym(1)

		q0 := domain.NewState("q0")

		// Flip every bit; reaching the trailing blank halts implicitly.
		err := q0.Assign(map[domain.Symbol]domain.Transition{
			zero: {Next: q0, Write: one, Move: domain.Right},
			one:  {Next: q0, Write: zero, Move: domain.Right},
		})
		if err != nil {
			log.Fatal(err)
		}

		m, err := turingo.New(q0, []domain.Symbol{zero, one, one, zero}, 0)
		if err != nil {
			log.Fatal(err)
		}

		res, err := m.Run(context.Background(), 1000)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(res.Outcome, res.Steps, res.Tape)
	}

Callers can always distinguish the terminal conditions: a clean halt and an
exhausted step budget are tagged on the Result, while resource-limit and
configuration failures are errors.
*/
package turingo
