// Package domain contains the core value types of the Turing machine:
// tape symbols, head actions, states with their transition tables, and the
// events emitted while a machine runs.
//
// Everything here is either an immutable value (Symbol, Action, Transition)
// or mutated only during a distinct construction phase (State tables are
// assigned once all referenced states exist, then read-only for execution).
package domain
