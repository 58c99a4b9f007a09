// Package dsl provides a fluent builder for wiring Turing machines.
//
// States reference each other by label, so forward references and cycles
// cost nothing: declare rules in any order and Build resolves every label,
// validates the tables once, and returns the start state ready for
// execution.
package dsl
