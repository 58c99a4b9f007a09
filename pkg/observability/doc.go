// Package observability wires machine lifecycle hooks to consumers:
// Prometheus collectors, and a combinator for fanning one hook set out to
// several listeners.
package observability
