// Package machines is the catalog of built-in example machines.
//
// Each Definition bundles a machine's wiring (built through pkg/dsl), its
// default input, a tape parser for user-supplied input strings, and a short
// markdown description for display. The catalog is what the CLI, the HTTP
// adapter and the MCP adapter all run against.
package machines
