// Package runner is the host-side execution loop around a Machine.
//
// The Machine computes; the Runner observes. It drives Step under a context,
// writes a tape rendering after every applied transition through a pluggable
// renderer, and reports the same tagged Result the Machine itself would.
// Rendering is strictly a side channel: a Runner with a nil writer produces
// the same Result as Machine.Run.
package runner
