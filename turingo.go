package turingo

import (
	_ "embed"
)

// Version is the library version, embedded from version.txt.
// Consumers should strings.TrimSpace it before display.
//
//go:embed version.txt
var Version string
