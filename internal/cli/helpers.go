package cli

import (
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/gcamargo0/turingo/internal/logging"
)

// IsTerminal reports whether the file is attached to a TTY. The banner and
// the colored tape renderer are only used on real terminals.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewLogger builds the application logger for the given config level,
// honoring TURINGO_LOG as an override.
func NewLogger(level string) *slog.Logger {
	if env := os.Getenv("TURINGO_LOG"); env != "" {
		level = env
	}
	return logging.New(logging.ParseLevel(level))
}
