package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/gcamargo0/turingo"
	"github.com/gcamargo0/turingo/pkg/runner"
)

// NewTapeRenderer returns a renderer that prints the state label followed by
// the materialized tape, the cell under the head shown in reverse video.
func NewTapeRenderer() runner.TapeRenderer {
	return func(m *turingo.Machine) string {
		var b strings.Builder
		fmt.Fprintf(&b, "%-10s ", m.StateLabel())

		begin := m.Tape().Begin()
		for i, cell := range m.Tape().Cells() {
			text := cell.String()
			if begin+i == m.Head() {
				text = termenv.String(text).Reverse().Bold().String()
			}
			b.WriteString(text)
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, " head=%d", m.Head())
		return b.String()
	}
}

// NewDocRenderer returns a function that renders markdown using glamour.
func NewDocRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // detect light/dark background
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fall back to raw markdown rather than failing the command.
		return func(markdown string) (string, error) { return markdown, nil }
	}
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
