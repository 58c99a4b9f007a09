package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the turingo ASCII banner with the library version.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Subtle gradient, teal to violet
	lines := []struct {
		text  string
		color string
	}{
		{`  _              _                `, "#2dd4bf"},
		{` | |_ _   _ _ __(_)_ __   __ _  ___  `, "#38bdf8"},
		{` | __| | | | '__| | '_ \ / _` + "`" + ` |/ _ \ `, "#818cf8"},
		{` | |_| |_| | |  | | | | | (_| | (_) |`, "#a78bfa"},
		{`  \__|\__,_|_|  |_|_| |_|\__, |\___/ `, "#c084fc"},
		{`                         |___/       `, "#e879f9"},
	}

	fmt.Println()
	for _, l := range lines {
		fmt.Println(termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Printf("  a Turing machine workbench — v%s\n\n", strings.TrimSpace(version))
}
