package machines

import (
	"fmt"
	"sort"

	"github.com/gcamargo0/turingo/pkg/domain"
)

// Definition describes one catalog machine.
type Definition struct {
	Name         string
	Summary      string
	Doc          string // markdown, rendered by `turingo describe`
	DefaultInput string // tape used when the caller supplies none

	build func() (*domain.State, error)
}

// Build wires a fresh copy of the machine's states and returns the start
// state. Every call produces independent states, so concurrent runs of the
// same definition share nothing.
func (d Definition) Build() (*domain.State, error) {
	return d.build()
}

// Tape parses an input string into the initial tape, one symbol per
// character. The empty string selects the definition's default input. All
// catalog machines use the binary alphabet; anything but '0' and '1' is
// rejected.
func (d Definition) Tape(input string) ([]domain.Symbol, error) {
	if input == "" {
		input = d.DefaultInput
	}
	cells := make([]domain.Symbol, 0, len(input))
	for i, c := range input {
		switch c {
		case '0':
			cells = append(cells, domain.Sym(0))
		case '1':
			cells = append(cells, domain.Sym(1))
		default:
			return nil, &domain.ConfigError{
				Subject: d.Name,
				Reason:  fmt.Sprintf("tape position %d: %q is not part of the binary alphabet", i, c),
			}
		}
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("machine %s: %w", d.Name, domain.ErrEmptyTape)
	}
	return cells, nil
}

var catalog = map[string]Definition{}

func register(d Definition) {
	catalog[d.Name] = d
}

// Get looks up a definition by name.
func Get(name string) (Definition, bool) {
	d, ok := catalog[name]
	return d, ok
}

// All returns the catalog sorted by name.
func All() []Definition {
	out := make([]Definition, 0, len(catalog))
	for _, d := range catalog {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the sorted machine names.
func Names() []string {
	out := make([]string, 0, len(catalog))
	for name := range catalog {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
