package turingo

import "github.com/gcamargo0/turingo/pkg/domain"

// DefaultTapeLimit is the safety cap on materialized tape cells. It is a
// proxy for runaway computations, not a memory budget.
const DefaultTapeLimit = 1_000_000

// Tape is the machine's storage: conceptually infinite in both directions,
// materialized as a finite window that grows on demand.
//
// Cells are addressed by a logical coordinate over all of ℤ. The window is a
// backing buffer with headroom on both sides, so growth is amortized O(1)
// per cell leftward as well as rightward (the original prepend-one-cell
// representation was quadratic on left-heavy machines). The window only ever
// grows, and always by exactly the cells a step requires.
type Tape struct {
	buf   []domain.Symbol // backing storage; the live window is buf[org : org+n]
	org   int             // physical index of the window's first cell
	n     int             // window length in cells
	begin int             // logical coordinate of the window's first cell
	limit int             // maximum window length before growth fails
}

func newTape(cells []domain.Symbol, limit int) *Tape {
	t := &Tape{
		buf:   make([]domain.Symbol, len(cells)),
		n:     len(cells),
		limit: limit,
	}
	copy(t.buf, cells)
	return t
}

// Len returns the number of materialized cells.
func (t *Tape) Len() int {
	return t.n
}

// Begin returns the logical coordinate of the leftmost materialized cell.
func (t *Tape) Begin() int {
	return t.begin
}

// End returns the logical coordinate one past the rightmost materialized cell.
func (t *Tape) End() int {
	return t.begin + t.n
}

// At returns the symbol at logical coordinate pos. Coordinates outside the
// materialized window read as Blank, which is what they would hold once
// materialized.
func (t *Tape) At(pos int) domain.Symbol {
	if pos < t.begin || pos >= t.begin+t.n {
		return domain.Blank
	}
	return t.buf[t.org+(pos-t.begin)]
}

// Cells returns a copy of the materialized window, leftmost cell first.
func (t *Tape) Cells() []domain.Symbol {
	out := make([]domain.Symbol, t.n)
	copy(out, t.buf[t.org:t.org+t.n])
	return out
}

// set writes a symbol at a logical coordinate inside the window.
func (t *Tape) set(pos int, s domain.Symbol) {
	t.buf[t.org+(pos-t.begin)] = s
}

// growTo extends the window so that pos is addressable, padding new cells
// with Blank. It extends by exactly the required amount, in either
// direction, and fails with a TapeLimitError before allocating anything if
// the resulting window would exceed the limit.
func (t *Tape) growTo(pos int) error {
	switch {
	case pos >= t.begin+t.n:
		return t.growRight(pos - (t.begin + t.n) + 1)
	case pos < t.begin:
		return t.growLeft(t.begin - pos)
	}
	return nil
}

func (t *Tape) growRight(need int) error {
	if t.n+need > t.limit {
		return &domain.TapeLimitError{Limit: t.limit, Needed: t.n + need}
	}
	if t.org+t.n+need > len(t.buf) {
		t.realloc(need, 0)
	}
	blank(t.buf[t.org+t.n : t.org+t.n+need])
	t.n += need
	return nil
}

func (t *Tape) growLeft(need int) error {
	if t.n+need > t.limit {
		return &domain.TapeLimitError{Limit: t.limit, Needed: t.n + need}
	}
	if t.org < need {
		t.realloc(0, need)
	}
	t.org -= need
	t.n += need
	t.begin -= need
	blank(t.buf[t.org : t.org+need])
	return nil
}

// realloc moves the window into a larger buffer, leaving doubling headroom
// on the side that is growing.
func (t *Tape) realloc(right, left int) {
	grown := t.n + right + left
	size := grown * 2
	org := left + (size-grown)/2
	buf := make([]domain.Symbol, size)
	copy(buf[org:], t.buf[t.org:t.org+t.n])
	t.buf = buf
	t.org = org
}

func blank(cells []domain.Symbol) {
	for i := range cells {
		cells[i] = domain.Blank
	}
}
