package domain

import "fmt"

// Action is a named head movement: a pure function from the current head
// coordinate to the next one.
//
// The three canonical movements are Right, Left and Neutral, but Action is an
// open value type, not a closed set. Move builds jumps of arbitrary length
// and NewAction accepts any displacement function, so custom movements flow
// through the engine with no special casing.
type Action struct {
	name  string
	apply func(head int) int
}

// Standard single-cell movements.
var (
	Right   = Action{name: "R", apply: func(h int) int { return h + 1 }}
	Left    = Action{name: "L", apply: func(h int) int { return h - 1 }}
	Neutral = Action{name: "N", apply: func(h int) int { return h }}
)

// NewAction builds a custom action. The displacement function must be pure
// and total over all integers.
func NewAction(name string, apply func(head int) int) Action {
	return Action{name: name, apply: apply}
}

// Move builds an action that displaces the head by a fixed offset.
// Move(2) is named "R2", Move(-3) "L3", Move(0) "N".
func Move(offset int) Action {
	var name string
	switch {
	case offset > 0:
		name = fmt.Sprintf("R%d", offset)
	case offset < 0:
		name = fmt.Sprintf("L%d", -offset)
	default:
		name = "N"
	}
	return Action{name: name, apply: func(h int) int { return h + offset }}
}

// Perform applies the displacement to the given head coordinate.
func (a Action) Perform(head int) int {
	return a.apply(head)
}

// IsZero reports whether the action was left unset. A zero action in a
// transition table is a wiring mistake, caught at assignment time.
func (a Action) IsZero() bool {
	return a.apply == nil
}

func (a Action) String() string {
	return a.name
}
