package domain

// Transition is a single rule of the machine: on reading a symbol, write
// Write, move the head with Move, and hand control to Next.
type Transition struct {
	Next  *State
	Write Symbol
	Move  Action
}

// Outcome is the tagged result of resolving a symbol against a state's
// transition table. Absence of a rule is represented explicitly as a halt,
// never as a nil next-state smuggled through the continue path.
type Outcome struct {
	// Halted is true when no rule applied. Write and Head then echo the
	// symbol and coordinate that were read, unchanged.
	Halted bool

	Next  *State
	Write Symbol
	Head  int
}

// HaltOutcome builds the outcome for a missing transition.
func HaltOutcome(read Symbol, head int) Outcome {
	return Outcome{Halted: true, Write: read, Head: head}
}

// ContinueOutcome builds the outcome for an applied transition.
func ContinueOutcome(next *State, write Symbol, head int) Outcome {
	return Outcome{Next: next, Write: write, Head: head}
}

// State is one node of the machine. Its label is for display and debugging
// only; identity is by pointer, and two distinct states may share a label.
//
// States are created empty and receive their transition table in a second
// pass via Assign, once every referenced state exists. This keeps forward
// references and cycles trivial to wire. After assignment the table is
// treated as read-only by the engine.
type State struct {
	label       string
	transitions map[Symbol]Transition
}

// NewState creates a state with the given display label and no transitions.
// A state that never receives a table halts on every symbol.
func NewState(label string) *State {
	return &State{label: label}
}

// Label returns the display label.
func (s *State) Label() string {
	return s.label
}

func (s *State) String() string {
	return s.label
}

// RuleCount returns the number of transitions assigned to this state.
func (s *State) RuleCount() int {
	return len(s.transitions)
}

// Assign validates and installs the state's transition table, replacing any
// previous one. The table is copied, so later mutations of the argument do
// not leak into the state. Validation happens here, once, instead of on
// every resolution: a rule with no next state or an unset action is a
// ConfigError.
func (s *State) Assign(table map[Symbol]Transition) error {
	checked := make(map[Symbol]Transition, len(table))
	for read, tr := range table {
		if tr.Next == nil {
			return &ConfigError{Subject: s.label, Reason: "transition on " + read.String() + " has no next state"}
		}
		if tr.Move.IsZero() {
			return &ConfigError{Subject: s.label, Reason: "transition on " + read.String() + " has no head action"}
		}
		checked[read] = tr
	}
	s.transitions = checked
	return nil
}

// Resolve determines the machine's next configuration for the symbol under
// the head.
//
// A missing rule is a normal halt signal, not an error. When
// implicitBlankHalt is set and a blank is read with no explicit blank rule,
// the state halts without consulting anything else; this lets machines treat
// running off the defined input as a clean stop.
func (s *State) Resolve(read Symbol, head int, implicitBlankHalt bool) Outcome {
	if implicitBlankHalt && read.IsBlank() {
		if _, ok := s.transitions[Blank]; !ok {
			return HaltOutcome(read, head)
		}
	}

	tr, ok := s.transitions[read]
	if !ok {
		return HaltOutcome(read, head)
	}
	return ContinueOutcome(tr.Next, tr.Write, tr.Move.Perform(head))
}
