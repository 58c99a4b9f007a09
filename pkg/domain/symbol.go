package domain

import "fmt"

// Symbol is a single element of the tape alphabet.
//
// A Symbol wraps an optional payload (typically an int or a string) and
// compares structurally: two Symbols are equal iff their payloads are equal.
// The zero value is the blank symbol. Symbols are plain values with no
// exported fields, so they are immutable and safe to use as map keys.
type Symbol struct {
	payload any
}

// Blank is the shared blank symbol. It marks an unused tape cell and is what
// the tape is padded with when it grows.
var Blank = Symbol{}

// Sym builds a Symbol from the given payload.
// The payload must be a comparable value (int and string in practice);
// Sym(nil) is the blank symbol.
func Sym(payload any) Symbol {
	return Symbol{payload: payload}
}

// Payload returns the wrapped value, or nil for the blank symbol.
func (s Symbol) Payload() any {
	return s.payload
}

// IsBlank reports whether this symbol is the blank symbol.
func (s Symbol) IsBlank() bool {
	return s.payload == nil
}

// String renders the blank symbol as "_" and any other symbol as its payload.
func (s Symbol) String() string {
	if s.payload == nil {
		return "_"
	}
	return fmt.Sprintf("%v", s.payload)
}
