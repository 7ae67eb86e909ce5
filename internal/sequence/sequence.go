// Package sequence provides the symbol sequences consumed by the aligner.
//
// A Sequence is an immutable run of single-byte symbols. The alphabet is not
// fixed here: whether a symbol is scorable is decided by the substitution
// model, so this package only rejects bytes that can never be part of a
// sequence line (whitespace and control characters).
package sequence

import "fmt"

// Sequence represents a loaded symbol sequence.
//
// Symbols are indexed from 0 in Go; the alignment literature indexes them
// from 1, which is why the score matrix has one more row and column than the
// sequences have symbols.
type Sequence struct {
	Symbols     string
	ID          string
	Description string
}

// New creates a sequence after validating every symbol.
//
// Empty sequences are allowed; aligning against one yields an empty result.
func New(symbols string) (*Sequence, error) {
	if err := Validate(symbols); err != nil {
		return nil, err
	}
	return &Sequence{Symbols: symbols}, nil
}

// WithMetadata creates a new sequence with full metadata.
func WithMetadata(symbols, id, description string) (*Sequence, error) {
	seq, err := New(symbols)
	if err != nil {
		return nil, err
	}
	seq.ID = id
	seq.Description = description
	return seq, nil
}

// Len returns the number of symbols.
func (s *Sequence) Len() int {
	return len(s.Symbols)
}

// String returns a string representation of the sequence.
func (s *Sequence) String() string {
	if s.ID != "" {
		return fmt.Sprintf(">%s\n%s", s.ID, s.Symbols)
	}
	return s.Symbols
}
