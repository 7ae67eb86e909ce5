package sequence

import "fmt"

// SequenceError is the base error type for sequence operations.
type SequenceError interface {
	error
	IsSequenceError()
}

// InvalidSymbolError is returned when a byte cannot be a sequence symbol.
type InvalidSymbolError struct {
	Position int
	Found    byte
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %q at position %d", e.Found, e.Position)
}

func (e *InvalidSymbolError) IsSequenceError() {}

// Validate checks that every byte is a printable, non-blank ASCII symbol.
func Validate(symbols string) error {
	for i := 0; i < len(symbols); i++ {
		if !IsValidSymbol(symbols[i]) {
			return &InvalidSymbolError{Position: i, Found: symbols[i]}
		}
	}
	return nil
}

// IsValidSymbol reports whether c may appear in a sequence.
func IsValidSymbol(c byte) bool {
	return c > ' ' && c < 0x7f
}
