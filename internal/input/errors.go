// Package input loads the aligner's inputs from files: the pair of
// sequences and the substitution table.
package input

import "fmt"

// InputError is the base error type for loading failures.
type InputError interface {
	error
	IsInputError()
}

// ParseError is returned when an input resource is malformed.
type ParseError struct {
	Source string
	Line   int
	Msg    string
	Err    error
}

func (e *ParseError) Error() string {
	loc := e.Source
	if loc == "" {
		loc = "input"
	}
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", loc, e.Line)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", loc, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", loc, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) IsInputError() {}

// IOError is returned when an input resource cannot be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) IsInputError() {}
