// Package scoring provides substitution models and the affine gap model.
//
// A substitution model maps an ordered pair of symbols to an integer
// similarity score. Symmetry is never assumed: Score(a, b) and Score(b, a)
// may differ for tables that define them differently.
package scoring

import "fmt"

// Model scores aligning symbol a (from sequence 1) against symbol b (from
// sequence 2).
type Model interface {
	Score(a, b byte) (int, error)
}

// LookupError is returned when a model has no score for a symbol pair.
type LookupError struct {
	A, B byte
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("no substitution score for pair (%q, %q)", e.A, e.B)
}

// Covers checks that model defines a score for every pair of symbols that
// can be aligned between seq1 and seq2. It returns the first missing pair as
// a *LookupError.
func Covers(model Model, seq1, seq2 string) error {
	a1 := distinct(seq1)
	a2 := distinct(seq2)
	for _, a := range a1 {
		for _, b := range a2 {
			if _, err := model.Score(a, b); err != nil {
				return err
			}
		}
	}
	return nil
}

func distinct(s string) []byte {
	var seen [256]bool
	out := make([]byte, 0, 32)
	for i := 0; i < len(s); i++ {
		if !seen[s[i]] {
			seen[s[i]] = true
			out = append(out, s[i])
		}
	}
	return out
}
