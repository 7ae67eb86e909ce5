// Package alignment implements affine-gap Smith-Waterman local alignment.
//
// The engine fills a ScoreMatrix from two sequences, a substitution model
// and a gap model; Traceback then walks the filled matrix from its best cell
// back to a restart cell to rebuild the alignment.
package alignment

import "fmt"

// MoveKind identifies how a cell's score was reached.
type MoveKind uint8

const (
	// MoveNone marks a restart cell: its score was clamped to 0 and it has
	// no predecessor.
	MoveNone MoveKind = iota
	// MoveDiagonal aligns one symbol of each sequence.
	MoveDiagonal
	// MoveUp consumes Distance symbols of sequence 1 against a gap.
	MoveUp
	// MoveLeft consumes Distance symbols of sequence 2 against a gap.
	MoveLeft
)

func (k MoveKind) String() string {
	switch k {
	case MoveNone:
		return "none"
	case MoveDiagonal:
		return "diag"
	case MoveUp:
		return "up"
	case MoveLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Move is the trace recorded in a cell. Distance is the gap length for
// MoveUp and MoveLeft and is zero otherwise.
type Move struct {
	Kind     MoveKind
	Distance int
}

// Diagonal returns a diagonal move.
func Diagonal() Move { return Move{Kind: MoveDiagonal} }

// Up returns a vertical gap move of length d.
func Up(d int) Move { return Move{Kind: MoveUp, Distance: d} }

// Left returns a horizontal gap move of length d.
func Left(d int) Move { return Move{Kind: MoveLeft, Distance: d} }

// IsRestart reports whether the move has no predecessor.
func (m Move) IsRestart() bool {
	return m.Kind == MoveNone
}

// String decodes the move for display: "-", "diag", "up3", "left1".
func (m Move) String() string {
	switch m.Kind {
	case MoveNone:
		return "-"
	case MoveDiagonal:
		return "diag"
	case MoveUp, MoveLeft:
		return fmt.Sprintf("%s%d", m.Kind, m.Distance)
	default:
		return "?"
	}
}
