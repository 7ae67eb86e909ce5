package scoring

import (
	"fmt"
	"strings"
)

// Table is a substitution table indexed by row and column symbol labels.
//
// Score(a, b) reads the cell in column a and row b, matching the way score
// files are laid out: the header row lists the symbols of sequence 1, the
// leading column those of sequence 2.
type Table struct {
	Name string

	cols   []byte
	rows   []byte
	colIdx [256]int
	rowIdx [256]int
	scores [][]int
}

// NewTable builds a table from column labels, row labels and a row-major
// score grid with len(rows) rows of len(cols) values.
func NewTable(cols, rows []byte, scores [][]int) (*Table, error) {
	if len(cols) == 0 || len(rows) == 0 {
		return nil, fmt.Errorf("table must have at least one row and one column")
	}
	if len(scores) != len(rows) {
		return nil, fmt.Errorf("table has %d row labels but %d score rows", len(rows), len(scores))
	}

	t := &Table{
		cols:   append([]byte(nil), cols...),
		rows:   append([]byte(nil), rows...),
		scores: make([][]int, len(rows)),
	}
	for i := range t.colIdx {
		t.colIdx[i] = -1
		t.rowIdx[i] = -1
	}
	for i, c := range cols {
		if t.colIdx[c] >= 0 {
			return nil, fmt.Errorf("duplicate column label %q", c)
		}
		t.colIdx[c] = i
	}
	for i, r := range rows {
		if t.rowIdx[r] >= 0 {
			return nil, fmt.Errorf("duplicate row label %q", r)
		}
		t.rowIdx[r] = i
		if len(scores[i]) != len(cols) {
			return nil, fmt.Errorf("row %q has %d scores, want %d", r, len(scores[i]), len(cols))
		}
		t.scores[i] = append([]int(nil), scores[i]...)
	}
	return t, nil
}

// Score implements Model.
func (t *Table) Score(a, b byte) (int, error) {
	c, r := t.colIdx[a], t.rowIdx[b]
	if c < 0 || r < 0 {
		return 0, &LookupError{A: a, B: b}
	}
	return t.scores[r][c], nil
}

// Columns returns the column labels.
func (t *Table) Columns() []byte {
	return append([]byte(nil), t.cols...)
}

// Rows returns the row labels.
func (t *Table) Rows() []byte {
	return append([]byte(nil), t.rows...)
}

// IsSymmetric reports whether the table has identical row and column
// labels and Score(a, b) == Score(b, a) for all of them.
func (t *Table) IsSymmetric() bool {
	if string(t.cols) != string(t.rows) {
		return false
	}
	for _, a := range t.cols {
		for _, b := range t.cols {
			x, _ := t.Score(a, b)
			y, _ := t.Score(b, a)
			if x != y {
				return false
			}
		}
	}
	return true
}

// String renders the table in the whitespace format it is loaded from.
func (t *Table) String() string {
	var sb strings.Builder
	for _, c := range t.cols {
		fmt.Fprintf(&sb, "\t%c", c)
	}
	sb.WriteByte('\n')
	for i, r := range t.rows {
		sb.WriteByte(r)
		for _, v := range t.scores[i] {
			fmt.Fprintf(&sb, "\t%d", v)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
