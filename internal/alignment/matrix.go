package alignment

// Cell holds a non-negative score and the move that produced it.
type Cell struct {
	Score int
	Move  Move
}

// ScoreMatrix is a dense (n+1)x(m+1) grid of cells for sequences of length
// n and m. Row 0 and column 0 stay {0, MoveNone}.
type ScoreMatrix struct {
	rows, cols int
	cells      []Cell
}

// NewScoreMatrix allocates a zeroed matrix with the given dimensions.
func NewScoreMatrix(rows, cols int) *ScoreMatrix {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return &ScoreMatrix{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

// Rows returns len(seq1)+1.
func (m *ScoreMatrix) Rows() int { return m.rows }

// Cols returns len(seq2)+1.
func (m *ScoreMatrix) Cols() int { return m.cols }

// At returns the cell at (i, j). It panics if the index is out of range.
func (m *ScoreMatrix) At(i, j int) Cell {
	return m.cells[i*m.cols+j]
}

// Score returns the score at (i, j).
func (m *ScoreMatrix) Score(i, j int) int {
	return m.cells[i*m.cols+j].Score
}

func (m *ScoreMatrix) set(i, j int, c Cell) {
	m.cells[i*m.cols+j] = c
}

// Max returns the highest-scoring cell. Ties go to the first cell in
// row-major order.
func (m *ScoreMatrix) Max() (besti, bestj, best int) {
	best = -1
	for i := 0; i < m.rows; i++ {
		row := m.cells[i*m.cols : (i+1)*m.cols]
		for j, c := range row {
			if c.Score > best {
				best, besti, bestj = c.Score, i, j
			}
		}
	}
	return besti, bestj, best
}

// Scores returns a copy of the score projection as rows.
func (m *ScoreMatrix) Scores() [][]int {
	out := make([][]int, m.rows)
	for i := range out {
		out[i] = make([]int, m.cols)
		for j := range out[i] {
			out[i][j] = m.Score(i, j)
		}
	}
	return out
}

// Moves returns the decoded move of every cell as rows.
func (m *ScoreMatrix) Moves() [][]string {
	out := make([][]string, m.rows)
	for i := range out {
		out[i] = make([]string, m.cols)
		for j := range out[i] {
			out[i][j] = m.At(i, j).Move.String()
		}
	}
	return out
}
