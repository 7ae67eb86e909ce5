package alignment

import (
	"context"
	"fmt"
)

// fillGotoh computes the same matrix as fillNaive in O(n*m).
//
// For a vertical gap ending at (i, j) the best candidate over all lengths k
// is either opening a new gap from (i-1, j), or extending the best vertical
// gap that ended at (i-1, j) by one more symbol. Opening wins ties, which
// keeps the shortest maximizing length exactly as the naive scan does.
// Horizontal gaps work the same way along the row.
func (e *Engine) fillGotoh(ctx context.Context, m *ScoreMatrix, seq1, seq2 string) error {
	open, ext := e.config.Gap.Open, e.config.Gap.Extend
	w := len(seq2)

	vert := make([]int, w+1)
	vertDist := make([]int, w+1)

	for i := 1; i <= len(seq1); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		horiz, horizDist := 0, 0
		for j := 1; j <= w; j++ {
			sub, err := e.model.Score(seq1[i-1], seq2[j-1])
			if err != nil {
				return fmt.Errorf("cell (%d, %d): %w", i, j, err)
			}

			if fresh := m.Score(i-1, j) + open; i == 1 || fresh >= vert[j]+ext {
				vert[j], vertDist[j] = fresh, 1
			} else {
				vert[j] += ext
				vertDist[j]++
			}

			if fresh := m.Score(i, j-1) + open; j == 1 || fresh >= horiz+ext {
				horiz, horizDist = fresh, 1
			} else {
				horiz += ext
				horizDist++
			}

			diag := m.Score(i-1, j-1) + sub
			m.set(i, j, chooseCell(diag, vert[j], vertDist[j], horiz, horizDist))
		}
	}
	return nil
}
