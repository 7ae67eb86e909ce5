package alignment

import (
	"fmt"

	"github.com/aria-lang/swaffine-go/internal/sequence"
)

// IndexedAlignment pairs an alignment with the index of its target.
type IndexedAlignment struct {
	Index     int
	Alignment *Alignment
}

// AlignAgainstMultiple aligns query against every target in order.
func AlignAgainstMultiple(engine *Engine, query *sequence.Sequence,
	targets []*sequence.Sequence) ([]IndexedAlignment, error) {
	if len(targets) == 0 {
		return nil, fmt.Errorf("target list cannot be empty")
	}

	results := make([]IndexedAlignment, len(targets))
	for i, target := range targets {
		alignment, err := engine.AlignSequences(query, target)
		if err != nil {
			return nil, fmt.Errorf("target %d: %w", i, err)
		}
		results[i] = IndexedAlignment{Index: i, Alignment: alignment}
	}

	return results, nil
}
