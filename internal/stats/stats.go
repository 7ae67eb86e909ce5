// Package stats provides statistical summaries over multi-target searches.
package stats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aria-lang/swaffine-go/internal/alignment"
)

// SearchStats summarizes the local alignment scores of one query against
// a set of targets.
type SearchStats struct {
	Count        int
	Hits         int
	MinScore     int
	MaxScore     int
	MeanScore    float64
	MedianScore  int
	MeanIdentity float64
	BestIndex    int
}

// FromAlignments calculates statistics for a set of target alignments.
// Hits counts targets with a non-empty alignment; MeanIdentity averages
// over hits only. BestIndex is the first target reaching MaxScore.
func FromAlignments(results []alignment.IndexedAlignment) (*SearchStats, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("alignment list cannot be empty")
	}

	count := len(results)
	scores := make([]int, count)
	total := 0
	hits := 0
	identitySum := 0.0

	best := 0
	for i, r := range results {
		s := r.Alignment.Score
		scores[i] = s
		total += s
		if s > scores[best] {
			best = i
		}
		if !r.Alignment.Empty() {
			hits++
			identitySum += r.Alignment.Identity
		}
	}

	sorted := make([]int, count)
	copy(sorted, scores)
	sort.Ints(sorted)

	mid := count / 2
	var median int
	if count%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		median = sorted[mid]
	}

	meanIdentity := 0.0
	if hits > 0 {
		meanIdentity = identitySum / float64(hits)
	}

	return &SearchStats{
		Count:        count,
		Hits:         hits,
		MinScore:     sorted[0],
		MaxScore:     sorted[count-1],
		MeanScore:    float64(total) / float64(count),
		MedianScore:  median,
		MeanIdentity: meanIdentity,
		BestIndex:    results[best].Index,
	}, nil
}

func (s *SearchStats) String() string {
	return fmt.Sprintf(`SearchStats {
  targets: %d
  hits: %d
  score range: %d - %d
  mean score: %.1f
  median score: %d
  mean identity: %.1f%%
}`, s.Count, s.Hits, s.MinScore, s.MaxScore,
		s.MeanScore, s.MedianScore, s.MeanIdentity*100)
}

// ScoreHistogram bins alignment scores into equal-width ranges.
type ScoreHistogram struct {
	Bins     []int
	MinScore int
	MaxScore int
	BinWidth int
	NumBins  int
}

// NewScoreHistogram creates a score histogram from target alignments.
func NewScoreHistogram(results []alignment.IndexedAlignment, numBins int) (*ScoreHistogram, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("alignment list cannot be empty")
	}
	if numBins <= 0 {
		return nil, fmt.Errorf("numBins must be positive")
	}

	minScore := results[0].Alignment.Score
	maxScore := minScore
	for _, r := range results {
		if r.Alignment.Score < minScore {
			minScore = r.Alignment.Score
		}
		if r.Alignment.Score > maxScore {
			maxScore = r.Alignment.Score
		}
	}

	// ceil so the top score lands in the last bin
	binWidth := (maxScore - minScore + numBins) / numBins
	if binWidth < 1 {
		binWidth = 1
	}

	bins := make([]int, numBins)
	for _, r := range results {
		idx := (r.Alignment.Score - minScore) / binWidth
		if idx >= numBins {
			idx = numBins - 1
		}
		bins[idx]++
	}

	return &ScoreHistogram{
		Bins:     bins,
		MinScore: minScore,
		MaxScore: maxScore,
		BinWidth: binWidth,
		NumBins:  numBins,
	}, nil
}

func (h *ScoreHistogram) String() string {
	var sb strings.Builder
	sb.WriteString("Score Histogram:\n")
	for i := 0; i < h.NumBins; i++ {
		start := h.MinScore + i*h.BinWidth
		end := start + h.BinWidth - 1
		count := h.Bins[i]
		fmt.Fprintf(&sb, "%5d-%5d: %s (%d)\n", start, end, strings.Repeat("#", count), count)
	}
	return sb.String()
}
