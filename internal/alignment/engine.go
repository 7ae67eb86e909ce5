package alignment

import (
	"context"
	"fmt"
	"strings"

	"github.com/aria-lang/swaffine-go/internal/scoring"
	"github.com/aria-lang/swaffine-go/internal/sequence"
)

// Strategy selects how the engine searches for the best gap at each cell.
type Strategy int

const (
	// Naive scans every gap length for every cell, O(n*m*(n+m)).
	Naive Strategy = iota
	// Gotoh keeps running gap maxima per row and column, O(n*m).
	Gotoh
)

func (s Strategy) String() string {
	switch s {
	case Naive:
		return "naive"
	case Gotoh:
		return "gotoh"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a strategy name to its value. The empty string is Naive.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "", "naive":
		return Naive, nil
	case "gotoh":
		return Gotoh, nil
	default:
		return Naive, fmt.Errorf("unknown strategy %q (want naive or gotoh)", name)
	}
}

// Config holds the engine parameters.
type Config struct {
	Gap      scoring.Gap
	Strategy Strategy
}

// DefaultConfig returns the default gap model with the naive strategy.
func DefaultConfig() Config {
	return Config{Gap: scoring.DefaultGap(), Strategy: Naive}
}

// Engine fills score matrices and reconstructs local alignments. An Engine
// holds no per-run state and may be shared between goroutines as long as
// its model is safe for concurrent reads.
type Engine struct {
	model  scoring.Model
	config Config
}

// NewEngine creates an engine for the given substitution model.
func NewEngine(model scoring.Model, config Config) (*Engine, error) {
	if model == nil {
		return nil, fmt.Errorf("substitution model is required")
	}
	if config.Strategy != Naive && config.Strategy != Gotoh {
		return nil, fmt.Errorf("unknown strategy %d", config.Strategy)
	}
	return &Engine{model: model, config: config}, nil
}

// Fill computes the (len(seq1)+1)x(len(seq2)+1) score matrix.
//
// Each cell takes max(0, diag, up, left). The recorded move prefers diag,
// then up, then left on ties; gap lengths prefer the shortest gap on ties.
// Cells clamped to 0 record MoveNone.
func (e *Engine) Fill(seq1, seq2 string) (*ScoreMatrix, error) {
	return e.FillContext(context.Background(), seq1, seq2)
}

// FillContext is Fill with cancellation. ctx is checked once per matrix
// row; a cancelled fill returns ctx.Err().
func (e *Engine) FillContext(ctx context.Context, seq1, seq2 string) (*ScoreMatrix, error) {
	if err := scoring.Covers(e.model, seq1, seq2); err != nil {
		return nil, err
	}

	m := NewScoreMatrix(len(seq1)+1, len(seq2)+1)
	var err error
	switch e.config.Strategy {
	case Gotoh:
		err = e.fillGotoh(ctx, m, seq1, seq2)
	default:
		err = e.fillNaive(ctx, m, seq1, seq2)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (e *Engine) fillNaive(ctx context.Context, m *ScoreMatrix, seq1, seq2 string) error {
	for i := 1; i <= len(seq1); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j := 1; j <= len(seq2); j++ {
			sub, err := e.model.Score(seq1[i-1], seq2[j-1])
			if err != nil {
				return fmt.Errorf("cell (%d, %d): %w", i, j, err)
			}
			diag := m.Score(i-1, j-1) + sub
			up, upDist := e.bestUp(m, i, j)
			left, leftDist := e.bestLeft(m, i, j)
			m.set(i, j, chooseCell(diag, up, upDist, left, leftDist))
		}
	}
	return nil
}

// bestUp scans every vertical gap ending at (i, j). i must be >= 1.
func (e *Engine) bestUp(m *ScoreMatrix, i, j int) (int, int) {
	gap := e.config.Gap
	best, dist := m.Score(i-1, j)+gap.Open, 1
	for k := 2; k <= i; k++ {
		if v := m.Score(i-k, j) + gap.Cost(k); v > best {
			best, dist = v, k
		}
	}
	return best, dist
}

// bestLeft scans every horizontal gap ending at (i, j). j must be >= 1.
func (e *Engine) bestLeft(m *ScoreMatrix, i, j int) (int, int) {
	gap := e.config.Gap
	best, dist := m.Score(i, j-1)+gap.Open, 1
	for k := 2; k <= j; k++ {
		if v := m.Score(i, j-k) + gap.Cost(k); v > best {
			best, dist = v, k
		}
	}
	return best, dist
}

func chooseCell(diag, up, upDist, left, leftDist int) Cell {
	best := max(diag, up, left)
	if best <= 0 {
		return Cell{}
	}
	switch best {
	case diag:
		return Cell{Score: best, Move: Diagonal()}
	case up:
		return Cell{Score: best, Move: Up(upDist)}
	default:
		return Cell{Score: best, Move: Left(leftDist)}
	}
}

// Align fills the matrix and reconstructs the best local alignment.
func (e *Engine) Align(seq1, seq2 string) (*Alignment, error) {
	m, err := e.Fill(seq1, seq2)
	if err != nil {
		return nil, err
	}
	return Traceback(m, seq1, seq2), nil
}

// AlignSequences is Align for loaded sequences.
func (e *Engine) AlignSequences(seq1, seq2 *sequence.Sequence) (*Alignment, error) {
	if seq1 == nil || seq2 == nil {
		return nil, fmt.Errorf("sequences must not be nil")
	}
	return e.Align(seq1.Symbols, seq2.Symbols)
}

// ScoreOnly returns the best local alignment score without a traceback.
func (e *Engine) ScoreOnly(ctx context.Context, seq1, seq2 string) (int, error) {
	m, err := e.FillContext(ctx, seq1, seq2)
	if err != nil {
		return 0, err
	}
	_, _, best := m.Max()
	return best, nil
}
