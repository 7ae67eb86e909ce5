// Package swaffine provides a high-level API for affine-gap local alignment.
//
// Example usage:
//
//	pair, err := swaffine.ReadPair("input.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	table, err := swaffine.LoadTable("blosum62.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := swaffine.Run(pair, table, swaffine.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := result.WriteReport(os.Stdout, false); err != nil {
//	    log.Fatal(err)
//	}
package swaffine

import (
	"context"
	"fmt"
	"io"

	"github.com/aria-lang/swaffine-go/internal/alignment"
	"github.com/aria-lang/swaffine-go/internal/config"
	"github.com/aria-lang/swaffine-go/internal/input"
	"github.com/aria-lang/swaffine-go/internal/render"
	"github.com/aria-lang/swaffine-go/internal/scoring"
	"github.com/aria-lang/swaffine-go/internal/sequence"
)

// Re-export types for convenience
type (
	Sequence           = sequence.Sequence
	Pair               = input.Pair
	Model              = scoring.Model
	Table              = scoring.Table
	Identity           = scoring.Identity
	Gap                = scoring.Gap
	Alignment          = alignment.Alignment
	ScoreMatrix        = alignment.ScoreMatrix
	Cell               = alignment.Cell
	Move               = alignment.Move
	EngineConfig       = alignment.Config
	Strategy           = alignment.Strategy
	IndexedAlignment   = alignment.IndexedAlignment
	Config             = config.Config
	ParseError         = input.ParseError
	IOError            = input.IOError
	LookupError        = scoring.LookupError
	InvalidSymbolError = sequence.InvalidSymbolError
)

// Strategies
const (
	Naive = alignment.Naive
	Gotoh = alignment.Gotoh
)

// NewSequence creates a new sequence.
func NewSequence(symbols string) (*Sequence, error) {
	return sequence.New(symbols)
}

// ReadPair reads the two sequences to align from a file.
func ReadPair(path string) (*Pair, error) {
	return input.ReadPair(path)
}

// ReadFASTA reads sequences from a FASTA file.
func ReadFASTA(path string) ([]*Sequence, error) {
	return input.ReadFASTA(path)
}

// LoadTable reads a whitespace-delimited substitution table.
func LoadTable(path string) (*Table, error) {
	return input.LoadTable(path)
}

// BuiltinTable returns a named built-in substitution table.
func BuiltinTable(name string) (*Table, error) {
	return scoring.Builtin(name)
}

// BuiltinTables returns the names of the built-in substitution tables.
func BuiltinTables() []string {
	return scoring.BuiltinNames()
}

// IdentityPresets returns the names of the built-in match/mismatch models.
func IdentityPresets() []string {
	return scoring.PresetNames()
}

// IdentityPreset returns a named match/mismatch model.
func IdentityPreset(name string) (*Identity, error) {
	return scoring.Preset(name)
}

// NewIdentity creates a validated match/mismatch model.
func NewIdentity(match, mismatch int) (*Identity, error) {
	return scoring.NewIdentity(match, mismatch)
}

// ParseStrategy maps "naive" or "gotoh" to a fill strategy.
func ParseStrategy(name string) (Strategy, error) {
	return alignment.ParseStrategy(name)
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() EngineConfig {
	return alignment.DefaultConfig()
}

// ModelFor returns the substitution model a run configuration selects.
func ModelFor(cfg Config) (Model, error) {
	switch {
	case cfg.Score != "":
		return input.LoadTable(cfg.Score)
	case cfg.Table != "":
		return scoring.Builtin(cfg.Table)
	default:
		return nil, fmt.Errorf("a score table file or built-in table name is required")
	}
}

// Result carries everything one run produces.
type Result struct {
	Seq1      *Sequence
	Seq2      *Sequence
	Matrix    *ScoreMatrix
	Alignment *Alignment
}

// Run fills the score matrix for a pair and reconstructs its alignment.
func Run(pair *Pair, model Model, cfg EngineConfig) (*Result, error) {
	return RunContext(context.Background(), pair, model, cfg)
}

// RunContext is Run with cancellation of the matrix fill.
func RunContext(ctx context.Context, pair *Pair, model Model, cfg EngineConfig) (*Result, error) {
	e, err := alignment.NewEngine(model, cfg)
	if err != nil {
		return nil, err
	}
	m, err := e.FillContext(ctx, pair.First.Symbols, pair.Second.Symbols)
	if err != nil {
		return nil, err
	}
	return &Result{
		Seq1:      pair.First,
		Seq2:      pair.Second,
		Matrix:    m,
		Alignment: alignment.Traceback(m, pair.First.Symbols, pair.Second.Symbols),
	}, nil
}

// Score returns the best local alignment score of a pair without
// reconstructing the alignment.
func Score(ctx context.Context, pair *Pair, model Model, cfg EngineConfig) (int, error) {
	e, err := alignment.NewEngine(model, cfg)
	if err != nil {
		return 0, err
	}
	return e.ScoreOnly(ctx, pair.First.Symbols, pair.Second.Symbols)
}

// RunConfig loads the inputs named by cfg and runs the alignment.
func RunConfig(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Input == "" {
		return nil, fmt.Errorf("an input sequence file is required")
	}
	pair, err := input.ReadPair(cfg.Input)
	if err != nil {
		return nil, err
	}
	model, err := ModelFor(cfg)
	if err != nil {
		return nil, err
	}
	ec, err := cfg.Engine()
	if err != nil {
		return nil, err
	}
	return Run(pair, model, ec)
}

// WriteReport writes the sequences, score matrix and alignment sections
// to w.
func (r *Result) WriteReport(w io.Writer, moves bool) error {
	return render.WriteReport(w, r.Seq1.Symbols, r.Seq2.Symbols, r.Matrix, r.Alignment, moves)
}

// AlignAll aligns query against every target in order.
func AlignAll(query *Sequence, targets []*Sequence, model Model, cfg EngineConfig) ([]IndexedAlignment, error) {
	e, err := alignment.NewEngine(model, cfg)
	if err != nil {
		return nil, err
	}
	return alignment.AlignAgainstMultiple(e, query, targets)
}

// Version returns the swaffine version.
func Version() string {
	return "1.0.0"
}

// Info returns information about swaffine.
func Info() string {
	return fmt.Sprintf(`swaffine v%s - Affine-gap Smith-Waterman local alignment

Features:
  - Local alignment with affine gap penalties (open + extend*(k-1))
  - Naive full gap search or Gotoh O(n*m) fill, identical results
  - Substitution tables from whitespace files or built-in BLOSUM45/62
  - Score matrix display with decoded traceback moves
  - Plain two-line or FASTA sequence input
`, Version())
}
