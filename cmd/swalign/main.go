// Command swalign performs affine-gap Smith-Waterman local alignment.
//
// Usage:
//
//	swalign [command] [options]
//
// Commands:
//
//	align       Align the two sequences of an input file
//	matrix      Print the annotated score matrix only
//	search      Find the best-scoring target for a query
//	tables      List built-in substitution tables
//	version     Show version information
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/aria-lang/swaffine-go/internal/config"
	"github.com/aria-lang/swaffine-go/internal/render"
	"github.com/aria-lang/swaffine-go/internal/stats"
	"github.com/aria-lang/swaffine-go/pkg/swaffine"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "align":
		alignCmd(os.Args[2:])
	case "matrix":
		matrixCmd(os.Args[2:])
	case "search":
		searchCmd(os.Args[2:])
	case "tables":
		for _, name := range swaffine.BuiltinTables() {
			fmt.Println(name)
		}
	case "version":
		fmt.Println(swaffine.Info())
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`swalign - Affine-gap Smith-Waterman Local Alignment

Usage:
  swalign <command> [options]

Commands:
  align     Align the two sequences of an input file
  matrix    Print the annotated score matrix only
  search    Find the best-scoring target for a query
  tables    List built-in substitution tables
  version   Show version information
  help      Show this help message

Use "swalign <command> -h" for more information about a command.`)
}

// runFlags registers the flags shared by align and matrix. Flags given on
// the command line override values from -config.
type runFlags struct {
	fs         *flag.FlagSet
	cfg        config.Config
	configPath string
}

func newRunFlags(name string) *runFlags {
	rf := &runFlags{fs: flag.NewFlagSet(name, flag.ExitOnError), cfg: config.Default()}
	fs := rf.fs
	fs.StringVar(&rf.cfg.Input, "i", "", "Input file with the two sequences")
	fs.StringVar(&rf.cfg.Input, "input", "", "Input file with the two sequences")
	fs.StringVar(&rf.cfg.Score, "s", "", "Substitution table file")
	fs.StringVar(&rf.cfg.Score, "score", "", "Substitution table file")
	fs.IntVar(&rf.cfg.OpenGap, "o", rf.cfg.OpenGap, "Gap opening penalty")
	fs.IntVar(&rf.cfg.OpenGap, "opengap", rf.cfg.OpenGap, "Gap opening penalty")
	fs.IntVar(&rf.cfg.ExtGap, "e", rf.cfg.ExtGap, "Gap extension penalty")
	fs.IntVar(&rf.cfg.ExtGap, "extgap", rf.cfg.ExtGap, "Gap extension penalty")
	fs.StringVar(&rf.cfg.Table, "table", "", "Built-in substitution table ("+strings.Join(swaffine.BuiltinTables(), ", ")+")")
	fs.StringVar(&rf.cfg.Strategy, "strategy", rf.cfg.Strategy, "Fill strategy: naive or gotoh")
	fs.BoolVar(&rf.cfg.ShowMoves, "moves", false, "Annotate matrix cells with traceback moves")
	fs.StringVar(&rf.cfg.Format, "format", rf.cfg.Format, "Output format: text or json")
	fs.StringVar(&rf.configPath, "config", "", "YAML configuration file")
	return rf
}

// parse parses args, then layers the explicitly set flags over the config
// file when one is given.
func (rf *runFlags) parse(args []string) config.Config {
	rf.fs.Parse(args)
	if rf.configPath == "" {
		return rf.cfg
	}

	cfg, err := config.Load(rf.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	rf.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i", "input":
			cfg.Input = rf.cfg.Input
		case "s", "score":
			cfg.Score = rf.cfg.Score
			cfg.Table = ""
		case "table":
			cfg.Table = rf.cfg.Table
			cfg.Score = ""
		case "o", "opengap":
			cfg.OpenGap = rf.cfg.OpenGap
		case "e", "extgap":
			cfg.ExtGap = rf.cfg.ExtGap
		case "strategy":
			cfg.Strategy = rf.cfg.Strategy
		case "moves":
			cfg.ShowMoves = rf.cfg.ShowMoves
		case "format":
			cfg.Format = rf.cfg.Format
		}
	})
	return cfg
}

func (rf *runFlags) run(args []string) (config.Config, *swaffine.Result) {
	cfg := rf.parse(args)

	if cfg.Input == "" || (cfg.Score == "" && cfg.Table == "") {
		fmt.Fprintln(os.Stderr, "Error: -i and one of -s or -table are required")
		rf.fs.Usage()
		os.Exit(1)
	}

	result, err := swaffine.RunConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg, result
}

// jsonReport is the -format json rendering of a run.
type jsonReport struct {
	Sequence1 string     `json:"sequence1"`
	Sequence2 string     `json:"sequence2"`
	Scores    [][]int    `json:"scores"`
	Moves     [][]string `json:"moves,omitempty"`
	Score     int        `json:"score"`
	Lines     [3]string  `json:"lines"`
	CIGAR     string     `json:"cigar"`
	Identity  float64    `json:"identity"`
}

func newJSONReport(r *swaffine.Result, moves bool) jsonReport {
	rep := jsonReport{
		Sequence1: r.Seq1.Symbols,
		Sequence2: r.Seq2.Symbols,
		Scores:    r.Matrix.Scores(),
		Score:     r.Alignment.Score,
		Lines:     r.Alignment.Lines(),
		CIGAR:     r.Alignment.ToCIGAR(),
		Identity:  r.Alignment.Identity,
	}
	if moves {
		rep.Moves = r.Matrix.Moves()
	}
	return rep
}

func writeJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}

func alignCmd(args []string) {
	cfg, result := newRunFlags("align").run(args)

	if strings.EqualFold(cfg.Format, config.FormatJSON) {
		writeJSON(newJSONReport(result, cfg.ShowMoves))
		return
	}
	if err := result.WriteReport(os.Stdout, cfg.ShowMoves); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}

func matrixCmd(args []string) {
	cfg, result := newRunFlags("matrix").run(args)

	if strings.EqualFold(cfg.Format, config.FormatJSON) {
		rep := newJSONReport(result, cfg.ShowMoves)
		writeJSON(struct {
			Scores [][]int    `json:"scores"`
			Moves  [][]string `json:"moves,omitempty"`
		}{rep.Scores, rep.Moves})
		return
	}
	fmt.Print(render.MatrixTable(result.Seq1.Symbols, result.Seq2.Symbols, result.Matrix, cfg.ShowMoves))
}

func searchCmd(args []string) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	query := fs.String("query", "", "Query sequence")
	file := fs.String("file", "", "FASTA file of target sequences")
	table := fs.String("table", "", "Built-in substitution table ("+strings.Join(swaffine.BuiltinTables(), ", ")+")")
	score := fs.String("s", "", "Substitution table file")
	preset := fs.String("preset", "unit", "Match/mismatch preset when no table is given ("+strings.Join(swaffine.IdentityPresets(), ", ")+")")
	match := fs.Int("match", 0, "Match score, overrides the preset")
	mismatch := fs.Int("mismatch", 0, "Mismatch score, overrides the preset")
	openGap := fs.Int("o", swaffine.DefaultConfig().Gap.Open, "Gap opening penalty")
	extGap := fs.Int("e", swaffine.DefaultConfig().Gap.Extend, "Gap extension penalty")
	strategy := fs.String("strategy", "gotoh", "Fill strategy: naive or gotoh")
	bins := fs.Int("hist", 0, "Print a score histogram with this many bins")
	fs.Parse(args)

	if *query == "" || *file == "" {
		fmt.Fprintln(os.Stderr, "Error: Both -query and -file are required")
		fs.Usage()
		os.Exit(1)
	}

	q, err := swaffine.NewSequence(*query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating query: %v\n", err)
		os.Exit(1)
	}
	targets, err := swaffine.ReadFASTA(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	var model swaffine.Model
	switch {
	case *score != "":
		model, err = swaffine.LoadTable(*score)
	case *table != "":
		model, err = swaffine.BuiltinTable(*table)
	default:
		model, err = identityModel(fs, *preset, *match, *mismatch)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	st, err := swaffine.ParseStrategy(*strategy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg := swaffine.EngineConfig{Gap: swaffine.Gap{Open: *openGap, Extend: *extGap}, Strategy: st}

	results, err := swaffine.AlignAll(q, targets, model, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error aligning sequences: %v\n", err)
		os.Exit(1)
	}
	summary, err := stats.FromAlignments(results)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error summarizing results: %v\n", err)
		os.Exit(1)
	}

	target := targets[summary.BestIndex]
	id := target.ID
	if id == "" {
		id = fmt.Sprintf("target %d", summary.BestIndex+1)
	}
	fmt.Printf("Best target: %s\n", id)
	fmt.Println(results[summary.BestIndex].Alignment.Format())
	fmt.Println()
	fmt.Println(summary)

	if *bins > 0 {
		hist, err := stats.NewScoreHistogram(results, *bins)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error building histogram: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(hist)
	}
}

// identityModel starts from the named preset and applies -match and
// -mismatch when they were given.
func identityModel(fs *flag.FlagSet, preset string, match, mismatch int) (swaffine.Model, error) {
	base, err := swaffine.IdentityPreset(preset)
	if err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "match":
			base.Match = match
		case "mismatch":
			base.Mismatch = mismatch
		}
	})
	return swaffine.NewIdentity(base.Match, base.Mismatch)
}
