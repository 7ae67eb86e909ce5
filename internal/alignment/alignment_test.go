package alignment

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/aria-lang/swaffine-go/internal/scoring"
	"github.com/aria-lang/swaffine-go/internal/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t testing.TB, model scoring.Model, strategy Strategy) *Engine {
	t.Helper()
	e, err := NewEngine(model, Config{Gap: scoring.DefaultGap(), Strategy: strategy})
	require.NoError(t, err)
	return e
}

func identity(match, mismatch int) *scoring.Identity {
	return &scoring.Identity{Match: match, Mismatch: mismatch}
}

var strategies = []Strategy{Naive, Gotoh}

func TestGoldenAlignments(t *testing.T) {
	tests := []struct {
		name       string
		seq1, seq2 string
		model      scoring.Model
		score      int
		lines      [3]string
	}{
		{
			name: "textbook unit scoring",
			seq1: "TGTTACGG", seq2: "GGTTGACTA",
			model: identity(1, -1),
			score: 3,
			lines: [3]string{"T(GTT) ACGG", "  |||      ", "G(GTT)GACTA"},
		},
		{
			name: "textbook +3/-3 scoring",
			seq1: "TGTTACGG", seq2: "GGTTGACTA",
			model: identity(3, -3),
			score: 13,
			lines: [3]string{"T(GTT-AC)GG", "  ||| ||   ", "G(GTTGAC)TA"},
		},
		{
			name: "single symbol match",
			seq1: "A", seq2: "A",
			model: identity(5, -1),
			score: 5,
			lines: [3]string{"(A)", " | ", "(A)"},
		},
		{
			name: "leading head on sequence 2",
			seq1: "ACACACTA", seq2: "AGCACACA",
			model: identity(2, -1),
			score: 10,
			lines: [3]string{"   (ACACA)CTA", "    |||||    ", "AGC(ACACA)   "},
		},
		{
			name: "long gap in sequence 1",
			seq1: "AAATTT", seq2: "AAAGGGTTT",
			model: identity(3, -1),
			score: 14,
			lines: [3]string{"(AAA---TTT)", " |||   ||| ", "(AAAGGGTTT)"},
		},
		{
			name: "long gap in sequence 2",
			seq1: "AAAGGGTTT", seq2: "AAATTT",
			model: identity(3, -1),
			score: 14,
			lines: [3]string{"(AAAGGGTTT)", " |||   ||| ", "(AAA---TTT)"},
		},
		{
			name: "equal maxima pick first in row-major order",
			seq1: "AB", seq2: "BA",
			model: identity(1, -1),
			score: 1,
			lines: [3]string{" (A)B", "  |  ", "B(A) "},
		},
		{
			name: "later equal maximum ignored",
			seq1: "GATTACA", seq2: "GCATGCU",
			model: identity(1, -1),
			score: 2,
			lines: [3]string{" G(AT)TACA", "   ||     ", "GC(AT) GCU"},
		},
	}

	for _, tt := range tests {
		for _, strategy := range strategies {
			t.Run(tt.name+"/"+strategy.String(), func(t *testing.T) {
				e := newEngine(t, tt.model, strategy)
				a, err := e.Align(tt.seq1, tt.seq2)
				require.NoError(t, err)

				assert.Equal(t, tt.score, a.Score)
				assert.Equal(t, tt.lines, a.Lines())
				assert.Equal(t, len(a.AlignedSeq1), len(a.AlignedSeq2))
				assert.Equal(t, len(a.Line1), len(a.Match))
				assert.Equal(t, len(a.Line1), len(a.Line2))
			})
		}
	}
}

func TestGoldenMatrix(t *testing.T) {
	want := [][]int{
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 0, 0, 0, 1, 0},
		{0, 1, 1, 0, 0, 2, 0, 0, 0, 0},
		{0, 0, 0, 2, 1, 0, 1, 0, 1, 0},
		{0, 0, 0, 1, 3, 1, 0, 0, 1, 0},
		{0, 0, 0, 0, 1, 2, 2, 0, 0, 2},
		{0, 0, 0, 0, 0, 0, 1, 3, 1, 0},
		{0, 1, 1, 0, 0, 1, 0, 1, 2, 0},
		{0, 1, 2, 0, 0, 1, 0, 0, 0, 1},
	}

	for _, strategy := range strategies {
		t.Run(strategy.String(), func(t *testing.T) {
			e := newEngine(t, identity(1, -1), strategy)
			m, err := e.Fill("TGTTACGG", "GGTTGACTA")
			require.NoError(t, err)

			assert.Equal(t, 9, m.Rows())
			assert.Equal(t, 10, m.Cols())
			assert.Equal(t, want, m.Scores())

			assert.Equal(t, Left(1), m.At(4, 5).Move)
			assert.Equal(t, Up(1), m.At(5, 4).Move)
			assert.Equal(t, Left(1), m.At(6, 8).Move)
			assert.Equal(t, Up(1), m.At(7, 7).Move)
			assert.Equal(t, Diagonal(), m.At(4, 4).Move)
			assert.Equal(t, Move{}, m.At(1, 1).Move)
			assert.Equal(t, Move{}, m.At(2, 6).Move)
		})
	}
}

func TestAlignmentCoordinates(t *testing.T) {
	e := newEngine(t, identity(3, -3), Naive)
	a, err := e.Align("TGTTACGG", "GGTTGACTA")
	require.NoError(t, err)

	assert.Equal(t, "GTT-AC", a.AlignedSeq1)
	assert.Equal(t, "GTTGAC", a.AlignedSeq2)
	assert.Equal(t, "||| ||", a.Markers)
	assert.Equal(t, 1, a.Start1)
	assert.Equal(t, 6, a.End1)
	assert.Equal(t, 1, a.Start2)
	assert.Equal(t, 7, a.End2)
	assert.Equal(t, "3M1I2M", a.ToCIGAR())
	assert.Equal(t, 5, a.MatchCount())
	assert.Equal(t, 1, a.GapOpenings())
	assert.InDelta(t, 5.0/6.0, a.Identity, 0.0001)
	assert.Contains(t, a.Format(), "Gap openings: 1\nCIGAR: 3M1I2M")
}

func TestNoLocalAlignment(t *testing.T) {
	tests := []struct {
		name       string
		seq1, seq2 string
	}{
		{"disjoint single symbols", "A", "C"},
		{"disjoint runs", "AAAA", "TTTT"},
		{"empty first", "", "ACGT"},
		{"empty second", "ACGT", ""},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		for _, strategy := range strategies {
			t.Run(tt.name+"/"+strategy.String(), func(t *testing.T) {
				e := newEngine(t, identity(1, -1), strategy)
				m, err := e.Fill(tt.seq1, tt.seq2)
				require.NoError(t, err)
				assert.Equal(t, len(tt.seq1)+1, m.Rows())
				assert.Equal(t, len(tt.seq2)+1, m.Cols())

				a := Traceback(m, tt.seq1, tt.seq2)
				assert.True(t, a.Empty())
				assert.Equal(t, 0, a.Score)
				assert.Equal(t, [3]string{"", "", ""}, a.Lines())
			})
		}
	}
}

func TestIdenticalSequences(t *testing.T) {
	for _, s := range []string{"A", "ACGT", "GATTACA", strings.Repeat("ACGTTGCA", 5)} {
		e := newEngine(t, identity(2, -1), Naive)
		a, err := e.Align(s, s)
		require.NoError(t, err)

		assert.Equal(t, 2*len(s), a.Score)
		assert.Equal(t, s, a.AlignedSeq1)
		assert.Equal(t, s, a.AlignedSeq2)
		assert.Equal(t, 0, a.TotalGaps())
		assert.Equal(t, "("+s+")", a.Line1)
		assert.Equal(t, " "+strings.Repeat("|", len(s))+" ", a.Match)
		assert.Equal(t, 1.0, a.Identity)
	}
}

func TestAsymmetricTable(t *testing.T) {
	// Column X / row Y scores 4; column Y / row X scores -4.
	table, err := scoring.NewTable([]byte("XY"), []byte("XY"), [][]int{
		{1, -4},
		{4, 1},
	})
	require.NoError(t, err)

	e := newEngine(t, table, Naive)

	a, err := e.Align("X", "Y")
	require.NoError(t, err)
	assert.Equal(t, 4, a.Score)
	assert.Equal(t, [3]string{"(X)", "   ", "(Y)"}, a.Lines())

	b, err := e.Align("Y", "X")
	require.NoError(t, err)
	assert.True(t, b.Empty())
}

func TestMissingPair(t *testing.T) {
	table, err := scoring.NewTable([]byte("ACGT"), []byte("ACGT"), [][]int{
		{1, -1, -1, -1},
		{-1, 1, -1, -1},
		{-1, -1, 1, -1},
		{-1, -1, -1, 1},
	})
	require.NoError(t, err)

	for _, strategy := range strategies {
		e := newEngine(t, table, strategy)
		_, err := e.Fill("ACGN", "ACGT")
		var lookupErr *scoring.LookupError
		require.ErrorAs(t, err, &lookupErr)
		assert.Equal(t, byte('N'), lookupErr.A)
	}
}

func TestMatrixInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 50; n++ {
		s1 := randomDNA(rng, rng.Intn(12))
		s2 := randomDNA(rng, rng.Intn(12))
		e := newEngine(t, identity(1+rng.Intn(3), -rng.Intn(3)), Naive)

		m, err := e.Fill(s1, s2)
		require.NoError(t, err)

		for i := 0; i < m.Rows(); i++ {
			for j := 0; j < m.Cols(); j++ {
				c := m.At(i, j)
				require.GreaterOrEqual(t, c.Score, 0)
				if i == 0 || j == 0 {
					require.Equal(t, Cell{}, c)
					continue
				}
				require.Equal(t, c.Score == 0, c.Move.IsRestart(), "cell (%d, %d)", i, j)
				switch c.Move.Kind {
				case MoveUp:
					require.LessOrEqual(t, c.Move.Distance, i)
					require.Positive(t, c.Move.Distance)
				case MoveLeft:
					require.LessOrEqual(t, c.Move.Distance, j)
					require.Positive(t, c.Move.Distance)
				}
			}
		}
	}
}

func TestStrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 0; n < 300; n++ {
		s1 := randomDNA(rng, rng.Intn(15))
		s2 := randomDNA(rng, rng.Intn(15))
		model := identity(1+rng.Intn(4), -rng.Intn(5))
		gap := scoring.Gap{Open: -rng.Intn(6), Extend: -rng.Intn(4)}

		naive, err := NewEngine(model, Config{Gap: gap, Strategy: Naive})
		require.NoError(t, err)
		gotoh, err := NewEngine(model, Config{Gap: gap, Strategy: Gotoh})
		require.NoError(t, err)

		m1, err := naive.Fill(s1, s2)
		require.NoError(t, err)
		m2, err := gotoh.Fill(s1, s2)
		require.NoError(t, err)

		require.Equal(t, m1, m2, "%q vs %q with %v %v", s1, s2, model, gap)
		require.Equal(t, Traceback(m1, s1, s2), Traceback(m2, s1, s2))
	}
}

func TestAlignIsDeterministic(t *testing.T) {
	e := newEngine(t, identity(3, -3), Naive)
	first, err := e.Align("TGTTACGG", "GGTTGACTA")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := e.Align("TGTTACGG", "GGTTGACTA")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "-", Move{}.String())
	assert.Equal(t, "diag", Diagonal().String())
	assert.Equal(t, "up3", Up(3).String())
	assert.Equal(t, "left1", Left(1).String())
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, Naive, s)

	s, err = ParseStrategy("GOTOH")
	require.NoError(t, err)
	assert.Equal(t, Gotoh, s)

	_, err = ParseStrategy("banded")
	assert.Error(t, err)
}

func TestNewEngineErrors(t *testing.T) {
	_, err := NewEngine(nil, DefaultConfig())
	assert.Error(t, err)

	_, err = NewEngine(identity(1, -1), Config{Strategy: Strategy(9)})
	assert.Error(t, err)
}

func TestScoreOnly(t *testing.T) {
	e := newEngine(t, identity(3, -3), Gotoh)
	score, err := e.ScoreOnly(context.Background(), "TGTTACGG", "GGTTGACTA")
	require.NoError(t, err)
	assert.Equal(t, 13, score)
}

func TestFillContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, strategy := range strategies {
		t.Run(strategy.String(), func(t *testing.T) {
			e := newEngine(t, identity(1, -1), strategy)
			_, err := e.FillContext(ctx, "ACGTACGT", "ACGT")
			assert.ErrorIs(t, err, context.Canceled)

			_, err = e.ScoreOnly(ctx, "ACGTACGT", "ACGT")
			assert.ErrorIs(t, err, context.Canceled)

			// Nothing to fill, so nothing to cancel.
			m, err := e.FillContext(ctx, "", "ACGT")
			require.NoError(t, err)
			assert.Equal(t, 1, m.Rows())
		})
	}
}

// With a zero extension penalty every gap length costs the same, so the
// move must record the shortest one.
func TestGapLengthTieKeepsShortest(t *testing.T) {
	cfg := func(strategy Strategy) Config {
		return Config{Gap: scoring.Gap{Open: -2, Extend: 0}, Strategy: strategy}
	}

	for _, strategy := range strategies {
		t.Run(strategy.String(), func(t *testing.T) {
			e, err := NewEngine(identity(3, -3), cfg(strategy))
			require.NoError(t, err)

			// up k=1 from (2,1) and k=2 from (1,1) both give 3-2 = 1.
			m, err := e.Fill("AAC", "A")
			require.NoError(t, err)
			assert.Equal(t, [][]int{{0, 0}, {0, 3}, {0, 3}, {0, 1}}, m.Scores())
			assert.Equal(t, Up(1), m.At(3, 1).Move)

			m, err = e.Fill("A", "AAC")
			require.NoError(t, err)
			assert.Equal(t, [][]int{{0, 0, 0, 0}, {0, 3, 3, 1}}, m.Scores())
			assert.Equal(t, Left(1), m.At(1, 3).Move)
		})
	}
}

func TestTracebackMultiSymbolGap(t *testing.T) {
	tests := []struct {
		seq1, seq2 string
		gap        Move
		at         [2]int
		lines      [3]string
		cigar      string
	}{
		{"ACGTTTTACGT", "ACGTACGT", Up(3), [2]int{6, 3},
			[3]string{"(ACGTTTTACGT)", " |||   ||||| ", "(ACG---TACGT)"}, "3M3D5M"},
		{"ACGTACGT", "ACGTTTTACGT", Left(3), [2]int{3, 6},
			[3]string{"(ACG---TACGT)", " |||   ||||| ", "(ACGTTTTACGT)"}, "3M3I5M"},
	}

	for _, strategy := range strategies {
		for _, tt := range tests {
			t.Run(strategy.String()+"/"+tt.seq1, func(t *testing.T) {
				e := newEngine(t, identity(3, -3), strategy)
				m, err := e.Fill(tt.seq1, tt.seq2)
				require.NoError(t, err)
				assert.Equal(t, tt.gap, m.At(tt.at[0], tt.at[1]).Move)

				a := Traceback(m, tt.seq1, tt.seq2)
				assert.Equal(t, 20, a.Score)
				assert.Equal(t, tt.lines, a.Lines())
				assert.Equal(t, tt.cigar, a.ToCIGAR())
				assert.Equal(t, 0, a.Start1)
				assert.Equal(t, 0, a.Start2)
				assert.Equal(t, len(tt.seq1), a.End1)
				assert.Equal(t, len(tt.seq2), a.End2)
				assert.Equal(t, 1, a.GapOpenings())
			})
		}
	}
}

func TestAlignmentCIGAR(t *testing.T) {
	tests := []struct {
		name     string
		aligned1 string
		aligned2 string
		want     string
	}{
		{"all match", "ATGC", "ATGC", "4M"},
		{"with mismatch", "ATGC", "ATGA", "3M1X"},
		{"with gap seq1", "AT-GC", "ATGGC", "2M1I2M"},
		{"with gap seq2", "ATGGC", "AT-GC", "2M1D2M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Alignment{AlignedSeq1: tt.aligned1, AlignedSeq2: tt.aligned2}
			assert.Equal(t, tt.want, a.ToCIGAR())
		})
	}
}

func TestGapOpenings(t *testing.T) {
	tests := []struct {
		name     string
		aligned1 string
		aligned2 string
		want     int
	}{
		{"no gaps", "ATGC", "ATGC", 0},
		{"one gap", "AT-GC", "ATGGC", 1},
		{"two gaps same seq", "AT--GC", "ATGGGC", 1},
		{"two gaps diff seq", "AT-GC-", "ATGG-C", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Alignment{AlignedSeq1: tt.aligned1, AlignedSeq2: tt.aligned2}
			assert.Equal(t, tt.want, a.GapOpenings())
		})
	}
}

func TestAlignAgainstMultiple(t *testing.T) {
	e := newEngine(t, identity(2, -1), Naive)
	query, _ := sequence.New("ATGCATGC")

	var targets []*sequence.Sequence
	for _, s := range []string{"GCTAGCTA", "ATGCATGC", "AAAAAAAA", "ATGCATGC"} {
		target, err := sequence.New(s)
		require.NoError(t, err)
		targets = append(targets, target)
	}

	all, err := AlignAgainstMultiple(e, query, targets)
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, 16, all[1].Alignment.Score)

	for i, r := range all {
		assert.Equal(t, i, r.Index)
	}
	assert.Equal(t, all[1].Alignment.Score, all[3].Alignment.Score)

	_, err = AlignAgainstMultiple(e, query, nil)
	assert.Error(t, err)
}

func randomDNA(rng *rand.Rand, n int) string {
	const bases = "ACGT"
	b := make([]byte, n)
	for i := range b {
		b[i] = bases[rng.Intn(len(bases))]
	}
	return string(b)
}

func benchmarkFill(b *testing.B, strategy Strategy) {
	s1 := strings.Repeat("ACGT", 50)
	s2 := strings.Repeat("AGCT", 50)
	e := newEngine(b, identity(2, -1), strategy)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.Fill(s1, s2)
	}
}

func BenchmarkFillNaive(b *testing.B) { benchmarkFill(b, Naive) }

func BenchmarkFillGotoh(b *testing.B) { benchmarkFill(b, Gotoh) }
