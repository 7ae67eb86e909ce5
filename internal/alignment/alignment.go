package alignment

import (
	"fmt"
	"strings"
)

// Alignment is the best local alignment of two sequences.
//
// Line1, Match and Line2 are the display lines: the full sequences with the
// aligned region wrapped in parentheses and a '|' under every identical
// pair. AlignedSeq1, AlignedSeq2 and Markers hold just the aligned region.
// Coordinates are 0-based and half-open: the region covers
// seq1[Start1:End1] and seq2[Start2:End2].
//
// The zero value is the empty alignment returned when no positive-scoring
// local alignment exists.
type Alignment struct {
	Line1 string
	Match string
	Line2 string

	AlignedSeq1 string
	AlignedSeq2 string
	Markers     string

	Score    int
	Start1   int
	End1     int
	Start2   int
	End2     int
	Identity float64
}

// Empty reports whether no local alignment was found.
func (a *Alignment) Empty() bool {
	return a.Score == 0 && len(a.AlignedSeq1) == 0
}

// calculateIdentity calculates the fraction of identical aligned columns.
func (a *Alignment) calculateIdentity() float64 {
	if len(a.AlignedSeq1) == 0 {
		return 0.0
	}
	return float64(a.MatchCount()) / float64(len(a.AlignedSeq1))
}

// Length returns the number of alignment columns.
func (a *Alignment) Length() int {
	return len(a.AlignedSeq1)
}

// MatchCount returns the number of identical aligned pairs.
func (a *Alignment) MatchCount() int {
	count := 0
	for i := 0; i < len(a.AlignedSeq1); i++ {
		if a.AlignedSeq1[i] == a.AlignedSeq2[i] && a.AlignedSeq1[i] != '-' {
			count++
		}
	}
	return count
}

// MismatchCount returns the number of non-identical aligned pairs.
func (a *Alignment) MismatchCount() int {
	count := 0
	for i := 0; i < len(a.AlignedSeq1); i++ {
		if a.AlignedSeq1[i] != a.AlignedSeq2[i] &&
			a.AlignedSeq1[i] != '-' && a.AlignedSeq2[i] != '-' {
			count++
		}
	}
	return count
}

// GapsSeq1 returns the number of gap columns in sequence 1.
func (a *Alignment) GapsSeq1() int {
	return strings.Count(a.AlignedSeq1, "-")
}

// GapsSeq2 returns the number of gap columns in sequence 2.
func (a *Alignment) GapsSeq2() int {
	return strings.Count(a.AlignedSeq2, "-")
}

// TotalGaps returns the total number of gap columns.
func (a *Alignment) TotalGaps() int {
	return a.GapsSeq1() + a.GapsSeq2()
}

// GapOpenings counts the number of gap openings.
func (a *Alignment) GapOpenings() int {
	openings := 0
	inGap1, inGap2 := false, false

	for i := 0; i < len(a.AlignedSeq1); i++ {
		if a.AlignedSeq1[i] == '-' && !inGap1 {
			openings++
			inGap1 = true
		} else if a.AlignedSeq1[i] != '-' {
			inGap1 = false
		}

		if a.AlignedSeq2[i] == '-' && !inGap2 {
			openings++
			inGap2 = true
		} else if a.AlignedSeq2[i] != '-' {
			inGap2 = false
		}
	}

	return openings
}

// ToCIGAR generates a CIGAR string for the aligned region, using sequence 1
// as the reference: I for gaps in sequence 1, D for gaps in sequence 2.
func (a *Alignment) ToCIGAR() string {
	if len(a.AlignedSeq1) == 0 {
		return ""
	}

	var cigar strings.Builder
	currentOp := byte(0)
	count := 0

	for i := 0; i < len(a.AlignedSeq1); i++ {
		var op byte
		if a.AlignedSeq1[i] == '-' {
			op = 'I'
		} else if a.AlignedSeq2[i] == '-' {
			op = 'D'
		} else if a.AlignedSeq1[i] == a.AlignedSeq2[i] {
			op = 'M'
		} else {
			op = 'X'
		}

		if op == currentOp {
			count++
		} else {
			if count > 0 {
				fmt.Fprintf(&cigar, "%d%c", count, currentOp)
			}
			currentOp = op
			count = 1
		}
	}

	if count > 0 {
		fmt.Fprintf(&cigar, "%d%c", count, currentOp)
	}

	return cigar.String()
}

// Lines returns the three display lines.
func (a *Alignment) Lines() [3]string {
	return [3]string{a.Line1, a.Match, a.Line2}
}

// Format returns the display lines followed by the summary statistics.
func (a *Alignment) Format() string {
	return fmt.Sprintf("%s\n%s\n%s\nScore: %d\nIdentity: %.1f%%\nGap openings: %d\nCIGAR: %s",
		a.Line1, a.Match, a.Line2, a.Score, a.Identity*100, a.GapOpenings(), a.ToCIGAR())
}

func (a *Alignment) String() string {
	return fmt.Sprintf("Alignment { score: %d, identity: %.1f%%, length: %d }",
		a.Score, a.Identity*100, a.Length())
}
