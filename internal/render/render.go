// Package render formats sequences, score matrices and alignments as text.
package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/aria-lang/swaffine-go/internal/alignment"
)

func banner(sb *strings.Builder, title string) {
	rule := strings.Repeat("-", len(title)+2)
	sb.WriteString(rule + "\n|" + title + "|\n" + rule + "\n")
}

// Sequences renders the input sequences section.
func Sequences(seq1, seq2 string) string {
	var sb strings.Builder
	banner(&sb, "Sequences")
	sb.WriteString("sequence1\n" + seq1 + "\n")
	sb.WriteString("sequence2\n" + seq2 + "\n")
	return sb.String()
}

// Matrix renders the score matrix section.
//
// The table is transposed relative to the matrix: sequence 1 runs across the
// header and each printed line is one column j of the matrix, led by
// seq2[j-1]. Cells are tab-separated and every line ends with a tab. With
// moves set, each cell reads "score:move".
func Matrix(seq1, seq2 string, m *alignment.ScoreMatrix, moves bool) string {
	var sb strings.Builder
	banner(&sb, "Score Matrix")
	sb.WriteString(MatrixTable(seq1, seq2, m, moves))
	return sb.String()
}

// MatrixTable renders just the tab-separated matrix without a banner.
func MatrixTable(seq1, seq2 string, m *alignment.ScoreMatrix, moves bool) string {
	var sb strings.Builder
	row := make([]string, 0, m.Rows()+1)

	row = append(row, "", "")
	for i := 0; i < len(seq1); i++ {
		row = append(row, string(seq1[i]))
	}
	writeRow(&sb, row)

	for j := 0; j < m.Cols(); j++ {
		row = row[:0]
		if j == 0 {
			row = append(row, "")
		} else {
			row = append(row, string(seq2[j-1]))
		}
		for i := 0; i < m.Rows(); i++ {
			c := m.At(i, j)
			cell := strconv.Itoa(c.Score)
			if moves {
				cell += ":" + c.Move.String()
			}
			row = append(row, cell)
		}
		writeRow(&sb, row)
	}
	return sb.String()
}

func writeRow(sb *strings.Builder, cells []string) {
	sb.WriteString(strings.Join(cells, "\t"))
	sb.WriteString("\t\n")
}

// Alignment renders the best local alignment section.
func Alignment(a *alignment.Alignment) string {
	var sb strings.Builder
	banner(&sb, "Best Local Alignment")
	sb.WriteString("Alignment Score:" + strconv.Itoa(a.Score) + "\n")
	sb.WriteString("Alignment Results:\n")
	sb.WriteString(a.Line1 + "\n" + a.Match + "\n" + a.Line2 + "\n")
	return sb.String()
}

// Report renders all three sections.
func Report(seq1, seq2 string, m *alignment.ScoreMatrix, a *alignment.Alignment, moves bool) string {
	return Sequences(seq1, seq2) + Matrix(seq1, seq2, m, moves) + Alignment(a)
}

// WriteReport writes Report to w.
func WriteReport(w io.Writer, seq1, seq2 string, m *alignment.ScoreMatrix, a *alignment.Alignment, moves bool) error {
	_, err := io.WriteString(w, Report(seq1, seq2, m, a, moves))
	return err
}
