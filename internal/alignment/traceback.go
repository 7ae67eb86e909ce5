package alignment

import "strings"

// Traceback rebuilds the best local alignment from a filled matrix.
//
// The walk starts at the first maximum in row-major order and follows the
// recorded moves until it reaches a cell scoring 0. The display lines wrap
// the aligned region in "(" and ")" and keep the unaligned head and tail of
// both sequences, padded so the aligned region lines up. A best score of 0
// yields an empty alignment.
func Traceback(m *ScoreMatrix, seq1, seq2 string) *Alignment {
	besti, bestj, best := m.Max()
	if best <= 0 {
		return &Alignment{}
	}

	var seg1, segM, seg2 []string
	i, j := besti, bestj
	for mv := m.At(i, j).Move; m.Score(i, j) != 0 && !mv.IsRestart(); mv = m.At(i, j).Move {
		switch mv.Kind {
		case MoveDiagonal:
			a, b := seq1[i-1], seq2[j-1]
			seg1 = append(seg1, string(a))
			seg2 = append(seg2, string(b))
			if a == b {
				segM = append(segM, "|")
			} else {
				segM = append(segM, " ")
			}
			i--
			j--
		case MoveUp:
			seg1 = append(seg1, seq1[i-mv.Distance:i])
			seg2 = append(seg2, strings.Repeat("-", mv.Distance))
			segM = append(segM, pad(mv.Distance))
			i -= mv.Distance
		case MoveLeft:
			seg1 = append(seg1, strings.Repeat("-", mv.Distance))
			seg2 = append(seg2, seq2[j-mv.Distance:j])
			segM = append(segM, pad(mv.Distance))
			j -= mv.Distance
		}
	}

	a := &Alignment{
		AlignedSeq1: joinReversed(seg1),
		AlignedSeq2: joinReversed(seg2),
		Markers:     joinReversed(segM),
		Score:       best,
		Start1:      i,
		End1:        besti,
		Start2:      j,
		End2:        bestj,
	}
	a.Identity = a.calculateIdentity()

	tail1, tail2 := len(seq1)-besti, len(seq2)-bestj
	head1, head2 := i, j

	a.Line1 = pad(head2-head1) + seq1[:i] + "(" + a.AlignedSeq1 + ")" + pad(tail2-tail1) + seq1[besti:]
	a.Match = pad(max(head1, head2)+1) + a.Markers + pad(max(tail1, tail2)+1)
	a.Line2 = pad(head1-head2) + seq2[:j] + "(" + a.AlignedSeq2 + ")" + pad(tail1-tail2) + seq2[bestj:]
	return a
}

// pad returns n blanks, or nothing when n <= 0.
func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func joinReversed(parts []string) string {
	var sb strings.Builder
	for k := len(parts) - 1; k >= 0; k-- {
		sb.WriteString(parts[k])
	}
	return sb.String()
}
