package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/biogo/biogo/align/matrix"
	"github.com/biogo/biogo/alphabet"
)

// proteinLabels is the symbol order used for the built-in tables.
const proteinLabels = "ARNDCQEGHILKMFPSTWYVBZX*"

var builtinMatrices = map[string][][]int{
	"blosum45": matrix.BLOSUM45,
	"blosum62": matrix.BLOSUM62,
}

// BuiltinNames returns the names accepted by Builtin, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtinMatrices))
	for name := range builtinMatrices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin returns a named protein substitution table. Names are matched
// case-insensitively.
func Builtin(name string) (*Table, error) {
	key := strings.ToLower(name)
	m, ok := builtinMatrices[key]
	if !ok {
		return nil, fmt.Errorf("unknown substitution table %q (have %s)",
			name, strings.Join(BuiltinNames(), ", "))
	}

	t, err := fromProteinMatrix(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	t.Name = key
	return t, nil
}

// fromProteinMatrix projects a matrix indexed by the protein alphabet onto
// a Table labelled with upper-case amino acid codes.
func fromProteinMatrix(m [][]int) (*Table, error) {
	labels := make([]byte, 0, len(proteinLabels))
	idx := make([]int, 0, len(proteinLabels))
	for i := 0; i < len(proteinLabels); i++ {
		c := proteinLabels[i]
		k := alphabet.Protein.IndexOf(alphabet.Letter(c))
		if k < 0 {
			k = alphabet.Protein.IndexOf(alphabet.Letter(c | 0x20))
		}
		if k < 0 || k >= len(m) {
			continue
		}
		labels = append(labels, c)
		idx = append(idx, k)
	}

	scores := make([][]int, len(labels))
	for r, kr := range idx {
		scores[r] = make([]int, len(labels))
		for c, kc := range idx {
			if kc >= len(m[kr]) {
				return nil, fmt.Errorf("matrix row %d is too short", kr)
			}
			scores[r][c] = m[kr][kc]
		}
	}
	return NewTable(labels, labels, scores)
}
