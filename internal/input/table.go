package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aria-lang/swaffine-go/internal/scoring"
	"github.com/aria-lang/swaffine-go/internal/sequence"
)

// LoadTable reads a whitespace-delimited substitution table from a file.
func LoadTable(path string) (*scoring.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer file.Close()

	t, err := ParseTable(file, path)
	if err != nil {
		return nil, err
	}
	t.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return t, nil
}

// ParseTable parses a substitution table.
//
// The first non-comment line lists the column symbols. Every following line
// is a row symbol followed by one integer per column. Lines starting with
// '#' are comments. A header that carries a corner label (as wide as the
// body rows) has that label dropped.
func ParseTable(r io.Reader, source string) (*scoring.Table, error) {
	scanner := bufio.NewScanner(r)

	var header []string
	var cols, rows []byte
	var scores [][]int

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)

		if header == nil {
			header = fields
			continue
		}

		if cols == nil {
			if len(header) == len(fields) {
				header = header[1:]
			}
			var err error
			cols, err = symbolLabels(header)
			if err != nil {
				return nil, &ParseError{Source: source, Line: lineNum, Msg: "bad header", Err: err}
			}
		}

		if len(fields)-1 != len(cols) {
			return nil, &ParseError{Source: source, Line: lineNum,
				Msg: fmt.Sprintf("row has %d scores, want %d", len(fields)-1, len(cols))}
		}
		label, err := symbolLabels(fields[:1])
		if err != nil {
			return nil, &ParseError{Source: source, Line: lineNum, Msg: "bad row label", Err: err}
		}

		row := make([]int, len(cols))
		for k, f := range fields[1:] {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, &ParseError{Source: source, Line: lineNum,
					Msg: fmt.Sprintf("score %q in column %q is not an integer", f, cols[k])}
			}
			row[k] = v
		}
		rows = append(rows, label[0])
		scores = append(scores, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, &IOError{Path: source, Err: err}
	}
	if len(rows) == 0 {
		return nil, &ParseError{Source: source, Msg: "table has no score rows"}
	}

	t, err := scoring.NewTable(cols, rows, scores)
	if err != nil {
		return nil, &ParseError{Source: source, Msg: "invalid table", Err: err}
	}
	return t, nil
}

func symbolLabels(fields []string) ([]byte, error) {
	out := make([]byte, len(fields))
	for k, f := range fields {
		if len(f) != 1 || !sequence.IsValidSymbol(f[0]) {
			return nil, fmt.Errorf("label %q is not a single symbol", f)
		}
		out[k] = f[0]
	}
	return out, nil
}
