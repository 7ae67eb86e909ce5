package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aria-lang/swaffine-go/internal/sequence"
)

// maxLineLength bounds a single sequence line.
const maxLineLength = 64 << 20

// Pair is the two sequences to align.
type Pair struct {
	First  *sequence.Sequence
	Second *sequence.Sequence
}

// ReadPair reads a sequence pair from a file.
func ReadPair(path string) (*Pair, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer file.Close()

	return ParsePair(file, path)
}

// ParsePair parses two sequences from r.
//
// The plain format is one sequence per line; only the first two lines are
// read and either may be empty. If the first non-blank line starts with '>'
// the input is parsed as FASTA and its first two records are used.
func ParsePair(r io.Reader, source string) (*Pair, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &IOError{Path: source, Err: err}
	}

	text := string(data)
	if strings.HasPrefix(strings.TrimSpace(text), ">") {
		seqs, err := ParseFASTA(strings.NewReader(text), source)
		if err != nil {
			return nil, err
		}
		if len(seqs) < 2 {
			return nil, &ParseError{Source: source,
				Msg: fmt.Sprintf("expected two FASTA records, found %d", len(seqs))}
		}
		return &Pair{First: seqs[0], Second: seqs[1]}, nil
	}

	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return nil, &ParseError{Source: source, Msg: "expected two sequences, one per line"}
	}

	var seqs [2]*sequence.Sequence
	for k := range seqs {
		seq, err := sequence.WithMetadata(strings.TrimSpace(lines[k]),
			fmt.Sprintf("sequence%d", k+1), "")
		if err != nil {
			return nil, &ParseError{Source: source, Line: k + 1, Msg: "invalid sequence", Err: err}
		}
		seqs[k] = seq
	}
	return &Pair{First: seqs[0], Second: seqs[1]}, nil
}

// ReadFASTA reads sequences from a FASTA file.
func ReadFASTA(path string) ([]*sequence.Sequence, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer file.Close()

	return ParseFASTA(file, path)
}

// ParseFASTA parses FASTA format from a reader.
func ParseFASTA(r io.Reader, source string) ([]*sequence.Sequence, error) {
	sequences := make([]*sequence.Sequence, 0)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	var currentID, currentDesc string
	var currentSymbols strings.Builder
	headerLine := 0

	flushSequence := func() error {
		if currentSymbols.Len() > 0 {
			seq, err := sequence.WithMetadata(currentSymbols.String(), currentID, currentDesc)
			if err != nil {
				return &ParseError{Source: source, Line: headerLine, Msg: "invalid record " + currentID, Err: err}
			}
			sequences = append(sequences, seq)
			currentSymbols.Reset()
		}
		return nil
	}

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if len(line) == 0 {
			continue
		}

		if line[0] == '>' {
			if err := flushSequence(); err != nil {
				return nil, err
			}

			parts := strings.SplitN(line[1:], " ", 2)
			currentID = parts[0]
			if len(parts) > 1 {
				currentDesc = parts[1]
			} else {
				currentDesc = ""
			}
			headerLine = lineNum
		} else {
			if headerLine == 0 {
				return nil, &ParseError{Source: source, Line: lineNum, Msg: "sequence data before first header"}
			}
			currentSymbols.WriteString(line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, &IOError{Path: source, Err: err}
	}

	if err := flushSequence(); err != nil {
		return nil, err
	}

	return sequences, nil
}
