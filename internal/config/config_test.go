package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aria-lang/swaffine-go/internal/alignment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, -2, cfg.OpenGap)
	assert.Equal(t, -1, cfg.ExtGap)
	assert.Equal(t, "naive", cfg.Strategy)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, DefaultMaxNaiveLength, cfg.Server.MaxNaiveLength)
	require.NoError(t, cfg.Validate())

	ec, err := cfg.Engine()
	require.NoError(t, err)
	assert.Equal(t, alignment.DefaultConfig(), ec)
}

func TestParse(t *testing.T) {
	src := `
input: pair.txt
table: blosum62
open_gap: -11
ext_gap: -1
strategy: gotoh
show_moves: true
server:
  port: 9090
  max_naive_length: 100
`
	cfg, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "pair.txt", cfg.Input)
	assert.Equal(t, "blosum62", cfg.Table)
	assert.Equal(t, -11, cfg.OpenGap)
	assert.True(t, cfg.ShowMoves)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 100, cfg.Server.MaxNaiveLength)
	assert.Equal(t, DefaultHost, cfg.Server.Host)
	assert.Equal(t, DefaultMaxSequenceLength, cfg.Server.MaxSequenceLength)

	ec, err := cfg.Engine()
	require.NoError(t, err)
	assert.Equal(t, alignment.Gotoh, ec.Strategy)
	assert.Equal(t, -11, ec.Gap.Open)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown key", "gap_open: -2\n"},
		{"bad strategy", "strategy: banded\n"},
		{"bad format", "format: xml\n"},
		{"unknown table", "table: pam250\n"},
		{"table and score", "table: blosum62\nscore: s.txt\n"},
		{"bad port", "server:\n  port: 70000\n"},
		{"negative naive cap", "server:\n  max_naive_length: -1\n"},
		{"wrong type", "open_gap: minus two\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swalign.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ext_gap: -3\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, -3, cfg.ExtGap)
	assert.Equal(t, -2, cfg.OpenGap)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
