// Package config holds the run configuration shared by the CLI and server.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aria-lang/swaffine-go/internal/alignment"
	"github.com/aria-lang/swaffine-go/internal/scoring"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Server defaults.
const (
	DefaultHost              = "localhost"
	DefaultPort              = 8080
	DefaultMaxSequenceLength = 2000
	DefaultMaxNaiveLength    = 300
)

// Config is the run configuration. Keys absent from a YAML file keep
// their defaults.
type Config struct {
	Input     string `yaml:"input"`
	Score     string `yaml:"score"`
	Table     string `yaml:"table"`
	OpenGap   int    `yaml:"open_gap"`
	ExtGap    int    `yaml:"ext_gap"`
	Strategy  string `yaml:"strategy"`
	ShowMoves bool   `yaml:"show_moves"`
	Format    string `yaml:"format"`

	Server Server `yaml:"server"`
}

// Server configures the HTTP API.
type Server struct {
	Host              string `yaml:"host"`
	Port              int    `yaml:"port"`
	MaxSequenceLength int    `yaml:"max_sequence_length"`
	MaxNaiveLength    int    `yaml:"max_naive_length"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		OpenGap:  scoring.DefaultOpenGap,
		ExtGap:   scoring.DefaultExtGap,
		Strategy: alignment.Naive.String(),
		Format:   FormatText,
		Server: Server{
			Host:              DefaultHost,
			Port:              DefaultPort,
			MaxSequenceLength: DefaultMaxSequenceLength,
			MaxNaiveLength:    DefaultMaxNaiveLength,
		},
	}
}

// Load reads a YAML configuration file on top of the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults. Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the configuration for values the aligner cannot use.
func (c Config) Validate() error {
	if _, err := alignment.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	switch strings.ToLower(c.Format) {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q (want text or json)", c.Format)
	}
	if c.Score != "" && c.Table != "" {
		return fmt.Errorf("score file and built-in table are mutually exclusive")
	}
	if c.Table != "" {
		if _, err := scoring.Builtin(c.Table); err != nil {
			return err
		}
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	if c.Server.MaxSequenceLength < 0 {
		return fmt.Errorf("max_sequence_length must be >= 0")
	}
	if c.Server.MaxNaiveLength < 0 {
		return fmt.Errorf("max_naive_length must be >= 0")
	}
	return nil
}

// Gap returns the configured gap model.
func (c Config) Gap() scoring.Gap {
	return scoring.Gap{Open: c.OpenGap, Extend: c.ExtGap}
}

// Engine returns the engine configuration.
func (c Config) Engine() (alignment.Config, error) {
	strategy, err := alignment.ParseStrategy(c.Strategy)
	if err != nil {
		return alignment.Config{}, err
	}
	return alignment.Config{Gap: c.Gap(), Strategy: strategy}, nil
}
