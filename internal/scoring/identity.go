package scoring

import (
	"fmt"
	"sort"
	"strings"
)

// Identity scores equal symbols with Match and all other pairs with Mismatch.
// Every symbol pair is defined, so it never returns a LookupError.
type Identity struct {
	Match    int
	Mismatch int
}

// NewIdentity creates an identity model with validation.
func NewIdentity(match, mismatch int) (*Identity, error) {
	if match <= 0 {
		return nil, fmt.Errorf("match score must be positive")
	}
	if mismatch > 0 {
		return nil, fmt.Errorf("mismatch score should be <= 0")
	}
	return &Identity{Match: match, Mismatch: mismatch}, nil
}

// Unit is the +1/-1 identity model.
func Unit() *Identity {
	return &Identity{Match: 1, Mismatch: -1}
}

// DefaultDNA creates the default DNA identity model.
func DefaultDNA() *Identity {
	return &Identity{Match: 2, Mismatch: -1}
}

// BLASTLike creates a BLAST-like nucleotide model.
func BLASTLike() *Identity {
	return &Identity{Match: 1, Mismatch: -3}
}

// Score implements Model.
func (s *Identity) Score(a, b byte) (int, error) {
	if a == b {
		return s.Match, nil
	}
	return s.Mismatch, nil
}

func (s *Identity) String() string {
	return fmt.Sprintf("Identity { match: %d, mismatch: %d }", s.Match, s.Mismatch)
}

var presets = map[string]func() *Identity{
	"unit":  Unit,
	"dna":   DefaultDNA,
	"blast": BLASTLike,
}

// PresetNames returns the names accepted by Preset, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns a named identity model: "unit" (+1/-1), "dna" (+2/-1) or
// "blast" (+1/-3). Names are matched case-insensitively.
func Preset(name string) (*Identity, error) {
	build, ok := presets[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown scoring preset %q (have %s)",
			name, strings.Join(PresetNames(), ", "))
	}
	return build(), nil
}
