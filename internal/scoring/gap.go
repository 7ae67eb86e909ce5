package scoring

import "fmt"

// Default affine gap parameters.
const (
	DefaultOpenGap = -2
	DefaultExtGap  = -1
)

// Gap is the affine gap model. A gap of length k costs Open + Extend*(k-1).
// Both values are normally negative; positive values are accepted and simply
// reward gaps.
type Gap struct {
	Open   int
	Extend int
}

// DefaultGap returns the default gap model (-2, -1).
func DefaultGap() Gap {
	return Gap{Open: DefaultOpenGap, Extend: DefaultExtGap}
}

// Cost returns the score contribution of a gap of length k (k >= 1).
func (g Gap) Cost(k int) int {
	return g.Open + g.Extend*(k-1)
}

func (g Gap) String() string {
	return fmt.Sprintf("Gap { open: %d, extend: %d }", g.Open, g.Extend)
}
