package markup

import "math"

// headerFontSize scales baseSize exponentially by header level (1 is
// the largest, 4 the smallest), truncating toward zero rather than
// rounding — see DESIGN.md's "Numeric semantics" decision.
func headerFontSize(baseSize, level int) int {
	scale := math.Pow(1.62, float64(3-level))
	return int(float64(baseSize) * scale)
}

// InvalidFlagError reports a malformed or out-of-range command-line
// flag for a markup-reading binary, raised before any I/O begins.
type InvalidFlagError struct {
	Flag   string
	Reason string
}

func (e *InvalidFlagError) Error() string {
	return "invalid flag -" + e.Flag + ": " + e.Reason
}
