// Package linebreak implements the core's side of the line-break
// collaborator contract (spec §4.2): a child process performing optimal
// line breaking, invoked as "line_break -<align> -w <width>", fed the
// text specification on stdin, and read back as a content stream on
// stdout. The algorithm itself is out of scope; this package only
// defines the invocation contract and the interface stages depend on.
package linebreak

import "fmt"

// Aligner is one of the four line-break alignment modes the collaborator
// accepts on its command line.
type Aligner int

const (
	Left Aligner = iota
	Right
	Center
	Justified
)

// Flag returns the collaborator's single-letter flag for this alignment.
func (a Aligner) Flag() string {
	switch a {
	case Left:
		return "l"
	case Right:
		return "r"
	case Center:
		return "c"
	case Justified:
		return "j"
	default:
		return "l"
	}
}

// ParseAligner parses one of "l", "r", "c", "j" into an Aligner. Any
// other value is an InvalidAlignError (spec §7, fatal exit 1).
func ParseAligner(s string) (Aligner, error) {
	switch s {
	case "l":
		return Left, nil
	case "r":
		return Right, nil
	case "c":
		return Center, nil
	case "j":
		return Justified, nil
	default:
		return 0, &InvalidAlignError{Value: s}
	}
}

// InvalidAlignError reports an alignment flag outside {l, r, c, j}.
type InvalidAlignError struct {
	Value string
}

func (e *InvalidAlignError) Error() string {
	return fmt.Sprintf("invalid align mode %q, want one of l, r, c, j", e.Value)
}
