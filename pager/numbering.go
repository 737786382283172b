package pager

// NumberStyle selects how a page's ordinal is rendered when page numbers
// are enabled and drawn in the bottom margin. Page.Number itself, and so
// the contents file, always holds the arabic ordinal. Adapted from
// gotypst's PDF page-label numbering (pdf.NumberingStyle): that code
// picks a style per PDF page-label dictionary entry; here a single style
// applies to the whole document, held in Engine.Opts and applied as each
// page number is drawn, since
// spec §3 only ever calls for "a monotonically-numbering generator"
// without specifying a display style, and Arabic is the scheme every
// spec example uses.
type NumberStyle int

const (
	// Arabic renders 1, 2, 3, ...
	Arabic NumberStyle = iota
	// LowerRoman renders i, ii, iii, ...
	LowerRoman
	// UpperRoman renders I, II, III, ...
	UpperRoman
	// LowerAlpha renders a, b, c, ..., z, aa, ab, ...
	LowerAlpha
	// UpperAlpha renders A, B, C, ..., Z, AA, AB, ...
	UpperAlpha
)

// Format renders n (1-based) according to style.
func (style NumberStyle) Format(n int) string {
	switch style {
	case LowerRoman:
		return roman(n, lowerRomanSymbols)
	case UpperRoman:
		return roman(n, upperRomanSymbols)
	case LowerAlpha:
		return alpha(n, 'a')
	case UpperAlpha:
		return alpha(n, 'A')
	default:
		return arabic(n)
	}
}

func arabic(n int) string {
	if n <= 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

var romanValues = []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
var upperRomanSymbols = []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}
var lowerRomanSymbols = []string{"m", "cm", "d", "cd", "c", "xc", "l", "xl", "x", "ix", "v", "iv", "i"}

func roman(n int, symbols []string) string {
	if n <= 0 || n >= 4000 {
		return arabic(n)
	}
	var out []byte
	for i, v := range romanValues {
		for n >= v {
			out = append(out, symbols[i]...)
			n -= v
		}
	}
	return string(out)
}

// alpha renders a 1-based ordinal as base-26 letters starting at base
// ('a' or 'A'): 1 -> a, 26 -> z, 27 -> aa, and so on.
func alpha(n int, base byte) string {
	if n <= 0 {
		return "0"
	}
	var out []byte
	for n > 0 {
		n--
		out = append([]byte{base + byte(n%26)}, out...)
		n /= 26
	}
	return string(out)
}
