package record

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// MalformedGraphicError is returned when a graphic literal is missing its
// opening START or runs off the end of input before a matching END. Per
// spec §7 this is fatal: the owning stage aborts with exit code 1.
type MalformedGraphicError struct {
	Reason string
}

func (e *MalformedGraphicError) Error() string {
	return "malformed graphic: " + e.Reason
}

// Graphic is an arbitrarily nested START…END-delimited block of opaque
// bytes carried verbatim through the pipeline. Raw holds every non-blank
// line of the block, including the opening START and closing END lines,
// as read (NFC-normalized; blank lines are skipped).
type Graphic struct {
	Raw []byte
}

// isBoundary reports whether line's first field equals token, tolerating
// both the bare and quoted spelling (e.g. START and "START"). Per spec
// §9, this tolerance is intentional rather than an artefact of the
// original implementation: a graphic that was itself captured and
// re-quoted by an earlier stage still nests correctly.
func isBoundary(line, token string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	first := fields[0]
	return first == token || first == `"`+token+`"`
}

func isStart(line string) bool { return isBoundary(line, "START") }
func isEnd(line string) bool   { return isBoundary(line, "END") }

// ReadGraphic reads one balanced START…END subtree from r. Nesting is
// counted by token equality of each line's first field against
// START/"START" (incrementing depth) and END/"END" (decrementing it).
// After a successful read, r's cursor is positioned on the line
// immediately following the matching END (spec §8 property 5).
func ReadGraphic(r *bufio.Reader) (Graphic, error) {
	var b strings.Builder

	line, err := nextLine(r)
	if err != nil || !isStart(line) {
		return Graphic{}, &MalformedGraphicError{Reason: "expected START at beginning of graphic"}
	}
	b.WriteString(line)
	depth := 1

	for {
		line, err := nextLine(r)
		if err != nil {
			return Graphic{}, &MalformedGraphicError{Reason: "graphic was not ended"}
		}
		b.WriteString(line)
		switch {
		case isStart(line):
			depth++
		case isEnd(line):
			depth--
			if depth == 0 {
				return Graphic{Raw: []byte(b.String())}, nil
			}
		}
	}
}

// WriteGraphic writes a graphic's bytes verbatim; they were already
// well-formed records when captured, so no re-escaping happens here.
func WriteGraphic(w io.Writer, g Graphic) error {
	_, err := w.Write(g.Raw)
	return err
}

// InnerGraphic strips the box/opt_break framing lines that a line-break
// collaborator wraps around a laid-out single-line text spec, leaving
// just the graphic literal itself. Used when generating header and
// page-number graphics (spec §4.4 "Page emission").
func InnerGraphic(content string) (Graphic, error) {
	r := bufio.NewReader(strings.NewReader(content))
	for {
		line, err := nextLine(r)
		if err != nil {
			return Graphic{}, fmt.Errorf("no graphic literal found in collaborator output")
		}
		if isStart(line) {
			var b strings.Builder
			b.WriteString(line)
			depth := 1
			for depth > 0 {
				inner, err := nextLine(r)
				if err != nil {
					return Graphic{}, &MalformedGraphicError{Reason: "graphic was not ended"}
				}
				b.WriteString(inner)
				switch {
				case isStart(inner):
					depth++
				case isEnd(inner):
					depth--
				}
			}
			return Graphic{Raw: []byte(b.String())}, nil
		}
		// skip box/opt_break/other framing lines
	}
}
