// Package markup builds text specifications from human-readable markup
// (headers, emphasis, footnotes) and drives the line-break collaborator
// to turn them into content-stream fragments, splicing footnote
// insertions back into the broken output (spec §4.3).
package markup

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/ngrs/typeset/record"
	"github.com/ngrs/typeset/record/linebreak"
)

// TextStream accumulates a text specification destined for the
// line-break collaborator, plus a list of insertions to be spliced back
// into the broken output at the position of each MARK/^<id> pair.
type TextStream struct {
	Width    int
	BaseSize int
	Align    linebreak.Aligner

	// LineSpacing is carried on every OPTBREAK record (spec §3's
	// text-specification grammar); ParagraphSpacing on every BREAK.
	// Both default to BaseSize, matching spec §6's "-p/-P default =
	// respective font size".
	LineSpacing      int
	ParagraphSpacing int

	inParagraph bool
	inString    bool
	text        strings.Builder
	insertions  []string
}

// NewTextStream returns an empty stream targeting the given width,
// base font size, and alignment, with line- and paragraph-spacing
// defaulted to baseSize.
func NewTextStream(width, baseSize int, align linebreak.Aligner) *TextStream {
	return &TextStream{
		Width:            width,
		BaseSize:         baseSize,
		Align:            align,
		LineSpacing:      baseSize,
		ParagraphSpacing: baseSize,
	}
}

// addString appends str to the open STRING field, ASCII-clamping it
// first: the line-break collaborator's stdin contract (spec §4.2) is
// plain ASCII, so any non-ASCII rune is replaced with '?' before it
// ever reaches the text specification.
func (s *TextStream) addString(str string) {
	if !s.inString {
		s.text.WriteString(`STRING "`)
		s.inString = true
	}
	s.text.WriteString(record.StripString(record.AsciiSanitize(str)))
}

func (s *TextStream) closeString() {
	if s.inString {
		s.text.WriteString("\"\n")
		s.inString = false
	}
}

// SetFont closes any open STRING field and emits a FONT record.
func (s *TextStream) SetFont(name string, size int) {
	s.closeString()
	fmt.Fprintf(&s.text, "FONT %s %d\n", name, size)
}

// AddWord appends one word to the current paragraph, emitting an
// optional break point between consecutive words.
func (s *TextStream) AddWord(word string) {
	if len(word) == 0 {
		return
	}
	s.closeString()
	if s.inParagraph {
		fmt.Fprintf(&s.text, "OPTBREAK \" \" \"\" %d\n", s.LineSpacing)
	}
	s.inParagraph = true
	s.addString(word)
}

// EndParagraph closes the current paragraph with a BREAK, a no-op when
// no paragraph is open.
func (s *TextStream) EndParagraph() {
	if s.inParagraph {
		s.closeString()
		fmt.Fprintf(&s.text, "BREAK %d\n", s.ParagraphSpacing)
		s.inParagraph = false
	}
}

// InsertContent records insertion as the next footnote-style fragment
// to be spliced back in after line breaking, and marks its position in
// the text specification with a MARK record.
func (s *TextStream) InsertContent(insertion string) {
	s.closeString()
	mark := len(s.insertions)
	s.insertions = append(s.insertions, insertion)
	fmt.Fprintf(&s.text, "MARK %d\n", mark)
}

// ReadWords splits line into words on Unicode word boundaries (rather
// than a naive whitespace split) and adds each as a word in turn.
func (s *TextStream) ReadWords(line string) {
	for _, w := range wordsOf(line) {
		s.AddWord(w)
	}
}

// ToContent runs the accumulated text specification through breaker and
// splices each recorded insertion back into the line-broken output at
// the ^<id> record it produced, using a structured record scan rather
// than string substitution so an insertion's own bytes can never be
// mistaken for another mark (spec §9 Design Notes, "structured splice").
func (s *TextStream) ToContent(ctx context.Context, breaker linebreak.Breaker) (string, error) {
	s.closeString()
	out, err := breaker.Break(ctx, s.text.String(), s.Width, s.Align)
	if err != nil {
		return "", err
	}
	return spliceInsertions(out, s.insertions)
}

// wordsOf splits line into its Unicode words (UAX #29), dropping
// segments that are pure whitespace, so multi-byte scripts and
// grapheme clusters are never cut in the middle.
func wordsOf(line string) []string {
	var words []string
	state := -1
	for len(line) > 0 {
		word, rest, newState := uniseg.FirstWordInString(line, state)
		state = newState
		line = rest
		if strings.TrimSpace(word) == "" {
			continue
		}
		words = append(words, word)
	}
	return words
}

// spliceInsertions rewrites content, replacing each bare "^<id>" record
// with the raw bytes of insertions[id] and re-emitting every other
// record verbatim (box records carry their graphic payload along, read
// and rewritten as a unit so the scan never desyncs on a nested
// START…END block).
func spliceInsertions(content string, insertions []string) (string, error) {
	var out strings.Builder
	s := record.NewScanner(strings.NewReader(content))
	for {
		rec, err := s.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if len(rec) == 1 {
			if id, ok := markID(rec[0], len(insertions)); ok {
				out.WriteString(insertions[id])
				continue
			}
		}
		if err := record.WriteRecord(&out, []string(rec)...); err != nil {
			return "", err
		}
		if rec.Command() == "box" {
			g, err := record.ReadGraphic(s.Reader())
			if err != nil {
				return "", err
			}
			if err := record.WriteGraphic(&out, g); err != nil {
				return "", err
			}
		}
	}
	return out.String(), nil
}

// markID reports whether field is a "^<id>" mark token with id in
// range [0, n).
func markID(field string, n int) (int, bool) {
	rest, ok := strings.CutPrefix(field, "^")
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(rest)
	if err != nil || id < 0 || id >= n {
		return 0, false
	}
	return id, true
}
