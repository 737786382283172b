package markup

import (
	"context"
	"fmt"
	"strings"

	"github.com/ngrs/typeset/record/linebreak"
)

// fontMode tracks which inline emphasis, if any, is currently open on
// the main stream, mirroring the three-state toggle of the source
// markup (Regular / Bold / Italic).
type fontMode int

const (
	fontRegular fontMode = iota
	fontBold
	fontItalic
)

// MainStream is the top-level TextStream for a document body: it knows
// how to read a footnote line, a header line, or a regular line of
// words with inline emphasis, and owns a second TextStream-spawning
// recipe for laying out each footnote at its own width/align/size.
type MainStream struct {
	*TextStream

	FootnoteWidth int
	FootnoteAlign linebreak.Aligner
	FootnoteSize  int

	FootnoteLineSpacing      int
	FootnoteParagraphSpacing int

	font fontMode
}

// NewMainStream constructs a MainStream already primed with its base
// Regular font, ready to consume lines via ReadLine. Footnote width and
// align come from the arguments; footnote size and spacings default to
// baseSize, and callers that parsed distinct footnote flags overwrite
// those fields directly before use.
func NewMainStream(width, footnoteWidth, baseSize int, align, footnoteAlign linebreak.Aligner) *MainStream {
	m := &MainStream{
		TextStream:               NewTextStream(width, baseSize, align),
		FootnoteWidth:            footnoteWidth,
		FootnoteAlign:            footnoteAlign,
		FootnoteSize:             baseSize,
		FootnoteLineSpacing:      baseSize,
		FootnoteParagraphSpacing: baseSize,
		font:                     fontRegular,
	}
	m.SetFont("Regular", baseSize)
	return m
}

// footnoteMarker brackets a footnote's visible symbol, e.g. "1" becomes
// "[1]". original_source pins this exact text; spec.md is silent on it.
func footnoteMarker(symbol string) string {
	return "[" + symbol + "]"
}

// readFootnote lays out a dedicated footnote TextStream — a Regular
// symbol followed by Italic body words — at the footnote width/align/
// size, brackets it with flow markers, and inserts it into the main
// stream at the caret's position (spec §4.3 "Footnote line").
func (m *MainStream) readFootnote(ctx context.Context, breaker linebreak.Breaker, symbol, text string) error {
	fn := NewTextStream(m.FootnoteWidth, m.FootnoteSize, m.FootnoteAlign)
	fn.LineSpacing = m.FootnoteLineSpacing
	fn.ParagraphSpacing = m.FootnoteParagraphSpacing
	fn.SetFont("Regular", fn.BaseSize)
	fn.AddWord(symbol)
	fn.SetFont("Italic", fn.BaseSize)
	fn.ReadWords(text)

	content, err := fn.ToContent(ctx, breaker)
	if err != nil {
		return err
	}
	content = fmt.Sprintf("flow footnote\n%sglue %d\nflow normal\n", content, m.FootnoteParagraphSpacing)
	m.InsertContent(content)
	return nil
}

// ReadLine dispatches one line of markup source to the footnote,
// header, or regular-word handling, per spec §4.3.
func (m *MainStream) ReadLine(ctx context.Context, breaker linebreak.Breaker, line string) error {
	if len(line) == 0 {
		m.EndParagraph()
		return nil
	}
	switch line[0] {
	case '^':
		return m.readFootnoteLine(ctx, breaker, line)
	case '#':
		return m.readHeaderLine(ctx, breaker, line)
	default:
		m.readRegularLine(line)
		return nil
	}
}

// readFootnoteLine splits a "^<symbol> <text>" line after the caret,
// maximum one split, per original_source's line[1:].split(maxsplit=1)
// (which, like this, skips any leading whitespace before the symbol).
// A line with only a symbol and no body text is silently dropped.
func (m *MainStream) readFootnoteLine(ctx context.Context, breaker linebreak.Breaker, line string) error {
	body := strings.TrimLeft(line[1:], " \t")
	i := strings.IndexAny(body, " \t")
	if i < 0 {
		return nil
	}
	symbol := body[:i]
	text := strings.TrimLeft(body[i:], " \t")
	if symbol == "" || text == "" {
		return nil
	}
	marker := footnoteMarker(symbol)
	m.AddWord(marker)
	return m.readFootnote(ctx, breaker, marker, text)
}

// readHeaderLine counts leading '#' runes for the header level (clamped
// to [1,4]), computes the header's font size, and lays the remaining
// words out as their own paragraph before restoring the base font.
func (m *MainStream) readHeaderLine(ctx context.Context, breaker linebreak.Breaker, line string) error {
	rest := line
	level := 0
	for len(rest) > 0 && rest[0] == '#' {
		rest = rest[1:]
		level++
	}
	if level < 1 {
		level = 1
	}
	if level > 4 {
		level = 4
	}

	size := headerFontSize(m.BaseSize, level)
	m.EndParagraph()
	m.SetFont("Regular", size)
	m.ReadWords(rest)
	m.SetFont("Regular", m.BaseSize)
	m.EndParagraph()
	m.font = fontRegular
	return nil
}

// readRegularLine splits a line into words, toggling Bold/Italic
// emphasis on a leading '*'/'_' and closing it again on the matching
// trailing marker, exactly as original_source's read_line body.
func (m *MainStream) readRegularLine(line string) {
	words := strings.Fields(line)
	for _, word := range words {
		if len(word) > 1 && m.font == fontRegular && (word[0] == '*' || word[0] == '_') &&
			word != "**" && word != "__" && m.inParagraph {
			// The break before an emphasised word precedes its font switch.
			m.closeString()
			fmt.Fprintf(&m.text, "OPTBREAK \" \" \"\" %d\n", m.LineSpacing)
			m.inParagraph = false
		}
		if len(word) > 0 && word[0] == '*' && m.font == fontRegular {
			m.SetFont("Bold", m.BaseSize)
			word = word[1:]
			m.font = fontBold
		} else if len(word) > 0 && word[0] == '_' && m.font == fontRegular {
			m.SetFont("Italic", m.BaseSize)
			word = word[1:]
			m.font = fontItalic
		}
		if len(word) == 0 {
			continue
		}
		if word[len(word)-1] == '*' && m.font == fontBold {
			word = word[:len(word)-1]
			m.AddWord(word)
			m.SetFont("Regular", m.BaseSize)
			m.font = fontRegular
		} else if word[len(word)-1] == '_' && m.font == fontItalic {
			word = word[:len(word)-1]
			m.AddWord(word)
			m.SetFont("Regular", m.BaseSize)
			m.font = fontRegular
		} else {
			m.AddWord(word)
		}
	}
	if len(words) == 0 {
		m.EndParagraph()
	}
}
