package markup

import (
	"context"
	"strings"
	"testing"

	"github.com/ngrs/typeset/record/linebreak"
)

func TestTextStreamBuildsFontAndStringRecords(t *testing.T) {
	s := NewTextStream(475, 12, linebreak.Left)
	s.SetFont("Regular", 12)
	s.AddWord("Hello")
	s.AddWord("world")
	s.EndParagraph()

	want := "FONT Regular 12\n" +
		`STRING "Hello"` + "\n" +
		`OPTBREAK " " "" 12` + "\n" +
		`STRING "world"` + "\n" +
		"BREAK 12\n"
	if got := s.text.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTextStreamEscapesQuotesInWords(t *testing.T) {
	s := NewTextStream(475, 12, linebreak.Left)
	s.AddWord(`say"hi`)
	if !strings.Contains(s.text.String(), `say\"hi`) {
		t.Fatalf("expected escaped quote, got %q", s.text.String())
	}
}

func TestTextStreamSanitizesNonAsciiWords(t *testing.T) {
	s := NewTextStream(475, 12, linebreak.Left)
	s.AddWord("héllo")
	if strings.Contains(s.text.String(), "é") {
		t.Fatalf("expected non-ASCII rune replaced before reaching STRING, got %q", s.text.String())
	}
	if !strings.Contains(s.text.String(), `STRING "h?llo"`) {
		t.Fatalf("expected ASCII-clamped word, got %q", s.text.String())
	}
}

func TestToContentSplicesInsertionAtMark(t *testing.T) {
	s := NewTextStream(475, 12, linebreak.Left)
	s.SetFont("Regular", 12)
	s.AddWord("before")
	s.InsertContent("flow footnote\nglue 12\nflow normal\n")
	s.AddWord("after")

	out, err := s.ToContent(context.Background(), &linebreak.FakeBreaker{})
	if err != nil {
		t.Fatalf("ToContent: %v", err)
	}
	if !strings.Contains(out, "flow footnote\nglue 12\nflow normal\n") {
		t.Fatalf("expected spliced insertion, got %q", out)
	}
	if strings.Contains(out, "^0") {
		t.Fatalf("mark token leaked into output: %q", out)
	}
}

func TestFootnoteFreeInputLeavesNoMarkTokens(t *testing.T) {
	s := NewTextStream(475, 12, linebreak.Left)
	s.SetFont("Regular", 12)
	s.ReadWords("Hello world, no footnotes here")
	s.EndParagraph()

	out, err := s.ToContent(context.Background(), &linebreak.FakeBreaker{})
	if err != nil {
		t.Fatalf("ToContent: %v", err)
	}
	if strings.Contains(out, "^") {
		t.Fatalf("unexpected mark token in footnote-free output: %q", out)
	}
}
