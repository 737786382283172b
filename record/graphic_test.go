package record

import (
	"bufio"
	"strings"
	"testing"
)

func TestGraphicReadsExactlyOneBalancedBlock(t *testing.T) {
	input := "START\nhello\nEND\nbox 5\n"
	r := bufio.NewReader(strings.NewReader(input))
	g, err := ReadGraphic(r)
	if err != nil {
		t.Fatalf("ReadGraphic failed: %v", err)
	}
	if string(g.Raw) != "START\nhello\nEND\n" {
		t.Fatalf("got %q", g.Raw)
	}
	// cursor should be positioned on the line after END
	rec, err := Parse(r)
	if err != nil {
		t.Fatalf("Parse after graphic failed: %v", err)
	}
	if rec.Command() != "box" {
		t.Fatalf("expected box record after graphic, got %v", rec)
	}
}

func TestGraphicNested(t *testing.T) {
	input := "START\nSTART\ninner\nEND\nouter\nEND\n"
	r := bufio.NewReader(strings.NewReader(input))
	g, err := ReadGraphic(r)
	if err != nil {
		t.Fatalf("ReadGraphic failed: %v", err)
	}
	if string(g.Raw) != input {
		t.Fatalf("got %q", g.Raw)
	}
}

func TestGraphicToleratesQuotedStart(t *testing.T) {
	input := `"START"` + "\ncontent\n" + `"END"` + "\n"
	r := bufio.NewReader(strings.NewReader(input))
	g, err := ReadGraphic(r)
	if err != nil {
		t.Fatalf("ReadGraphic failed: %v", err)
	}
	if string(g.Raw) != input {
		t.Fatalf("got %q", g.Raw)
	}
}

func TestGraphicMissingStartIsFatal(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("box 5\nEND\n"))
	_, err := ReadGraphic(r)
	if err == nil {
		t.Fatal("expected error for missing START")
	}
	if _, ok := err.(*MalformedGraphicError); !ok {
		t.Fatalf("expected MalformedGraphicError, got %T", err)
	}
}

func TestGraphicUnterminatedIsFatal(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("START\nhello\n"))
	_, err := ReadGraphic(r)
	if err == nil {
		t.Fatal("expected error for unterminated graphic")
	}
}

func TestInnerGraphicStripsFraming(t *testing.T) {
	content := "box 12\nSTART\nFONT Regular 12\nEND\nopt_break\n"
	g, err := InnerGraphic(content)
	if err != nil {
		t.Fatalf("InnerGraphic failed: %v", err)
	}
	want := "START\nFONT Regular 12\nEND\n"
	if string(g.Raw) != want {
		t.Fatalf("got %q, want %q", g.Raw, want)
	}
}
