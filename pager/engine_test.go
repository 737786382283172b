package pager

import (
	"context"
	"strings"
	"testing"

	"github.com/ngrs/typeset/record/linebreak"
)

func newTestEngine() *Engine {
	return NewEngine(DefaultGeometry, &linebreak.FakeBreaker{}, nil, PageEmitOptions{})
}

func runEngine(t *testing.T, content string) (pages string, contents string) {
	t.Helper()
	e := newTestEngine()
	var pagesOut, contentsOut strings.Builder
	if err := e.Run(context.Background(), strings.NewReader(content), &pagesOut, &contentsOut); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return pagesOut.String(), contentsOut.String()
}

func TestEmptyInputEmitsZeroPages(t *testing.T) {
	pages, _ := runEngine(t, "")
	if pages != "" {
		t.Fatalf("expected no pages, got %q", pages)
	}
}

func TestSingleBoxNoBreakOnePage(t *testing.T) {
	content := "box 10\nSTART\nhello\nEND\n"
	pages, _ := runEngine(t, content)
	if strings.Count(pages, "START PAGE") != 1 {
		t.Fatalf("expected exactly one page, got %q", pages)
	}
	// default geometry: 842 - 125 - 10 = 707
	if !strings.Contains(pages, "MOVE 102 707") {
		t.Fatalf("expected box placed at y=707, got %q", pages)
	}
}

func TestLeadingGlueDiscardedFromPlacement(t *testing.T) {
	content := "glue 100\nbox 10\nSTART\nhello\nEND\n"
	pages, _ := runEngine(t, content)
	if !strings.Contains(pages, "MOVE 102 707") {
		t.Fatalf("leading glue should not shift box placement, got %q", pages)
	}
}

func TestOversizedSingleBoxOnEmptyPage(t *testing.T) {
	content := "box 1000\nSTART\nbig\nEND\nopt_break\n"
	pages, _ := runEngine(t, content)
	if strings.Count(pages, "START PAGE") != 1 {
		t.Fatalf("expected exactly one page for oversized content, got %q", pages)
	}
}

func TestPageBudgetRespectedExceptOversizedBatch(t *testing.T) {
	// Two boxes of height 400 each exceed the 592 content budget
	// (842 - 125*2), so the second box must overflow to a new page.
	content := "box 400\nSTART\na\nEND\nopt_break\nbox 400\nSTART\nb\nEND\nopt_break\n"
	pages, _ := runEngine(t, content)
	if strings.Count(pages, "START PAGE") != 2 {
		t.Fatalf("expected two pages from overflow, got %q", pages)
	}
}

func TestMarkAttachesToPageAtBreakBoundary(t *testing.T) {
	content := "mark \"intro\"\nbox 10\nSTART\na\nEND\nopt_break\nmark \"next\"\nbox 10\nSTART\nb\nEND\nopt_break\n"
	e := newTestEngine()
	var pagesOut, contentsOut strings.Builder
	if err := e.Run(context.Background(), strings.NewReader(content), &pagesOut, &contentsOut); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	got := contentsOut.String()
	if !strings.Contains(got, `"intro" "1"`) {
		t.Fatalf("expected intro mark on page 1, got %q", got)
	}
	if !strings.Contains(got, `"next" "1"`) {
		t.Fatalf("expected next mark on page 1 (same commit boundary), got %q", got)
	}
}

func TestMarkOnSeparatePagesAfterNewPage(t *testing.T) {
	content := "mark \"a\"\nbox 10\nSTART\nx\nEND\nnew_page\nmark \"b\"\nbox 10\nSTART\ny\nEND\nopt_break\n"
	_, contents := runEngine(t, content)
	if !strings.Contains(contents, `"a" "1"`) || !strings.Contains(contents, `"b" "2"`) {
		t.Fatalf("expected marks on separate pages, got %q", contents)
	}
}

func TestPageNumbersAreMonotone(t *testing.T) {
	content := "box 400\nSTART\na\nEND\nnew_page\nbox 400\nSTART\nb\nEND\nnew_page\nbox 400\nSTART\nc\nEND\nopt_break\n"
	e := newTestEngine()
	var pagesOut, contentsOut strings.Builder
	if err := e.Run(context.Background(), strings.NewReader(content), &pagesOut, &contentsOut); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	want := []string{"1", "2", "3"}
	for i, p := range e.pages {
		if p.Number != want[i] {
			t.Fatalf("page %d has number %q, want %q", i, p.Number, want[i])
		}
	}
}

func TestNewPageForcesCloseEvenWithoutOverflow(t *testing.T) {
	content := "box 10\nSTART\na\nEND\nnew_page\nbox 10\nSTART\nb\nEND\nopt_break\n"
	pages, _ := runEngine(t, content)
	if strings.Count(pages, "START PAGE") != 2 {
		t.Fatalf("expected new_page to force a second page, got %q", pages)
	}
}

func TestUnknownFlowWarnsAndKeepsCurrent(t *testing.T) {
	content := "flow bogus\nbox 10\nSTART\na\nEND\n"
	pages, _ := runEngine(t, content)
	if strings.Count(pages, "START PAGE") != 1 {
		t.Fatalf("expected box still placed on normal flow, got %q", pages)
	}
}

func TestMalformedGraphicIsFatal(t *testing.T) {
	e := newTestEngine()
	var pagesOut, contentsOut strings.Builder
	err := e.Run(context.Background(), strings.NewReader("box 10\nno start here\n"), &pagesOut, &contentsOut)
	if err == nil {
		t.Fatal("expected error for malformed graphic")
	}
}

func TestHeaderAndPageNumberGraphics(t *testing.T) {
	e := NewEngine(DefaultGeometry, &linebreak.FakeBreaker{}, nil, PageEmitOptions{
		ShowPageNumbers: true,
		HeaderText:      "My Document",
	})
	var pagesOut, contentsOut strings.Builder
	content := "box 10\nSTART\na\nEND\nopt_break\n"
	if err := e.Run(context.Background(), strings.NewReader(content), &pagesOut, &contentsOut); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(pagesOut.String(), "STRING \"1\"") {
		t.Fatalf("expected page number graphic, got %q", pagesOut.String())
	}
	if !strings.Contains(pagesOut.String(), "STRING \"My Document\"") {
		t.Fatalf("expected header graphic, got %q", pagesOut.String())
	}
}
