package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestWriteEntryPadsWithDottedLeader(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	if err := writeEntry(w, "Introduction", "1", 20, 12); err != nil {
		t.Fatalf("writeEntry: %v", err)
	}
	w.Flush()
	out := buf.String()

	if !strings.Contains(out, "box 12\n") {
		t.Fatalf("expected box record, got %q", out)
	}
	if !strings.Contains(out, "FONT Monospace 12\n") {
		t.Fatalf("expected monospace font record, got %q", out)
	}
	if !strings.Contains(out, `STRING "Introduction.......1"`) {
		t.Fatalf("expected dotted-leader padded string, got %q", out)
	}
	if !strings.HasSuffix(out, "END\nopt_break\n") {
		t.Fatalf("expected trailing END/opt_break, got %q", out)
	}
}

func TestWriteEntryClampsNegativePadding(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	if err := writeEntry(w, "A Very Long Chapter Title", "100", 5, 12); err != nil {
		t.Fatalf("writeEntry: %v", err)
	}
	w.Flush()
	out := buf.String()
	if !strings.Contains(out, `STRING "A Very Long Chapter Title100"`) {
		t.Fatalf("expected no padding when fields alone exceed char width, got %q", out)
	}
}
