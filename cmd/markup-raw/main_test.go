package main

import (
	"strings"
	"testing"
)

func TestReadAllLinesSplitsOnNewlines(t *testing.T) {
	lines, err := readAllLines(strings.NewReader("first\nsecond\nthird"))
	if err != nil {
		t.Fatalf("readAllLines: %v", err)
	}
	want := []string{"first", "second", "third"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestReadAllLinesEmptyInput(t *testing.T) {
	lines, err := readAllLines(strings.NewReader(""))
	if err != nil {
		t.Fatalf("readAllLines: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected no lines, got %v", lines)
	}
}
