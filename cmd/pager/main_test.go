package main

import (
	"testing"

	"github.com/ngrs/typeset/pager"
)

func TestParseNumberStyleDefaultsToArabic(t *testing.T) {
	style, err := parseNumberStyle("")
	if err != nil {
		t.Fatalf("parseNumberStyle: %v", err)
	}
	if style != pager.Arabic {
		t.Fatalf("expected Arabic default, got %v", style)
	}
}

func TestParseNumberStyleRecognisesAllNames(t *testing.T) {
	cases := map[string]pager.NumberStyle{
		"arabic":      pager.Arabic,
		"lower-roman": pager.LowerRoman,
		"upper-roman": pager.UpperRoman,
		"lower-alpha": pager.LowerAlpha,
		"upper-alpha": pager.UpperAlpha,
	}
	for name, want := range cases {
		got, err := parseNumberStyle(name)
		if err != nil {
			t.Fatalf("parseNumberStyle(%q): %v", name, err)
		}
		if got != want {
			t.Fatalf("parseNumberStyle(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestParseNumberStyleRejectsUnknown(t *testing.T) {
	if _, err := parseNumberStyle("bogus"); err == nil {
		t.Fatalf("expected error for unknown number style")
	}
}
