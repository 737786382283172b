package markup

import (
	"context"
	"strings"
	"testing"

	"github.com/ngrs/typeset/record/linebreak"
)

func TestWorkedHeaderAndEmphasisExample(t *testing.T) {
	m := NewMainStream(475, 475, 12, linebreak.Left, linebreak.Left)
	ctx := context.Background()
	breaker := &linebreak.FakeBreaker{}
	lines := []string{"# Title", "", "Hello *bold* world"}
	for _, line := range lines {
		if err := m.ReadLine(ctx, breaker, line); err != nil {
			t.Fatalf("ReadLine(%q): %v", line, err)
		}
	}

	want := "FONT Regular 12\n" +
		"FONT Regular 31\n" +
		`STRING "Title"` + "\n" +
		"FONT Regular 12\n" +
		"BREAK 12\n" +
		`STRING "Hello"` + "\n" +
		`OPTBREAK " " "" 12` + "\n" +
		"FONT Bold 12\n" +
		`STRING "bold"` + "\n" +
		"FONT Regular 12\n" +
		`OPTBREAK " " "" 12` + "\n" +
		`STRING "world`

	if got := m.text.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestReadAllProducesContentFromStdinLines(t *testing.T) {
	m := NewMainStream(475, 475, 12, linebreak.Left, linebreak.Left)
	out, err := ReadAll(context.Background(), m, &linebreak.FakeBreaker{}, strings.NewReader("Hello world\n"))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !strings.Contains(out, `STRING "Hello"`) || !strings.Contains(out, `STRING "world"`) {
		t.Fatalf("expected both words laid out, got %q", out)
	}
}
