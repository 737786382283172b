package linebreak

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ngrs/typeset/record"
)

// FakeBreaker is a deterministic, in-process stand-in for a real
// line_break collaborator, used by package tests across the repository
// so they can exercise the splice/contract logic without a real binary
// on $PATH. It implements just enough of the four guarantees spec §4.2
// promises: every STRING (preceded by its current FONT) becomes a
// box+graphic, BREAK becomes a glue, OPTBREAK optionally becomes
// opt_break, and MARK <id> becomes a "^id" line. It never actually packs
// words to a target width; one STRING is one box.
type FakeBreaker struct {
	// EmitOptBreaks controls whether OPTBREAK commands materialize as
	// opt_break records, mirroring that the real collaborator may or
	// may not do so at any given position.
	EmitOptBreaks bool
}

// Break implements Breaker.
func (f *FakeBreaker) Break(_ context.Context, spec string, width int, align Aligner) (string, error) {
	var out strings.Builder
	sc := bufio.NewScanner(strings.NewReader(spec))
	font := "Regular"
	size := "12"
	for sc.Scan() {
		line := sc.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "FONT":
			if len(fields) >= 3 {
				font, size = fields[1], fields[2]
			}
		case "STRING":
			text := stripQuotes(line, "STRING")
			h, _ := strconv.Atoi(size)
			fmt.Fprintf(&out, "box %d\n", h)
			out.WriteString("START\n")
			fmt.Fprintf(&out, "FONT %s %s\n", font, size)
			fmt.Fprintf(&out, "STRING \"%s\"\n", record.StripString(text))
			out.WriteString("END\n")
		case "OPTBREAK":
			if f.EmitOptBreaks {
				out.WriteString("opt_break\n")
			}
		case "BREAK":
			spacing := "12"
			if len(fields) >= 2 {
				spacing = fields[1]
			}
			fmt.Fprintf(&out, "glue %s\n", spacing)
		case "MARK":
			if len(fields) >= 2 {
				fmt.Fprintf(&out, "^%s\n", fields[1])
			}
		}
	}
	return out.String(), nil
}

// stripQuotes extracts the quoted payload following a leading command
// word, unescaping \" back to " the way record.Parse would.
func stripQuotes(line, cmd string) string {
	rest := strings.TrimSpace(strings.TrimPrefix(line, cmd))
	rest = strings.TrimPrefix(rest, `"`)
	rest = strings.TrimSuffix(rest, `"`)
	return strings.ReplaceAll(rest, `\"`, `"`)
}
