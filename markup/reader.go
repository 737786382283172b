package markup

import (
	"bufio"
	"context"
	"io"

	"github.com/ngrs/typeset/record/linebreak"
)

// ReadAll feeds every line of r to m.ReadLine in order and returns the
// fully spliced content once the input is exhausted (original_source's
// top-level "for line in sys.stdin: main_stream.read_line(line)" loop,
// followed by printing to_content()).
func ReadAll(ctx context.Context, m *MainStream, breaker linebreak.Breaker, r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if err := m.ReadLine(ctx, breaker, sc.Text()); err != nil {
			return "", err
		}
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return m.ToContent(ctx, breaker)
}
