package record

import (
	"bufio"
	"io"
)

// Scanner is the shared "next record" cursor used by every stage that
// consumes a record stream (markup reader's insertion splice, pager,
// contents). It centralizes the skip-blank-lines loop instead of each
// stage re-deriving it over a bare bufio.Reader.
type Scanner struct {
	r    *bufio.Reader
	done bool
}

// NewScanner wraps r for record-at-a-time consumption.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

// Next returns the next record, or io.EOF when the stream is exhausted.
func (s *Scanner) Next() (Record, error) {
	if s.done {
		return nil, io.EOF
	}
	rec, err := Parse(s.r)
	if err == io.EOF {
		s.done = true
	}
	return rec, err
}

// Reader exposes the underlying buffered reader, for callers (such as
// ReadGraphic) that need to read raw lines in lockstep with records.
func (s *Scanner) Reader() *bufio.Reader {
	return s.r
}
