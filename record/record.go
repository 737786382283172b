// Package record implements the whitespace-separated record format shared
// by every stage of the typeset pipeline: the text specification, the
// content stream, the pages stream, and the contents file are all built
// from records.
//
// A record is a line-oriented tuple of string fields. Each field is either
// bare (a run of non-whitespace not starting with a quote) or quoted
// (delimited by '"', with \" escaping an inner quote and \\ escaping a
// literal backslash). Empty lines and whitespace-only lines are skipped;
// a record is the first line with at least one field.
package record

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Record is a parsed tuple of field strings, already unescaped.
type Record []string

// Command is the first field of a record, by convention the command name.
func (r Record) Command() string {
	if len(r) == 0 {
		return ""
	}
	return r[0]
}

// Parse reads lines from r until it finds one with at least one field,
// skipping blank and whitespace-only lines, and returns the parsed
// record. It returns io.EOF once the input is exhausted without
// producing a record.
func Parse(r *bufio.Reader) (Record, error) {
	for {
		line, err := nextLine(r)
		if err != nil {
			return nil, err
		}
		if rec := scanFields(line); len(rec) > 0 {
			return rec, nil
		}
	}
}

// scanFields splits one line into bare and quoted fields, unescaping
// quoted fields as it goes. The original Python implementation used the
// regex r'[^"\s]\S*|".*?[^\\]"', which cannot match an empty quoted
// field (""); this hand-written scanner is the "conservative
// implementation" spec §4.1 asks for, keeping the round-trip invariant
// (§8 property 4) for every string including the empty one.
func scanFields(line string) Record {
	var rec Record
	i, n := 0, len(line)
	for i < n {
		for i < n && isRecordSpace(line[i]) {
			i++
		}
		if i >= n {
			break
		}
		if line[i] == '"' {
			field, next := scanQuoted(line, i)
			rec = append(rec, field)
			i = next
			continue
		}
		start := i
		for i < n && !isRecordSpace(line[i]) {
			i++
		}
		rec = append(rec, line[start:i])
	}
	return rec
}

func isRecordSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// scanQuoted scans a quoted field starting at the opening '"' (line[start]
// == '"'), honoring \" and \\ escapes, and returns the unescaped field
// content plus the index just past the closing quote. If the field runs
// off the end of the line with no closing quote, everything to the end
// of the line is taken as the field's content.
func scanQuoted(line string, start int) (string, int) {
	var b strings.Builder
	i := start + 1
	n := len(line)
	for i < n {
		switch line[i] {
		case '\\':
			if i+1 < n && (line[i+1] == '"' || line[i+1] == '\\') {
				b.WriteByte(line[i+1])
				i += 2
				continue
			}
			b.WriteByte(line[i])
			i++
		case '"':
			return b.String(), i + 1
		default:
			b.WriteByte(line[i])
			i++
		}
	}
	return b.String(), i
}

// nextLine reads raw lines from r, skipping blank and whitespace-only
// ones, and returns the first non-blank line verbatim (NFC-normalized,
// newline included). It returns io.EOF once input is exhausted.
func nextLine(r *bufio.Reader) (string, error) {
	for {
		line, err := r.ReadString('\n')
		if line == "" && err != nil {
			return "", io.EOF
		}
		line = norm.NFC.String(line)
		if len(strings.Fields(line)) > 0 {
			return line, nil
		}
		if err != nil {
			return "", io.EOF
		}
	}
}

// StripString escapes a string for embedding in a quoted field: backslash
// and quote are escaped and any embedded newline is dropped, since records
// are strictly line-oriented.
func StripString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", "")
	return s
}

// needsQuoting reports whether a field must be written quoted: it
// contains whitespace, a quote, or is empty.
func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	return strings.ContainsAny(s, " \t\"")
}

// WriteRecord writes one record to w, quoting and escaping each field
// that needs it and leaving bare tokens (command names, integers) as-is.
func WriteRecord(w io.Writer, fields ...string) error {
	parts := make([]string, len(fields))
	for i, f := range fields {
		if needsQuoting(f) {
			parts[i] = `"` + StripString(f) + `"`
		} else {
			parts[i] = f
		}
	}
	_, err := io.WriteString(w, strings.Join(parts, " ")+"\n")
	return err
}

// WriteQuotedRecord writes one record to w with every field forced into
// quoted form, regardless of content. The contents file (spec §4.5) and
// the contents formatter always quote both of their fields, matching
// the source's fixed '"{}" "{}"' template rather than WriteRecord's
// quote-only-if-needed heuristic.
func WriteQuotedRecord(w io.Writer, fields ...string) error {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = `"` + StripString(f) + `"`
	}
	_, err := io.WriteString(w, strings.Join(parts, " ")+"\n")
	return err
}

// AsciiSanitize replaces any rune outside the printable ASCII range,
// other than tab and newline (which are kept), with '?'. The line-break collaborator's stdin contract (spec §4.2) is plain
// ASCII bytes; this keeps STRING payloads within that contract even when
// markup source text is not pure ASCII.
func AsciiSanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r > 0x7e {
			if r == '\n' || r == '\t' {
				b.WriteRune(r)
				continue
			}
			b.WriteByte('?')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
