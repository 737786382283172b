// Command markup-raw converts stdin, line by line and verbatim, into a
// content stream with no word wrapping or emphasis handling: one box
// per input line, with an opt_break inserted between lines once past
// the configured orphan/widow counts, plus an unconditional trailing
// opt_break (spec §4.3.1 "Raw markup" — a direct port of
// original_source/markup_raw.py, which also never invokes the
// line-break collaborator).
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ngrs/typeset/internal/cli"
	"github.com/ngrs/typeset/internal/config"
	"github.com/ngrs/typeset/record"
)

type fileConfig struct {
	FontSize int    `yaml:"font_size"`
	FontName string `yaml:"font_name"`
	Orphans  int    `yaml:"orphans"`
	Widows   int    `yaml:"widows"`
}

func main() {
	var fontSize int
	var fontName string
	var orphans, widows int

	var fc fileConfig
	if err := config.LoadYAML("typeset.yaml", &fc); err != nil {
		fmt.Fprintf(os.Stderr, "error: reading typeset.yaml: %v\n", err)
		os.Exit(1)
	}

	cmd := &cobra.Command{
		Use:   "markup-raw",
		Short: "Lay out stdin as one unwrapped box per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readAllLines(os.Stdin)
			if err != nil {
				return err
			}

			out := bufio.NewWriter(os.Stdout)
			defer out.Flush()

			for i, line := range lines {
				n := i + 1
				fmt.Fprintf(out, "box %d\n", fontSize)
				fmt.Fprintf(out, "START TEXT\n")
				fmt.Fprintf(out, "FONT %s %d\n", record.StripString(fontName), fontSize)
				fmt.Fprintf(out, "STRING \"%s\"\n", record.StripString(line))
				fmt.Fprintf(out, "END\n")
				if n >= orphans && len(lines)-n >= widows {
					fmt.Fprintf(out, "opt_break\n")
				}
			}
			fmt.Fprintf(out, "opt_break\n")
			return nil
		},
	}

	defaultFontSize := fc.FontSize
	if defaultFontSize == 0 {
		defaultFontSize = 12
	}
	defaultFontName := fc.FontName
	if defaultFontName == "" {
		defaultFontName = "Monospace"
	}
	defaultOrphans := fc.Orphans
	if defaultOrphans == 0 {
		defaultOrphans = 1
	}
	defaultWidows := fc.Widows
	if defaultWidows == 0 {
		defaultWidows = 1
	}

	flags := cmd.Flags()
	flags.IntVarP(&fontSize, "size", "s", defaultFontSize, "font size")
	flags.StringVarP(&fontName, "font", "f", defaultFontName, "font name")
	flags.IntVarP(&orphans, "orphans", "o", defaultOrphans, "minimum lines kept before an interior break")
	flags.IntVarP(&widows, "widows", "w", defaultWidows, "minimum lines kept after an interior break")

	cli.Run(cmd)
}

// readAllLines reads every line of r. original_source's readlines()
// keeps each line's trailing "\n", but that is immaterial here since
// strip_string drops embedded newlines before a line reaches a STRING
// field, so bufio.Scanner's already-stripped lines produce identical
// output.
func readAllLines(r io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	return lines, s.Err()
}
