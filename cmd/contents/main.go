// Command contents formats a contents record file (two fields per
// record: a title and a page label) into a content-stream fragment of
// dotted-leader table-of-contents entries, one per line, each a
// Monospace box followed by opt_break (spec §4.5 "contents
// formatting" — a direct port of original_source/contents.py, which
// never actually invokes the line-break collaborator).
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ngrs/typeset/internal/cli"
	"github.com/ngrs/typeset/internal/config"
	"github.com/ngrs/typeset/internal/diag"
	"github.com/ngrs/typeset/record"
)

type fileConfig struct {
	CharWidth int `toml:"char_width"`
	FontSize  int `toml:"font_size"`
}

func main() {
	var charWidth, fontSize int

	var fc fileConfig
	if err := config.LoadTOML("typeset.toml", &fc); err != nil {
		fmt.Fprintf(os.Stderr, "error: reading typeset.toml: %v\n", err)
		os.Exit(1)
	}

	cmd := &cobra.Command{
		Use:   "contents",
		Short: "Format a contents record file into a table-of-contents content stream",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := diag.NewLogger("contents")
			in := bufio.NewReader(os.Stdin)
			out := bufio.NewWriter(os.Stdout)
			defer out.Flush()

			for {
				rec, err := record.Parse(in)
				if err != nil {
					break
				}
				if len(rec) != 2 {
					diag.Warn(logger, "contents file record must have 2 fields")
					continue
				}
				if err := writeEntry(out, rec[0], rec[1], charWidth, fontSize); err != nil {
					return err
				}
			}
			return nil
		},
	}

	defaultCharWidth := fc.CharWidth
	if defaultCharWidth == 0 {
		defaultCharWidth = 60
	}
	defaultFontSize := fc.FontSize
	if defaultFontSize == 0 {
		defaultFontSize = 12
	}

	flags := cmd.Flags()
	flags.IntVarP(&charWidth, "char-width", "c", defaultCharWidth, "total character width of a contents line, for dotted-leader padding")
	flags.IntVarP(&fontSize, "font-size", "s", defaultFontSize, "Monospace font size for contents lines")

	cli.Run(cmd)
}

// writeEntry renders one title/label pair as a dotted-leader line,
// padding between them with '.' to fill charWidth characters (clamped
// to zero when the fields alone already reach or exceed it).
func writeEntry(w *bufio.Writer, title, label string, charWidth, fontSize int) error {
	padding := charWidth - len([]rune(title)) - len([]rune(label))
	if padding < 0 {
		padding = 0
	}
	line := title + strings.Repeat(".", padding) + label

	fmt.Fprintf(w, "box %d\n", fontSize)
	fmt.Fprintf(w, "START TEXT\n")
	fmt.Fprintf(w, "FONT Monospace %d\n", fontSize)
	fmt.Fprintf(w, "STRING \"%s\"\n", record.StripString(line))
	fmt.Fprintf(w, "END\n")
	fmt.Fprintf(w, "opt_break\n")
	return nil
}
