// Command markup-reader converts markup source on stdin into a content
// stream on stdout, building a text specification along the way and
// running it through the line-break collaborator (spec §4.3).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ngrs/typeset/internal/cli"
	"github.com/ngrs/typeset/internal/config"
	"github.com/ngrs/typeset/internal/diag"
	"github.com/ngrs/typeset/markup"
	"github.com/ngrs/typeset/record/linebreak"
)

// fileConfig mirrors the flag surface that typeset.yaml may override
// with project-local defaults, loaded before flags are parsed so that
// an explicit flag always wins.
type fileConfig struct {
	Width                    int    `yaml:"width"`
	FootnoteWidth            int    `yaml:"footnote_width"`
	Size                     int    `yaml:"size"`
	FootnoteSize             int    `yaml:"footnote_size"`
	Align                    string `yaml:"align"`
	FootnoteAlign            string `yaml:"footnote_align"`
	LineSpacing              int    `yaml:"line_spacing"`
	FootnoteLineSpacing      int    `yaml:"footnote_line_spacing"`
	ParagraphSpacing         int    `yaml:"paragraph_spacing"`
	FootnoteParagraphSpacing int    `yaml:"footnote_paragraph_spacing"`
	LineBreak                string `yaml:"line_break"`
}

func main() {
	var (
		width                    int
		footnoteWidth            int
		size                     int
		footnoteSize             int
		align                    string
		footnoteAlign            string
		lineSpacing              int
		footnoteLineSpacing      int
		paragraphSpacing         int
		footnoteParagraphSpacing int
		lineBreakPath            string
	)

	var fc fileConfig
	if err := config.LoadYAML("typeset.yaml", &fc); err != nil {
		fmt.Fprintf(os.Stderr, "error: reading typeset.yaml: %v\n", err)
		os.Exit(1)
	}

	cmd := &cobra.Command{
		Use:   "markup-reader",
		Short: "Convert markup source into a line-broken content stream",
		RunE: func(cmd *cobra.Command, args []string) error {
			if width == 0 {
				return &markup.InvalidFlagError{Flag: "w", Reason: "required"}
			}
			if footnoteWidth == 0 {
				footnoteWidth = width
			}
			if lineSpacing == 0 {
				lineSpacing = size
			}
			if footnoteLineSpacing == 0 {
				footnoteLineSpacing = footnoteSize
			}
			if paragraphSpacing == 0 {
				paragraphSpacing = size
			}
			if footnoteParagraphSpacing == 0 {
				footnoteParagraphSpacing = footnoteSize
			}

			a, err := linebreak.ParseAligner(align)
			if err != nil {
				return &markup.InvalidFlagError{Flag: "a", Reason: err.Error()}
			}
			fa, err := linebreak.ParseAligner(footnoteAlign)
			if err != nil {
				return &markup.InvalidFlagError{Flag: "A", Reason: err.Error()}
			}

			logger := diag.NewLogger("markup-reader")
			breaker := &linebreak.ExecBreaker{Path: lineBreakPath, Logger: logger}

			m := markup.NewMainStream(width, footnoteWidth, size, a, fa)
			m.FootnoteSize = footnoteSize
			m.FootnoteAlign = fa
			m.LineSpacing = lineSpacing
			m.ParagraphSpacing = paragraphSpacing
			m.FootnoteLineSpacing = footnoteLineSpacing
			m.FootnoteParagraphSpacing = footnoteParagraphSpacing

			out, err := markup.ReadAll(cmd.Context(), m, breaker, os.Stdin)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(os.Stdout, out)
			return err
		},
	}

	defaultAlign := fc.Align
	if defaultAlign == "" {
		defaultAlign = "l"
	}
	defaultFootnoteAlign := fc.FootnoteAlign
	if defaultFootnoteAlign == "" {
		defaultFootnoteAlign = defaultAlign
	}
	defaultSize := fc.Size
	if defaultSize == 0 {
		defaultSize = 12
	}
	defaultFootnoteSize := fc.FootnoteSize
	if defaultFootnoteSize == 0 {
		defaultFootnoteSize = 12
	}
	defaultLineBreak := fc.LineBreak
	if defaultLineBreak == "" {
		defaultLineBreak = "line_break"
	}

	flags := cmd.Flags()
	flags.IntVarP(&width, "width", "w", fc.Width, "normal line width (required)")
	flags.IntVarP(&footnoteWidth, "footnote-width", "W", fc.FootnoteWidth, "footnote line width (default: normal width)")
	flags.IntVarP(&size, "size", "s", defaultSize, "normal font size")
	flags.IntVarP(&footnoteSize, "footnote-size", "S", defaultFootnoteSize, "footnote font size")
	flags.StringVarP(&align, "align", "a", defaultAlign, "normal alignment: l, r, c, or j")
	flags.StringVarP(&footnoteAlign, "footnote-align", "A", defaultFootnoteAlign, "footnote alignment: l, r, c, or j")
	flags.IntVarP(&lineSpacing, "line-spacing", "l", fc.LineSpacing, "normal line spacing (default: normal font size)")
	flags.IntVarP(&footnoteLineSpacing, "footnote-line-spacing", "L", fc.FootnoteLineSpacing, "footnote line spacing (default: footnote font size)")
	flags.IntVarP(&paragraphSpacing, "paragraph-spacing", "p", fc.ParagraphSpacing, "normal paragraph spacing (default: normal font size)")
	flags.IntVarP(&footnoteParagraphSpacing, "footnote-paragraph-spacing", "P", fc.FootnoteParagraphSpacing, "footnote paragraph spacing (default: footnote font size)")
	flags.StringVar(&lineBreakPath, "line-break", defaultLineBreak, "line-break collaborator binary name or path")

	cli.Run(cmd)
}
