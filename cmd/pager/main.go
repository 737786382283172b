// Command pager paginates a content stream into a pages stream, writing
// an optional contents record file alongside it (spec §4.4-4.5).
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ngrs/typeset/internal/cli"
	"github.com/ngrs/typeset/internal/config"
	"github.com/ngrs/typeset/internal/diag"
	"github.com/ngrs/typeset/pager"
	"github.com/ngrs/typeset/record/linebreak"
)

// fileConfig mirrors the flag surface typeset.toml may override with
// project-local defaults, loaded before flags are parsed.
type fileConfig struct {
	Left           int    `toml:"left"`
	Right          int    `toml:"right"`
	Top            int    `toml:"top"`
	Bottom         int    `toml:"bottom"`
	Contents       string `toml:"contents"`
	PageNumbers    bool   `toml:"page_numbers"`
	NumberStyle    string `toml:"number_style"`
	Header         string `toml:"header"`
	LineBreak      string `toml:"line_break"`
}

func parseNumberStyle(s string) (pager.NumberStyle, error) {
	switch s {
	case "", "arabic":
		return pager.Arabic, nil
	case "lower-roman":
		return pager.LowerRoman, nil
	case "upper-roman":
		return pager.UpperRoman, nil
	case "lower-alpha":
		return pager.LowerAlpha, nil
	case "upper-alpha":
		return pager.UpperAlpha, nil
	default:
		return 0, &pager.InvalidFlagError{Flag: "number-style", Reason: "must be one of arabic, lower-roman, upper-roman, lower-alpha, upper-alpha"}
	}
}

func main() {
	var (
		left, right, top, bottom int
		contentsPath             string
		showPageNumbers          bool
		numberStyleFlag          string
		headerText               string
		lineBreakPath            string
	)

	var fc fileConfig
	if err := config.LoadTOML("typeset.toml", &fc); err != nil {
		fmt.Fprintf(os.Stderr, "error: reading typeset.toml: %v\n", err)
		os.Exit(1)
	}

	cmd := &cobra.Command{
		Use:   "pager",
		Short: "Paginate a content stream into a pages stream",
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := parseNumberStyle(numberStyleFlag)
			if err != nil {
				return err
			}

			geom := pager.DefaultGeometry
			geom.LeftPadding = left
			geom.RightPadding = right
			geom.TopPadding = top
			geom.BotPadding = bottom

			logger := diag.NewLogger("pager")
			breaker := &linebreak.ExecBreaker{Path: lineBreakPath, Logger: logger}
			opts := pager.PageEmitOptions{
				ShowPageNumbers: showPageNumbers,
				NumberStyle:     style,
				HeaderText:      headerText,
			}
			engine := pager.NewEngine(geom, breaker, logger, opts)

			var contentsOut io.Writer
			if contentsPath != "" {
				f, err := os.Create(contentsPath)
				if err != nil {
					return fmt.Errorf("opening contents output: %w", err)
				}
				defer f.Close()
				contentsOut = f
			}

			return engine.Run(cmd.Context(), os.Stdin, os.Stdout, contentsOut)
		},
	}

	defaultLeft, defaultRight := pager.DefaultGeometry.LeftPadding, pager.DefaultGeometry.RightPadding
	defaultTop, defaultBottom := pager.DefaultGeometry.TopPadding, pager.DefaultGeometry.BotPadding
	if fc.Left != 0 {
		defaultLeft = fc.Left
	}
	if fc.Right != 0 {
		defaultRight = fc.Right
	}
	if fc.Top != 0 {
		defaultTop = fc.Top
	}
	if fc.Bottom != 0 {
		defaultBottom = fc.Bottom
	}
	defaultLineBreak := fc.LineBreak
	if defaultLineBreak == "" {
		defaultLineBreak = "line_break"
	}

	flags := cmd.Flags()
	flags.IntVarP(&left, "left", "l", defaultLeft, "left margin, in points")
	flags.IntVarP(&right, "right", "r", defaultRight, "right margin, in points")
	flags.IntVarP(&top, "top", "t", defaultTop, "top margin, in points")
	flags.IntVarP(&bottom, "bottom", "b", defaultBottom, "bottom margin, in points")
	flags.StringVarP(&contentsPath, "contents", "c", fc.Contents, "optional contents output path")
	flags.BoolVarP(&showPageNumbers, "numbers", "n", fc.PageNumbers, "draw page numbers in the bottom margin")
	flags.StringVar(&numberStyleFlag, "number-style", fc.NumberStyle, "page number style: arabic, lower-roman, upper-roman, lower-alpha, upper-alpha")
	flags.StringVarP(&headerText, "header", "H", fc.Header, "optional header text drawn in the top margin")
	flags.StringVar(&lineBreakPath, "line-break", defaultLineBreak, "line-break collaborator binary name or path, for header/page-number graphics")

	cli.Run(cmd)
}
