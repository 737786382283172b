package pager

import (
	"context"
	"fmt"
	"io"

	"github.com/ngrs/typeset/record"
	"github.com/ngrs/typeset/record/linebreak"
)

// EmitPage writes one page of the pages stream to w: START PAGE, the
// normal flow walked top-down, the footnote flow walked top-down from
// its own starting offset, optional header and page-number graphics,
// then END (spec §4.4 "Page emission").
func (e *Engine) EmitPage(ctx context.Context, w io.Writer, p *Page) error {
	if _, err := io.WriteString(w, "START PAGE\n"); err != nil {
		return err
	}

	y := p.Geometry.Height - p.Geometry.TopPadding
	if err := walkFlow(w, p.Normal, p.Geometry.LeftPadding, &y); err != nil {
		return err
	}

	y = p.Geometry.BotPadding + FlowHeight(p.Footnote)
	if err := walkFlow(w, p.Footnote, p.Geometry.LeftPadding, &y); err != nil {
		return err
	}

	if e.Opts.ShowPageNumbers {
		if err := e.emitPageNumber(ctx, w, p); err != nil {
			return err
		}
	}
	if e.Opts.HeaderText != "" {
		if err := e.emitHeader(ctx, w, p); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "END\n")
	return err
}

// walkFlow walks gizmos in order starting at *y, subtracting each
// gizmo's height before considering it (so the first box sits with its
// top edge at the starting y) and drawing a MOVE + verbatim graphic
// for every visible one. Discardable gizmos still advance y in this
// walk — the discard rule only governs flow_height's measurement, which
// decides commit/overflow and the footnote flow's starting offset, not
// which gizmos are skipped when actually drawing (spec §4.4).
func walkFlow(w io.Writer, gizmos []Gizmo, x int, y *int) error {
	for _, g := range gizmos {
		*y -= g.Height
		if !g.Visible() {
			continue
		}
		if _, err := fmt.Fprintf(w, "MOVE %d %d\n", x, *y); err != nil {
			return err
		}
		if err := record.WriteGraphic(w, g.Graphic); err != nil {
			return err
		}
	}
	return nil
}

// emitPageNumber draws the page number centered in the bottom margin.
// Known limitation (spec §9): its height is not subtracted from the
// content budget, so it is placed purely by margin geometry.
func (e *Engine) emitPageNumber(ctx context.Context, w io.Writer, p *Page) error {
	label := e.Opts.NumberStyle.Format(mustAtoi(p.Number))
	g, err := e.centeredGraphic(ctx, p, "Regular 12", label)
	if err != nil {
		return err
	}
	x := p.Geometry.LeftPadding
	y := p.Geometry.BotPadding / 2
	if _, err := fmt.Fprintf(w, "MOVE %d %d\n", x, y); err != nil {
		return err
	}
	return record.WriteGraphic(w, g)
}

// emitHeader draws the configured header text centered in the top
// margin. Same known height-budget limitation as the page number.
func (e *Engine) emitHeader(ctx context.Context, w io.Writer, p *Page) error {
	g, err := e.centeredGraphic(ctx, p, "Regular 12", e.Opts.HeaderText)
	if err != nil {
		return err
	}
	x := p.Geometry.LeftPadding
	y := p.Geometry.Height - p.Geometry.TopPadding/2
	if _, err := fmt.Fprintf(w, "MOVE %d %d\n", x, y); err != nil {
		return err
	}
	return record.WriteGraphic(w, g)
}

// centeredGraphic runs a one-line FONT+STRING text spec through the
// collaborator with centre alignment and strips the box/opt_break
// framing from its output, leaving the inner graphic literal (spec
// §4.4's recipe for both the header and page-number graphics).
func (e *Engine) centeredGraphic(ctx context.Context, p *Page, font, text string) (record.Graphic, error) {
	spec := fmt.Sprintf("FONT %s\nSTRING \"%s\"\n", font, record.StripString(text))
	width := p.Geometry.Width - p.Geometry.LeftPadding - p.Geometry.RightPadding
	out, err := e.Breaker.Break(ctx, spec, width, linebreak.Center)
	if err != nil {
		return record.Graphic{}, err
	}
	return record.InnerGraphic(out)
}

func mustAtoi(s string) int {
	n := 0
	neg := false
	for i, r := range s {
		if i == 0 && r == '-' {
			neg = true
			continue
		}
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	if neg {
		n = -n
	}
	return n
}
