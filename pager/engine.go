package pager

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/ngrs/typeset/internal/diag"
	"github.com/ngrs/typeset/record"
	"github.com/ngrs/typeset/record/linebreak"
)

// known flow names.
const (
	FlowNormal   = "normal"
	FlowFootnote = "footnote"
)

// PageEmitOptions configures the optional header and page-number
// graphics emitted on every page (spec §4.4 "Page emission").
//
// Known limitation, preserved from the source (spec §9 Design Notes):
// both graphics are drawn inside the page's margins without their
// height being subtracted from Geometry.MaxContentHeight, so content
// that reaches all the way to the top margin can visually overlap a
// configured header.
type PageEmitOptions struct {
	ShowPageNumbers bool
	NumberStyle     NumberStyle
	HeaderText      string
}

// Engine is the pager's owned-context object (spec §9 Design Notes
// "Global mutable I/O"): it holds geometry, the collaborator, the
// current flow, pending per-flow batches, and the page sequence, and
// every pagination operation is a method on it rather than touching
// module-level state. Grounded on gotypst's layout/pages.Engine, which
// plays the same "one context threaded through the whole pass" role for
// Typst's frame-tree layout.
type Engine struct {
	Geometry Geometry
	Breaker  linebreak.Breaker
	Logger   *log.Logger
	Opts     PageEmitOptions

	generator   *Generator
	active      *Page
	pages       []*Page
	currentFlow string
	pending     map[string][]Gizmo
}

// NewEngine constructs a pager Engine ready to consume a content stream.
func NewEngine(geom Geometry, breaker linebreak.Breaker, logger *log.Logger, opts PageEmitOptions) *Engine {
	gen := NewGenerator(geom)
	return &Engine{
		Geometry:    geom,
		Breaker:     breaker,
		Logger:      logger,
		Opts:        opts,
		generator:   gen,
		active:      gen.New(),
		currentFlow: FlowNormal,
		pending:     map[string][]Gizmo{FlowNormal: nil, FlowFootnote: nil},
	}
}

// TryCommit attempts to append normalBatch and footnoteBatch to the
// active page without mutation if they would overflow it. It succeeds
// (and mutates the page) when either the combined flow heights fit the
// content budget or the page is still empty — a page must always make
// forward progress, even on oversized content (spec §4.4 "Commit").
func (e *Engine) TryCommit(normalBatch, footnoteBatch []Gizmo) bool {
	h := FlowHeight(append(append([]Gizmo{}, e.active.Normal...), normalBatch...))
	h += FlowHeight(append(append([]Gizmo{}, e.active.Footnote...), footnoteBatch...))
	if h > e.Geometry.MaxContentHeight() && !e.active.Empty {
		return false
	}
	e.active.addContent(normalBatch, footnoteBatch)
	return true
}

// commitPending tries to commit the currently pending batches to the
// active page; on overflow it closes the active page, opens a new one,
// and force-appends the same batches there (a page always accepts
// content once asked to, even if it alone exceeds the budget).
func (e *Engine) commitPending() {
	normalBatch := e.pending[FlowNormal]
	footnoteBatch := e.pending[FlowFootnote]
	if !e.TryCommit(normalBatch, footnoteBatch) {
		e.pages = append(e.pages, e.active)
		e.active = e.generator.New()
		e.active.addContent(normalBatch, footnoteBatch)
	}
	e.pending = map[string][]Gizmo{FlowNormal: nil, FlowFootnote: nil}
}

// ParseRecord dispatches one content-stream record, per spec §4.4's
// parsing loop. Graphics for box records are read directly from s, since
// a box's payload is not itself a record but a verbatim nested block.
func (e *Engine) ParseRecord(rec record.Record, s *record.Scanner) error {
	switch rec.Command() {
	case "flow":
		if len(rec) != 2 {
			diag.Warn(e.Logger, "flow command expects one argument")
			return nil
		}
		if rec[1] != FlowNormal && rec[1] != FlowFootnote {
			diag.Warn(e.Logger, "invalid flow %q", rec[1])
			return nil
		}
		e.currentFlow = rec[1]

	case "mark":
		if len(rec) != 2 {
			diag.Warn(e.Logger, "mark command expects one argument")
			return nil
		}
		e.active.Mark(rec[1])

	case "box":
		if len(rec) != 2 {
			diag.Warn(e.Logger, "box command expects one argument")
			return nil
		}
		height, err := strconv.Atoi(rec[1])
		if err != nil {
			diag.Warn(e.Logger, "box command argument must be integer")
			height = 0
		}
		g, err := record.ReadGraphic(s.Reader())
		if err != nil {
			return err
		}
		e.pending[e.currentFlow] = append(e.pending[e.currentFlow], NewBox(height, g))

	case "glue":
		if len(rec) != 2 {
			diag.Warn(e.Logger, "glue command expects one argument")
			return nil
		}
		height, err := strconv.Atoi(rec[1])
		if err != nil {
			diag.Warn(e.Logger, "glue command argument must be integer")
			height = 0
		}
		e.pending[e.currentFlow] = append(e.pending[e.currentFlow], NewGlue(height))

	case "opt_break":
		e.commitPending()

	case "new_page":
		e.commitPending()
		if !e.active.Empty {
			e.pages = append(e.pages, e.active)
			e.active = e.generator.New()
		}

	default:
		diag.Warn(e.Logger, "unrecognised command %q", rec.Command())
	}
	return nil
}

// Run consumes a content stream from r, paginates it, and emits a pages
// stream to pagesOut and (if contentsOut is non-nil) one contents record
// per mark, in page order (spec §4.5).
func (e *Engine) Run(ctx context.Context, r io.Reader, pagesOut io.Writer, contentsOut io.Writer) error {
	s := record.NewScanner(r)
	for {
		rec, err := s.Next()
		if err != nil {
			break
		}
		if err := e.ParseRecord(rec, s); err != nil {
			return err
		}
	}
	e.commitPending()
	// A wholly empty trailing page (no gizmos, no marks) is dropped:
	// spec's empty-input scenario calls for zero emitted pages, which
	// only holds if the generator's always-open final page is excluded
	// when nothing was ever committed to it. Every other page only
	// closes (via opt_break/new_page overflow) once it already holds
	// content, so this check only ever affects the last page.
	if !e.active.Empty || len(e.active.Marks) > 0 {
		e.pages = append(e.pages, e.active)
	}

	for _, p := range e.pages {
		if err := e.EmitPage(ctx, pagesOut, p); err != nil {
			return fmt.Errorf("emitting page %s: %w", p.Number, err)
		}
		if contentsOut != nil {
			if err := e.writePageMarks(contentsOut, p); err != nil {
				return fmt.Errorf("writing contents for page %s: %w", p.Number, err)
			}
		}
	}
	return nil
}

func (e *Engine) writePageMarks(w io.Writer, p *Page) error {
	for _, m := range p.Marks {
		if err := record.WriteQuotedRecord(w, m, p.Number); err != nil {
			return err
		}
	}
	return nil
}
