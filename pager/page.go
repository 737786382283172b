package pager

import "strconv"

// Geometry fixes a page's physical dimensions and margins, in points.
// Content height budget is Height - TopPadding - BotPadding (spec §3).
type Geometry struct {
	Width, Height             int
	TopPadding, BotPadding    int
	LeftPadding, RightPadding int
}

// MaxContentHeight is the vertical budget available to the two flows.
func (g Geometry) MaxContentHeight() int {
	return g.Height - g.TopPadding - g.BotPadding
}

// DefaultGeometry is the fixed A4-at-1pt/unit page size spec §6 names,
// with the spec's default margins.
var DefaultGeometry = Geometry{
	Width: 595, Height: 842,
	TopPadding: 125, BotPadding: 125,
	LeftPadding: 102, RightPadding: 102,
}

// Page holds one page's accumulated content: two flows (normal,
// footnote), the marks attached while it was open, and whether it has
// received any content yet (spec §3 "Page").
type Page struct {
	Geometry   Geometry
	Number     string
	Normal     []Gizmo
	Footnote   []Gizmo
	Marks      []string
	Empty      bool
}

// Mark attaches a label to this page, to be emitted to the contents file
// once pagination finishes (spec §4.5).
func (p *Page) Mark(label string) {
	p.Marks = append(p.Marks, label)
}

// addContent appends gizmo batches to both flows and marks the page
// non-empty. It never fails: a page always accepts content once told to.
// Discardable gizmos at the start of a batch are dropped while the flow
// they would open is still empty, so glue collapses against the top of
// each flow.
func (p *Page) addContent(normalBatch, footnoteBatch []Gizmo) {
	if len(normalBatch) > 0 || len(footnoteBatch) > 0 {
		p.Empty = false
	}
	for len(p.Normal) == 0 && len(normalBatch) > 0 && normalBatch[0].Discardable() {
		normalBatch = normalBatch[1:]
	}
	for len(p.Footnote) == 0 && len(footnoteBatch) > 0 && footnoteBatch[0].Discardable() {
		footnoteBatch = footnoteBatch[1:]
	}
	p.Normal = append(p.Normal, normalBatch...)
	p.Footnote = append(p.Footnote, footnoteBatch...)
}

// Generator produces pages numbered 1, 2, 3, … in creation order (spec
// §3 "Lifecycle", §8 property 7).
type Generator struct {
	Geometry Geometry
	count    int
}

// NewGenerator returns a page generator for the given geometry.
func NewGenerator(geom Geometry) *Generator {
	return &Generator{Geometry: geom}
}

// New creates and returns the next page.
func (g *Generator) New() *Page {
	g.count++
	return &Page{
		Geometry: g.Geometry,
		Number:   strconv.Itoa(g.count),
		Empty:    true,
	}
}
