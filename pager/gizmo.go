// Package pager implements the content-to-pages pagination flow engine
// (spec §4.4): it consumes a content stream of boxes, glues, flow
// switches, marks, and breaks, and groups them into pages under a
// fit-or-overflow commit rule, emitting a pages stream and an optional
// contents file.
package pager

import "github.com/ngrs/typeset/record"

// GizmoKind distinguishes the two gizmo variants. Spec §9 suggests
// replacing the source's dynamic-dispatch Box/Glue classes with a tagged
// variant; a closed two-case sum fits that better than an interface,
// since the set of cases is fixed by the spec and never extended.
type GizmoKind int

const (
	// GizmoBox is a visible unit of given height carrying a graphic.
	GizmoBox GizmoKind = iota
	// GizmoGlue is invisible spacing; discardable at flow boundaries.
	GizmoGlue
)

// Gizmo is one element of a flow: either a Box (visible, not
// discardable) or a Glue (invisible, discardable). A gizmo's identity is
// value-only (spec §3) — Gizmo is a plain struct, freely copied.
type Gizmo struct {
	Kind    GizmoKind
	Height  int
	Graphic record.Graphic
}

// NewBox constructs a visible gizmo of the given height.
func NewBox(height int, g record.Graphic) Gizmo {
	return Gizmo{Kind: GizmoBox, Height: height, Graphic: g}
}

// NewGlue constructs a discardable spacing gizmo of the given height.
func NewGlue(height int) Gizmo {
	return Gizmo{Kind: GizmoGlue, Height: height}
}

// Discardable reports whether trailing runs of this gizmo collapse
// against a flow boundary instead of counting toward its height.
func (g Gizmo) Discardable() bool { return g.Kind == GizmoGlue }

// Visible reports whether this gizmo draws anything when a page is
// emitted.
func (g Gizmo) Visible() bool { return g.Kind == GizmoBox }
