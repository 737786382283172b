package pager

// FlowHeight computes the measured height of an ordered sequence of
// gizmos: non-discardable gizmos are counted directly; a run of
// discardable gizmos is only credited once a non-discardable gizmo
// follows it, so trailing discardables never count (spec §3, §8
// property 1). This is what lets glue collapse against the bottom of a
// flow; leading discardables are counted here once a box follows them,
// and their collapse against the top of a page's flow happens when the
// page receives content (Page.addContent).
func FlowHeight(gizmos []Gizmo) int {
	height := 0
	pending := 0
	for _, g := range gizmos {
		if g.Discardable() {
			pending += g.Height
			continue
		}
		height += pending + g.Height
		pending = 0
	}
	return height
}
