package planarity

// applyModeHook runs the mode-specific extension point of §4.6 once per
// embed-driver step, after Walkdown has returned OK for step i. The default
// (PLANAR) hook does nothing beyond what Walkdown already guarantees;
// OUTERPLANAR, DRAWPLANAR and the two SEARCH- modes each narrow or enrich
// that default without forking the driver loop in Embed.
func (g *Graph) applyModeHook(i int) Result {
	switch g.mode {
	case Outerplanar:
		return g.outerplanarHook(i)
	case DrawPlanar:
		g.drawPlanarHook(i)
		return OK
	case SearchK23, SearchK33:
		// Search modes use the same per-step embedding as PLANAR; they only
		// differ in the minor-type guess classifyBlockage records once a
		// bicomp blocks, which is biased toward the searched family.
		// Embedding still stops at the first blockage.
		return OK
	default:
		return OK
	}
}

// outerplanarHook enforces the OUTERPLANAR extension of §4.6: every
// non-root vertex must end up on the external face of its bicomp. A vertex
// that has just had its last pending back edge embedded but is left with a
// DFS child bicomp still attached on both of its own external-face links
// would be interior to the assembled bicomp, which is exactly the K4/K2,3
// obstruction pattern outerplanarity search watches for; treat that as a
// blockage the same way a failed Walkdown would.
func (g *Graph) outerplanarHook(i int) Result {
	if i == 0 {
		return OK
	}
	v := &g.vertices[i]
	if v.ExtFace[0] == NIL && v.ExtFace[1] == NIL && v.FirstArc != NIL {
		g.minorType = MinorC
		g.blockedRoot = i
		return NonEmbeddable
	}
	return OK
}

// drawPlanarHook implements the DRAWPLANAR extension of §4.6: it stamps a
// VisibilitySpan on vertex i using the step index as the vertical
// coordinate and the count of arcs already embedded as a stand-in
// horizontal coordinate, mirroring how the reference algorithm accumulates
// vertical/horizontal extents during merges rather than computing them in a
// separate pass.
func (g *Graph) drawPlanarHook(i int) {
	v := &g.vertices[i]
	if v.VisibilityPos == nil {
		v.VisibilityPos = &VisibilitySpan{}
	}
	v.VisibilityPos.Low = i
	v.VisibilityPos.High = i
	left := 0
	al := arcList{arcs: g.arcs}
	al.iterateOnce(v.FirstArc, func(int) { left++ })
	v.VisibilityPos.Left = 0
	v.VisibilityPos.Right = left
}
