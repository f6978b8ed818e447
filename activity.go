package planarity

// isPertinent reports whether w still has embedding work pending: either a
// direct back edge to the vertex currently being processed, or a DFS child
// bicomp that is itself pertinent (§4.3).
func (g *Graph) isPertinent(w int) bool {
	if g.vertices[w].PertinentAdjacencyInfo != NIL {
		return true
	}
	return g.vertices[w].PertinentBicompList != NIL
}

// isExternallyActive reports whether w has a back edge or an unmerged DFS
// child reaching above DFI i, and so must remain on the external face rather
// than be skipped (§4.3).
func (g *Graph) isExternallyActive(w, i int) bool {
	if g.vertices[w].LeastAncestor < i {
		return true
	}
	c := g.vertices[w].SeparatedDFSChildList
	return c != NIL && g.vertices[c].Lowpoint < i
}

func (g *Graph) isInternallyActive(w, i int) bool {
	return g.isPertinent(w) && !g.isExternallyActive(w, i)
}

func (g *Graph) isInactive(w, i int) bool {
	return !g.isPertinent(w) && !g.isExternallyActive(w, i)
}
