package planarity

// Embed runs the edge-addition embedding driver of §4.5 under the given
// mode. Preprocess must have already run on g. On OK, g holds a planar
// combinatorial embedding recoverable via OrientVerticesInEmbedding and
// JoinBicomps (invoked automatically here); on NonEmbeddable, g.minorType
// records a best-effort guess at the blocking minor family for the
// obstruction isolator.
func Embed(g *Graph, flags Flags) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !validMode(flags) {
		return Internal
	}
	g.mode = flags

	al := arcList{arcs: g.arcs}
	for i := g.n - 1; i >= 0; i-- {
		al.iterateOnce(g.vertices[i].FwdArcList, func(j int) {
			w := g.arcs[j].Neighbor
			g.vertices[w].PertinentAdjacencyInfo = j
			g.walkup(i, w)
		})

		// §4.5 step 3: one Walkdown call per pertinent DFS child root,
		// draining PertinentBicompList(i) in the priority order Walkup
		// already encoded (prepend for internally active, append for
		// externally active).
		for {
			c, ok := g.pertinentBicompLists.popFront(&g.vertices[i].PertinentBicompList)
			if !ok {
				break
			}
			if r := g.walkdown(c + g.n); r != OK {
				return r
			}
		}

		if r := g.embedPendingBackEdges(i); r != OK {
			return r
		}
		if r := g.applyModeHook(i); r != OK {
			return r
		}
	}

	g.orientVerticesInEmbedding()
	g.joinBicomps()
	g.embedded = true
	return OK
}

func validMode(f Flags) bool {
	switch f {
	case Planar, Outerplanar, DrawPlanar, SearchK23, SearchK33:
		return true
	default:
		return false
	}
}
