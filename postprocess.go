package planarity

// orientVerticesInEmbedding is §4.7's OrientVerticesInEmbedding: every
// virtual-vertex slot that still roots a bicomp (its adjacency is
// non-empty) gets one DFS pass over its TREE-CHILD arcs that folds each
// arc's pending Inverted flag into a running parity and flips any vertex
// whose accumulated parity is odd, so that every vertex in a finished
// bicomp shares one consistent orientation.
func (g *Graph) orientVerticesInEmbedding() {
	n := g.n
	for root := n; root < 2*n; root++ {
		if g.vertices[root].FirstArc == NIL {
			continue
		}
		g.orientVerticesInBicomp(root, false)
	}
}

// orientVerticesInBicomp walks the tree-child arcs reachable from root,
// carrying a cumulative invert bit that is the XOR of every Inverted flag
// seen so far on the path from root. Whenever that bit is set at a vertex,
// the vertex is flipped before its own children are visited, so the parity
// is always relative to the (already-corrected) orientation of its parent.
// If preserveSigns is false (always the case from orientVerticesInEmbedding;
// callers that re-run orientation without consuming the signs pass true),
// each Inverted flag is cleared once folded in.
func (g *Graph) orientVerticesInBicomp(root int, preserveSigns bool) {
	al := arcList{arcs: g.arcs}
	type frame struct {
		v      int
		invert bool
	}
	stack := []frame{{v: root, invert: false}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		v, invert := top.v, top.invert
		if invert {
			g.invertVertex(v)
		}

		var treeChildren []int
		al.iterateOnce(g.vertices[v].FirstArc, func(j int) {
			if g.arcs[j].EdgeType == TypeTreeChild {
				treeChildren = append(treeChildren, j)
			}
		})
		for _, j := range treeChildren {
			childInvert := invert != g.arcs[j].Inverted
			if !preserveSigns {
				g.arcs[j].Inverted = false
			}
			stack = append(stack, frame{v: g.arcs[j].Neighbor, invert: childInvert})
		}
	}
}

// joinBicomps is §4.7's JoinBicomps: every virtual root left over after
// OrientVerticesInEmbedding (one per real vertex with a DFS parent, unless
// it was already folded in during Walkdown) is merged into its real parent
// by calling mergeBicomp exactly as Walkdown does. mergeBicomp's own flip
// rule therefore still applies here: when the parent has a single distinct
// external-face neighbor, the child is inverted and its tree-child arc's
// Inverted flag toggled, and since orientation has already run, that flag
// is not folded in afterwards. DFS-tree roots have no parent, so separate
// connected components stay separate.
func (g *Graph) joinBicomps() {
	n := g.n
	for c := 0; c < n; c++ {
		root := c + n
		if g.vertices[root].FirstArc == NIL {
			continue
		}
		parent := g.vertices[c].Parent
		if parent == NIL {
			continue
		}
		g.mergeBicomp(parent, c)
	}
}
