package planarity

// mergeBicomp splices DFS child c's bicomp into real vertex i's growing
// external face, replacing c's root copy (c+N, which stood in for i inside
// c's bicomp) with i itself (§4.4). It always inserts the new material on
// i's side-1 link, so repeated merges build i's external face outward one
// child at a time; the permanently fixed side-0 link (i's own root copy,
// i+N) is only touched when i is later merged into its own parent. Because
// of that fixed side-0, c's root copy's own ExtFace is never anything but
// [c,c] at the moment of its merge (invariant I4 plus this same rule applied
// one level down) — a bicomp root's two "candidate" external-face neighbors
// named in §4.3/§4.4 always coincide here, so there is no a!=b case to
// branch on.
func (g *Graph) mergeBicomp(i, c int) {
	n := g.n
	root := c + n

	// §4.4 step 2 (flip): with side 0 permanently reserved as the
	// unmerged-root gateway, Rout and ZPrevLink as the spec names them can
	// never disagree here, so the flip trigger that actually matters is
	// the two-vertex-bicomp case of I5: i currently has only one distinct
	// external-face neighbor, meaning there is no established "outward"
	// direction at i for c to inherit. Flagging c's own orientation
	// inverted lets OrientVerticesInBicomp's tree-DFS pass (§4.7)
	// reconcile it later against whatever the rest of the bicomp settles
	// on, instead of baking in an arbitrary choice now.
	if g.vertices[i].ExtFace[0] == g.vertices[i].ExtFace[1] {
		g.invertVertex(c)
		if j := g.vertices[root].FirstArc; j != NIL {
			g.arcs[j].Inverted = !g.arcs[j].Inverted
		}
	}

	old := g.vertices[i].ExtFace[1]
	g.vertices[i].ExtFace[1] = c
	g.vertices[c].ExtFace = [2]int{i, old}
	if old != NIL {
		// A DFS-tree root i has no root copy, so its slots start out NIL.
		g.replaceExtFaceSlot(old, i, c)
	}

	// §4.4 step 3 (delist): c is no longer pending attention from i, either
	// as a bicomp still to be walked down into or as a separated child
	// still to be merged.
	g.pertinentBicompLists.removeIfMember(&g.vertices[i].PertinentBicompList, c)
	g.separatedDFSChildLists.removeIfMember(&g.vertices[i].SeparatedDFSChildList, c)

	// The tree edge (i,c) itself becomes embedded at this point: fold its
	// two arcs into each real endpoint's own adjacency rotation, retargeting
	// c's side away from the now-retired virtual root.
	e := g.vertices[root].FirstArc
	g.arcs[twin(e)].Neighbor = i
	al := arcList{arcs: g.arcs}
	al.pushBack(&g.vertices[i].FirstArc, e)
	g.vertices[i].LastArc = g.arcs[g.vertices[i].FirstArc].Prev
	// twin(e) is already a member of c's own FirstArc list (it has been
	// since createDFSTreeEmbedding seeded it as c's tree-parent arc, per I3);
	// only its Neighbor needed retargeting above, not its list membership.

	// root's own record is reclaimed now that its sole arc and both
	// ExtFace links have been folded into i and c: later passes
	// (JoinBicomps, OrientVerticesInEmbedding) test FirstArc==NIL to tell
	// an already-merged root from one still awaiting a merge (§5
	// "virtual-vertex reclaim step zeroes fields in place").
	g.vertices[root].reset()
}

func (g *Graph) replaceExtFaceSlot(v, old, new int) {
	if g.vertices[v].ExtFace[0] == old {
		g.vertices[v].ExtFace[0] = new
	} else {
		g.vertices[v].ExtFace[1] = new
	}
}

// invertVertex flips v's recorded orientation, swapping its two ExtFace
// links (§4.4.2). Used by Walkdown when a pertinent child must be attached
// on the opposite side from its natural orientation.
func (g *Graph) invertVertex(v int) {
	g.vertices[v].ExtFace[0], g.vertices[v].ExtFace[1] = g.vertices[v].ExtFace[1], g.vertices[v].ExtFace[0]
	g.vertices[v].ExtFaceInversionFlag = !g.vertices[v].ExtFaceInversionFlag
}
