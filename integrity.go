package planarity

// TestEmbedResultIntegrity implements §6's testEmbedResultIntegrity: given
// the graph as it stood right after Preprocess (original) and the outcome
// of a subsequent Embed call (result, read from g after Embed returns), it
// checks P1 for every result; on OK it also checks the Euler bound and P4,
// and on NonEmbeddable that a minor type was recorded. P2 and P3 are not
// checked here.
func TestEmbedResultIntegrity(g, original *Graph, result Result) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkArcTwins(); err != nil {
		return err
	}

	switch result {
	case OK:
		if err := g.checkEulerBound(original); err != nil {
			return err
		}
		if err := g.checkExternalFaceConsistency(); err != nil {
			return err
		}
	case NonEmbeddable:
		if g.minorType == MinorNone {
			return InvariantError{Invariant: "P7", Detail: "NonEmbeddable result carries no minor type"}
		}
	}
	return nil
}

// checkArcTwins is P1: every allocated arc's twin points back at it, and
// TREE-CHILD/TREE-PARENT and BACK/FORWARD always appear as a twin pair.
func (g *Graph) checkArcTwins() error {
	for j := 0; j < g.nextArc; j++ {
		if twin(twin(j)) != j {
			return InvariantError{Invariant: "P1", Detail: "twin(twin(j)) != j"}
		}
		t := g.arcs[j].EdgeType
		tt := g.arcs[twin(j)].EdgeType
		switch t {
		case TypeTreeChild:
			if tt != TypeTreeParent {
				return InvariantError{Invariant: "P1", Detail: "TREE-CHILD arc's twin is not TREE-PARENT"}
			}
		case TypeTreeParent:
			if tt != TypeTreeChild {
				return InvariantError{Invariant: "P1", Detail: "TREE-PARENT arc's twin is not TREE-CHILD"}
			}
		case TypeBack:
			if tt != TypeForward {
				return InvariantError{Invariant: "P1", Detail: "BACK arc's twin is not FORWARD"}
			}
		case TypeForward:
			if tt != TypeBack {
				return InvariantError{Invariant: "P1", Detail: "FORWARD arc's twin is not BACK"}
			}
		}
	}
	return nil
}

// checkEulerBound confirms the finished embedding has the same order and
// size as the original graph (no edges dropped or duplicated by the
// merge/join machinery) and that M respects the planar bound 3N-6 (or 2N-3
// under OUTERPLANAR).
func (g *Graph) checkEulerBound(original *Graph) error {
	if g.n != original.n {
		return InvariantError{Invariant: "euler", Detail: "vertex count changed across Embed"}
	}
	m := g.nextArc / 2
	if m != original.GetSize() {
		return InvariantError{Invariant: "euler", Detail: "edge count changed across Embed"}
	}
	n := g.n
	if n >= 3 {
		bound := 3*n - 6
		if g.mode == Outerplanar {
			bound = 2*n - 3
		}
		if m > bound {
			return InvariantError{Invariant: "euler", Detail: "edge count exceeds planar bound"}
		}
	}
	return nil
}

// checkExternalFaceConsistency is P4: starting from each virtual root that
// still holds a bicomp, following ExtFace links must cycle
// back within a bounded number of steps, not run off into NIL or loop
// forever without returning.
func (g *Graph) checkExternalFaceConsistency() error {
	n := g.n
	for root := n; root < 2*n; root++ {
		if g.vertices[root].FirstArc == NIL {
			continue
		}
		start := root
		side := 0
		v := g.vertices[start].ExtFace[side]
		steps := 0
		limit := 2*n + 2
		for v != NIL && v != start && steps < limit {
			next := NIL
			for _, s := range g.vertices[v].ExtFace {
				if s != NIL {
					next = s
					break
				}
			}
			v = next
			steps++
		}
		if v == NIL || steps >= limit {
			return InvariantError{Invariant: "P4", Detail: "external face walk did not return to root"}
		}
	}
	return nil
}
