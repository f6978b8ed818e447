package planarity

// walkup climbs from descendant w, which has a pending back edge to the
// vertex currently being processed (DFI i), toward i along the external
// face, recording which vertices and DFS-child bicomps become pertinent as
// a result (§4.2).
//
// The reference algorithm uses two synchronized face walkers (Zig/Zag).
// This implementation instead relaxes a small worklist over the
// virtual-root-collapsed face graph: whenever a walker would step onto an
// unmerged DFS-child root copy, that child's bicomp is registered as
// pertinent on its real DFS parent and the walk continues from there. This
// reaches the same fixed point (every vertex and bicomp between w and i
// gets marked) with a visited guard keeping total work proportional to the
// portion of the face actually walked.
func (g *Graph) walkup(i, w int) {
	n := g.n
	if g.vertices[w].VisitedInfo == i {
		return
	}
	g.vertices[w].VisitedInfo = i

	work := []int{w}
	for len(work) > 0 {
		x := work[len(work)-1]
		work = work[:len(work)-1]
		if x == i {
			continue
		}
		for _, y := range g.vertices[x].ExtFace {
			if y == NIL {
				continue
			}
			if y >= n {
				c := y - n
				parent := g.vertices[c].Parent
				if parent == NIL {
					continue
				}
				// Always register c on parent's pertinentBicompList, even if
				// parent was already visited this step via a different
				// child's walk: VisitedInfo gates only how far the walk
				// itself continues (the amortization in §4.2's termination
				// optimization), not which distinct children get recorded.
				// appendIfAbsent's own duplicate check is what keeps a single
				// child from being registered twice. A newly registered child
				// whose lowpoint is not below i (internally active) is moved
				// to the front of the list; others stay at the tail.
				pool := g.pertinentBicompLists
				head := &g.vertices[parent].PertinentBicompList
				present := *head == c || pool.next[c] != NIL
				pool.appendIfAbsent(head, c)
				if !present && g.vertices[c].Lowpoint >= i {
					*head = c
				}
				if g.vertices[parent].VisitedInfo != i {
					g.vertices[parent].VisitedInfo = i
					work = append(work, parent)
				}
				continue
			}
			if g.vertices[y].VisitedInfo != i {
				g.vertices[y].VisitedInfo = i
				work = append(work, y)
			}
		}
	}
}

// appendIfAbsent appends id to the list at *head only if it is not already
// present; used where walkup may revisit the same bicomp from more than one
// back edge in the same step.
func (p *listPool) appendIfAbsent(head *int, id int) {
	if *head == NIL {
		p.append(head, id)
		return
	}
	found := false
	p.iterate(*head, func(existing int) {
		if existing == id {
			found = true
		}
	})
	if !found {
		p.append(head, id)
	}
}
