package planarity

// Preprocess runs §4.1 end to end: DFS numbering, sort-by-DFI, lowpoint
// computation, and construction of the initial DFS-tree embedding (each
// non-root vertex reduced to a singleton bicomp with its own root copy).
// It must be called exactly once, on a freshly populated Graph, before
// Embed.
func Preprocess(g *Graph) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	if r := g.dfsNumber(); r != OK {
		return r
	}
	g.sortByDFILocked()
	g.computeLowpoints()
	g.createDFSTreeEmbedding()
	return OK
}

// dfsNumber is step 1 of §4.1: an iterative DFS over the raw, label-indexed
// adjacency built by AddEdge. It assigns DFI, Parent (already DFI-valued),
// LeastAncestor, classifies every arc, and seeds each DFS child's root copy
// with its tree-child arc, all using the vertex array's pre-sort, label-
// addressed slots.
func (g *Graph) dfsNumber() Result {
	n := g.n
	visited := make([]bool, n)
	dfi := make([]int, n)
	order := make([]int, n)
	for i := range dfi {
		dfi[i] = NIL
	}
	next := 0
	al := arcList{arcs: g.arcs}

	push := func(frame dfsFrame) Result {
		if len(g.dfsStack) >= cap(g.dfsStack) {
			return Internal
		}
		g.dfsStack = append(g.dfsStack, frame)
		return OK
	}

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		g.dfsStack = g.dfsStack[:0]
		if r := push(dfsFrame{parent: NIL, arc: NIL}); r != OK {
			return r
		}

		for len(g.dfsStack) > 0 {
			frame := g.dfsStack[len(g.dfsStack)-1]
			g.dfsStack = g.dfsStack[:len(g.dfsStack)-1]

			var u int
			if frame.arc == NIL {
				u = start
			} else {
				u = g.arcs[frame.arc].Neighbor
			}
			if visited[u] {
				continue
			}
			visited[u] = true
			dfi[u] = next
			order[next] = u
			next++

			g.vertices[u].LeastAncestor = dfi[u]
			g.vertices[u].Lowpoint = dfi[u]

			if frame.arc != NIL {
				e := frame.arc
				parentLabel := frame.parent
				g.vertices[u].Parent = dfi[parentLabel]
				g.arcs[e].EdgeType = TypeTreeChild
				g.arcs[twin(e)].EdgeType = TypeTreeParent
				g.sortedDFSChildLists.append(&g.vertices[parentLabel].SortedDFSChildList, dfi[u])

				// e moves out of parentLabel's rotation entirely (onto u's
				// root copy below); unlink it first so parentLabel's FirstArc
				// list stays a well-formed circular list for its other arcs.
				al.remove(&g.vertices[parentLabel].FirstArc, e)

				root := dfi[u] + n
				g.vertices[root].FirstArc = e
				g.vertices[root].LastArc = e
				g.arcs[e].Next = e
				g.arcs[e].Prev = e
			} else {
				g.vertices[u].Parent = NIL
			}

			var children []dfsFrame
			al.iterateOnce(g.vertices[u].FirstArc, func(j int) {
				w := g.arcs[j].Neighbor
				if !visited[w] {
					children = append(children, dfsFrame{parent: u, arc: j})
					return
				}
				if g.arcs[j].EdgeType == TypeTreeParent {
					return
				}
				g.arcs[j].EdgeType = TypeBack
				g.arcs[twin(j)].EdgeType = TypeForward
				al.remove(&g.vertices[w].FirstArc, twin(j))
				al.pushBack(&g.vertices[w].FwdArcList, twin(j))
				if dfi[w] < g.vertices[u].LeastAncestor {
					g.vertices[u].LeastAncestor = dfi[w]
				}
			})
			for i := len(children) - 1; i >= 0; i-- {
				if r := push(children[i]); r != OK {
					return r
				}
			}
		}
	}

	g.labelToDFI = dfi
	g.dfiToLabel = order
	return OK
}

// sortByDFILocked permutes the real-vertex slots from label order into DFI
// order and rewrites every arc's real-vertex Neighbor field accordingly
// (invariant I7); it assumes dfsNumber has already populated g.labelToDFI.
func (g *Graph) sortByDFILocked() {
	if g.sortedByDFI {
		return
	}
	n := g.n
	permuted := make([]Vertex, n)
	for label := 0; label < n; label++ {
		permuted[g.labelToDFI[label]] = g.vertices[label]
	}
	for i := 0; i < n; i++ {
		permuted[i].Index = i
		g.vertices[i] = permuted[i]
	}
	for j := 0; j < g.nextArc; j++ {
		if nb := g.arcs[j].Neighbor; nb >= 0 && nb < n {
			g.arcs[j].Neighbor = g.labelToDFI[nb]
		}
	}
	g.sortedByDFI = true
}

// unsortLocked reverses sortByDFILocked using the stored permutation.
func (g *Graph) unsortLocked() {
	if !g.sortedByDFI {
		return
	}
	n := g.n
	permuted := make([]Vertex, n)
	for dfi := 0; dfi < n; dfi++ {
		permuted[g.dfiToLabel[dfi]] = g.vertices[dfi]
	}
	for i := 0; i < n; i++ {
		permuted[i].Index = i
		g.vertices[i] = permuted[i]
	}
	for j := 0; j < g.nextArc; j++ {
		if nb := g.arcs[j].Neighbor; nb >= 0 && nb < n {
			g.arcs[j].Neighbor = g.dfiToLabel[nb]
		}
	}
	g.sortedByDFI = false
}

// computeLowpoints is step 3 of §4.1: a single descending-DFI sweep folding
// each vertex's LeastAncestor and each DFS child's lowpoint into its
// parent's, followed by a global bucket
// sort (keyed by lowpoint, using g.bucket as the single size-N bin) that
// builds every vertex's separatedDFSChildList in ascending-lowpoint order.
func (g *Graph) computeLowpoints() {
	n := g.n
	for v := n - 1; v >= 0; v-- {
		if g.vertices[v].LeastAncestor < g.vertices[v].Lowpoint {
			g.vertices[v].Lowpoint = g.vertices[v].LeastAncestor
		}
		g.sortedDFSChildLists.iterate(g.vertices[v].SortedDFSChildList, func(c int) {
			if g.vertices[c].Lowpoint < g.vertices[v].Lowpoint {
				g.vertices[v].Lowpoint = g.vertices[c].Lowpoint
			}
		})
	}

	pool := g.separatedDFSChildLists
	for i := range g.bucket {
		g.bucket[i] = NIL
	}
	for c := 0; c < n; c++ {
		if g.vertices[c].Parent == NIL {
			continue
		}
		pool.append(&g.bucket[g.vertices[c].Lowpoint], c)
	}
	for lp := 0; lp < n; lp++ {
		for {
			c, ok := pool.popFront(&g.bucket[lp])
			if !ok {
				break
			}
			parent := g.vertices[c].Parent
			pool.append(&g.vertices[parent].SeparatedDFSChildList, c)
		}
	}
}

// createDFSTreeEmbedding is step 4 of §4.1. After dfsNumber + sortByDFI, each
// non-root vertex v holds its own tree-parent arc plus the BACK arcs to its
// ancestors (tree-child arcs were relocated into their children's root
// copies as they were discovered, forward arcs into the ancestor's
// FwdArcList). All that remains is to retarget the tree-parent arc at v's
// root copy instead of literally at parent(v), and to seed the two-vertex
// external face.
func (g *Graph) createDFSTreeEmbedding() {
	n := g.n
	al := arcList{arcs: g.arcs}
	for v := 0; v < n; v++ {
		if g.vertices[v].Parent == NIL {
			continue
		}
		root := v + n
		al.iterateOnce(g.vertices[v].FirstArc, func(j int) {
			if g.arcs[j].EdgeType == TypeTreeParent {
				g.arcs[j].Neighbor = root
			}
		})

		g.vertices[v].ExtFace = [2]int{root, root}
		g.vertices[root].ExtFace = [2]int{v, v}
	}
}
