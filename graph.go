package planarity

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Graph is the flat vertex/arc store of §3: 2N vertex slots and 2*arcCapacity
// arc slots, preallocated once at InitGraph and reused across Reinitialize
// calls. A *Graph owns all of its storage; two instances may be embedded
// concurrently from separate goroutines as long as neither is shared
// between them (§5).
type Graph struct {
	id uuid.UUID

	// mu guards the fields below against concurrent Go-level access (e.g. a
	// goroutine calling GetOrder while another holds the only reference
	// during Embed). It plays no role in the algorithm itself, which has no
	// suspension points (§5).
	mu sync.RWMutex

	n           int // number of real vertices
	arcCapacity int // M slots reserved per twin-pair side
	vertices    []Vertex
	arcs        []Arc
	nextArc     int // bump allocator for the next free twin-pair of arc slots
	sortedByDFI bool

	sortedDFSChildLists    *listPool
	separatedDFSChildLists *listPool
	pertinentBicompLists   *listPool
	bucket                 []int // bucket-sort bin, size N (§2 Linked-collection helper)

	// dfsStack is the preallocated iterative-DFS frame stack of §4.1,
	// reused verbatim by Reinitialize; sized 2*arcCapacity per §5.
	dfsStack []dfsFrame

	mode        Flags
	minorType   MinorType
	embedded    bool
	blockedRoot int // vertex DFI where Embed last blocked, or NIL

	// labelToDFI/dfiToLabel record the permutation computed by the first
	// sortByDFI pass so SortVertices can toggle back and forth (§6
	// sortVertices).
	labelToDFI []int
	dfiToLabel []int
}

type dfsFrame struct {
	parent int // DFI of u_parent, or NIL for the sentinel root frame
	arc    int // arc index into u_parent's adjacency list, or NIL
}

// NewGraph allocates an empty, unusable Graph; call InitGraph before use.
func NewGraph() *Graph {
	return &Graph{id: uuid.New()}
}

// ID returns this Graph's stable debug identity, used to correlate log lines
// and Internal errors when multiple instances are embedded concurrently.
func (g *Graph) ID() string { return g.id.String() }

// defaultArcCapacity is the planar upper bound (3N-6) plus slack, matching
// §5's "arcCapacity >= 3N-6 for planar upper bound plus slack".
func defaultArcCapacity(n int) int {
	cap := 3*n - 6
	if cap < n {
		cap = n // degenerate small-N graphs
	}
	return cap + n // slack
}

// InitGraph allocates storage for n vertices and a default arc capacity.
func InitGraph(g *Graph, n int) error {
	return initGraph(g, n, defaultArcCapacity(n))
}

func initGraph(g *Graph, n int, arcCapacity int) error {
	if n < 0 {
		return VertexRangeError{Index: n, N: n}
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.n = n
	g.arcCapacity = arcCapacity
	g.vertices = make([]Vertex, 2*n)
	g.arcs = make([]Arc, 2*arcCapacity)
	g.sortedDFSChildLists = newListPool(n)
	g.separatedDFSChildLists = newListPool(n)
	g.pertinentBicompLists = newListPool(n)
	g.bucket = make([]int, n)
	g.dfsStack = make([]dfsFrame, 0, 2*arcCapacity)
	g.reinitializeLocked()
	return nil
}

// ReinitializeGraph resets all per-embedding state without reallocating
// (§5 Resources).
func ReinitializeGraph(g *Graph) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reinitializeLocked()
}

func (g *Graph) reinitializeLocked() {
	for i := range g.vertices {
		g.vertices[i].reset()
		if i < g.n {
			g.vertices[i].Index = i
		} else {
			g.vertices[i].Index = NIL
		}
	}
	for i := range g.arcs {
		g.arcs[i].reset()
	}
	g.sortedDFSChildLists.reset()
	g.separatedDFSChildLists.reset()
	g.pertinentBicompLists.reset()
	for i := range g.bucket {
		g.bucket[i] = NIL
	}
	g.dfsStack = g.dfsStack[:0]
	g.sortedByDFI = false
	g.embedded = false
	g.minorType = MinorNone
	g.blockedRoot = NIL
	g.nextArc = 0
}

// EnsureEdgeCapacity grows the arc array so it can hold at least m edges,
// preserving existing arcs.
func EnsureEdgeCapacity(g *Graph, m int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if m <= g.arcCapacity {
		return
	}
	grown := make([]Arc, 2*m)
	copy(grown, g.arcs)
	for i := 2 * g.arcCapacity; i < len(grown); i++ {
		grown[i].reset()
	}
	g.arcs = grown
	g.arcCapacity = m
}

// AddEdge adds an undirected edge {u,v} to the graph. Preprocessing-time
// only: must be called before Embed.
func AddEdge(g *Graph, u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if u < 0 || u >= g.n {
		return VertexRangeError{Index: u, N: g.n}
	}
	if v < 0 || v >= g.n {
		return VertexRangeError{Index: v, N: g.n}
	}
	if u == v {
		return EdgeLoopError{Vertex: u}
	}
	if g.nextArc/2 >= g.arcCapacity {
		g.unlockEnsureEdgeCapacity(g.arcCapacity*2 + 1)
	}

	al := arcList{arcs: g.arcs}
	duplicate := false
	al.iterateOnce(g.vertices[u].FirstArc, func(a int) {
		if g.arcs[a].Neighbor == v {
			duplicate = true
		}
	})
	if duplicate {
		return EdgeDuplicateError{U: u, V: v}
	}

	ju, jv := g.nextArc, g.nextArc+1
	g.nextArc += 2
	g.arcs[ju] = Arc{Neighbor: v, Next: NIL, Prev: NIL}
	g.arcs[jv] = Arc{Neighbor: u, Next: NIL, Prev: NIL}

	al.pushBack(&g.vertices[u].FirstArc, ju)
	g.vertices[u].LastArc = g.arcs[g.vertices[u].FirstArc].Prev
	al.pushBack(&g.vertices[v].FirstArc, jv)
	g.vertices[v].LastArc = g.arcs[g.vertices[v].FirstArc].Prev
	return nil
}

// unlockEnsureEdgeCapacity grows storage while g.mu is already held for
// writing (internal helper; EnsureEdgeCapacity is the public, self-locking
// entry point).
func (g *Graph) unlockEnsureEdgeCapacity(m int) {
	if m <= g.arcCapacity {
		return
	}
	grown := make([]Arc, 2*m)
	copy(grown, g.arcs)
	for i := 2 * g.arcCapacity; i < len(grown); i++ {
		grown[i].reset()
	}
	g.arcs = grown
	g.arcCapacity = m
}

// Neighbors returns v's current adjacency in list order: before Preprocess
// this is simply the order edges were added (AddEdge appends), after Embed it is
// the combinatorial rotation (equivalent to Rotation(v) but without the
// embedded-graph precondition, so callers like package ioformat can use one
// accessor for both "write the graph I built" and "write the graph I just
// embedded").
func (g *Graph) Neighbors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if v < 0 || v >= g.n {
		return nil, VertexRangeError{Index: v, N: g.n}
	}
	al := arcList{arcs: g.arcs}
	var out []int
	resolve := func(j int) {
		nb := g.arcs[j].Neighbor
		if nb >= g.n {
			// nb is a virtual root c+N standing in for parent(c) inside
			// c's not-yet-merged bicomp (§3); the arc's real endpoint is
			// that parent, not the root slot itself.
			nb = g.vertices[nb-g.n].Parent
		}
		if nb != NIL {
			out = append(out, nb)
		}
	}
	al.iterateOnce(g.vertices[v].FirstArc, resolve)
	// A back edge whose embedding is still pending (Embed hasn't reached
	// its owner's step yet, or it was left blocked) lives in FwdArcList,
	// not FirstArc, until Walkdown splices it in (§4.3 I3); include it too
	// so Neighbors reflects the true edge set at any point in the
	// algorithm, not just what has been spliced into the rotation so far.
	al.iterateOnce(g.vertices[v].FwdArcList, resolve)
	// Likewise, the tree edge to a DFS child whose bicomp has not yet been
	// merged sits on that child's root copy c+N, not in v's own list.
	g.sortedDFSChildLists.iterate(g.vertices[v].SortedDFSChildList, func(c int) {
		if g.vertices[c+g.n].FirstArc != NIL {
			out = append(out, c)
		}
	})
	return out, nil
}

// Parent returns v's DFS-parent DFI, or NIL (-1) if v is a DFS-tree root.
func (g *Graph) Parent(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if v < 0 || v >= g.n {
		return NIL, VertexRangeError{Index: v, N: g.n}
	}
	return g.vertices[v].Parent, nil
}

// MinorType returns the minor-family hint recorded the last time Embed
// returned NonEmbeddable (§9 Open Question (a)); MinorNone if Embed has
// never blocked.
func (g *Graph) MinorType() MinorType {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.minorType
}

// BlockedRoot returns the vertex DFI at which Embed last blocked, and true,
// or (NIL, false) if Embed has never returned NonEmbeddable.
func (g *Graph) BlockedRoot() (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.blockedRoot == NIL {
		return NIL, false
	}
	return g.blockedRoot, true
}

// GetOrder returns N, the number of real vertices.
func (g *Graph) GetOrder() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.n
}

// GetSize returns M, the number of edges added so far.
func (g *Graph) GetSize() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.nextArc / 2
}

// CopyGraph replaces dst's contents with a deep copy of src.
func CopyGraph(dst, src *Graph) {
	src.mu.RLock()
	defer src.mu.RUnlock()
	dst.mu.Lock()
	defer dst.mu.Unlock()

	dst.n = src.n
	dst.arcCapacity = src.arcCapacity
	dst.vertices = append([]Vertex(nil), src.vertices...)
	dst.arcs = append([]Arc(nil), src.arcs...)
	dst.sortedDFSChildLists = copyListPool(src.sortedDFSChildLists)
	dst.separatedDFSChildLists = copyListPool(src.separatedDFSChildLists)
	dst.pertinentBicompLists = copyListPool(src.pertinentBicompLists)
	dst.bucket = append([]int(nil), src.bucket...)
	dst.dfsStack = append([]dfsFrame(nil), src.dfsStack...)
	dst.sortedByDFI = src.sortedByDFI
	dst.mode = src.mode
	dst.minorType = src.minorType
	dst.embedded = src.embedded
	dst.blockedRoot = src.blockedRoot
	dst.labelToDFI = append([]int(nil), src.labelToDFI...)
	dst.dfiToLabel = append([]int(nil), src.dfiToLabel...)
	dst.nextArc = src.nextArc
}

func copyListPool(p *listPool) *listPool {
	if p == nil {
		return nil
	}
	return &listPool{next: append([]int(nil), p.next...), prev: append([]int(nil), p.prev...)}
}

// DupGraph returns a deep copy of g as a new *Graph (with a fresh debug id).
func DupGraph(g *Graph) *Graph {
	dup := NewGraph()
	CopyGraph(dup, g)
	return dup
}

// SortVertices toggles vertex storage between input-label order and DFI
// order by swapping records in place (P2).
func SortVertices(g *Graph) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.sortedByDFI {
		g.unsortLocked()
	} else {
		g.sortByDFILocked()
	}
}

func (g *Graph) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return fmt.Sprintf("Graph{id:%s n:%d m:%d mode:%v embedded:%v}", g.id, g.n, g.nextArc/2, g.mode, g.embedded)
}
