package planarity

// Vertex is one of a Graph's 2N slots: real vertices occupy [0,N), virtual
// "root copy" vertices occupy [N,2N) (§3). For a DFS child c, its root copy
// lives at c+N and represents parent(c) inside the singleton bicomp whose
// only edge is the tree edge (parent(c), c).
type Vertex struct {
	// Index is the vertex's original input label until sortByDFI runs, then
	// its DFI (invariant I7).
	Index int

	// Parent is the DFI of this vertex's DFS parent, or NIL for DFS-tree
	// roots. Meaningless for virtual vertices.
	Parent int

	LeastAncestor int
	Lowpoint      int

	// VisitedInfo is Walkup scratch: holds the step number I once a Walkup
	// call in step I has passed through this vertex (§4.2).
	VisitedInfo int

	// PertinentAdjacencyInfo is the forward-arc index from the current
	// step's root to this (descendant) vertex, or NIL.
	PertinentAdjacencyInfo int

	// Heads of intrusive lists (§4's linked-collection helper), all keyed by
	// DFS-child id except FwdArcList which is keyed by arc index.
	SortedDFSChildList    int
	SeparatedDFSChildList int
	PertinentBicompList   int
	FwdArcList            int

	// FirstArc/LastArc are the two ends of this vertex's circular adjacency
	// list; for a vertex currently on an external face they double as the
	// link[0]/link[1] arcs of the rotation.
	FirstArc int
	LastArc  int

	// ExtFace caches the two external-face neighbors of this vertex (I5).
	ExtFace [2]int

	// ExtFaceInversionFlag is set iff this vertex's orientation is inverted
	// relative to the bicomp root when the bicomp currently has exactly two
	// external-face vertices.
	ExtFaceInversionFlag bool

	// VisibilityPos is nil except under DrawPlanar mode, where it is
	// populated by the draw-planar hook (drawPlanarHook) at the end of this
	// vertex's own embed step (§3 additions).
	VisibilityPos *VisibilitySpan
}

func (v *Vertex) reset() {
	*v = Vertex{
		Parent:                NIL,
		LeastAncestor:         NIL,
		Lowpoint:              NIL,
		VisitedInfo:           NIL,
		PertinentAdjacencyInfo: NIL,
		SortedDFSChildList:    NIL,
		SeparatedDFSChildList: NIL,
		PertinentBicompList:   NIL,
		FwdArcList:            NIL,
		FirstArc:              NIL,
		LastArc:               NIL,
		ExtFace:               [2]int{NIL, NIL},
	}
}

// Arc is one of a Graph's 2M slots, allocated in twin pairs (arc J and
// J^1, invariant I1).
type Arc struct {
	// Neighbor is the vertex this arc points at; may be a virtual root-copy
	// slot while embedding is in progress.
	Neighbor int

	// Next/Prev link this arc within whichever circular list currently owns
	// it: a vertex's adjacency list, or a vertex's FwdArcList.
	Next, Prev int

	EdgeType EdgeType

	// Inverted records a pending bicomp flip on a TREE-CHILD arc (§4.4.2).
	Inverted bool
}

func (a *Arc) reset() {
	*a = Arc{Neighbor: NIL, Next: NIL, Prev: NIL}
}

// twin returns the paired arc slot for arc j (invariant I1).
func twin(j int) int { return j ^ 1 }

// VisibilitySpan records the vertical/horizontal extent assigned to a vertex
// by the DrawPlanar per-step hook (§4.6 DRAWPLANAR mode).
type VisibilitySpan struct {
	Low, High int // vertical span (DFI-ordered)
	Left, Right int // horizontal span: 0 and the vertex's arc count at its step
}
