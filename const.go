package planarity

// NIL marks an uninitialized index (vertex, arc or list-cell slot).
const NIL = -1

// EdgeType classifies an arc after preprocessing (§4.1, invariant I2).
type EdgeType int

const (
	TypeUnknown EdgeType = iota
	TypeTreeChild
	TypeTreeParent
	TypeBack
	TypeForward
)

func (t EdgeType) String() string {
	switch t {
	case TypeTreeChild:
		return "TREE-CHILD"
	case TypeTreeParent:
		return "TREE-PARENT"
	case TypeBack:
		return "BACK"
	case TypeForward:
		return "FORWARD"
	default:
		return "UNKNOWN"
	}
}

// Flags selects the embedding mode. Exactly one must be set per Embed call.
type Flags int

const (
	Planar Flags = iota
	Outerplanar
	DrawPlanar
	SearchK23
	SearchK33
)

func (f Flags) String() string {
	switch f {
	case Planar:
		return "PLANAR"
	case Outerplanar:
		return "OUTERPLANAR"
	case DrawPlanar:
		return "DRAWPLANAR"
	case SearchK23:
		return "SEARCH-K2,3"
	case SearchK33:
		return "SEARCH-K3,3"
	default:
		return "UNKNOWN-MODE"
	}
}

// Result is one of the three outcome kinds threaded through every layer (§7).
type Result int

const (
	// OK: the operation met its contract.
	OK Result = iota
	// NonEmbeddable: the input cannot be embedded under the active mode;
	// this is a normal, expected outcome, not an error from the caller's
	// point of view.
	NonEmbeddable
	// Internal: an invariant failed. Non-recoverable; the Graph must be
	// reinitialized before reuse.
	Internal
)

func (r Result) String() string {
	switch r {
	case OK:
		return "OK"
	case NonEmbeddable:
		return "NONEMBEDDABLE"
	case Internal:
		return "INTERNAL"
	default:
		return "UNKNOWN-RESULT"
	}
}

// MinorType tags which Kuratowski-family configuration caused a blockage,
// resolving Open Question (a) of §9. The obstruction isolator uses it only
// to decide which minor to search for first.
type MinorType int

const (
	MinorNone MinorType = iota
	MinorA
	MinorB
	MinorC
	MinorD
	MinorE
	MinorE1
	MinorE2
	MinorE3
	MinorE4
)

func (m MinorType) String() string {
	names := [...]string{"NONE", "A", "B", "C", "D", "E", "E1", "E2", "E3", "E4"}
	if int(m) < 0 || int(m) >= len(names) {
		return "UNKNOWN-MINOR"
	}
	return names[m]
}
