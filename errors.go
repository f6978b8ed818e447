package planarity

import "fmt"

// VertexRangeError reports an out-of-range vertex index.
type VertexRangeError struct {
	Index int
	N     int
}

func (e VertexRangeError) Error() string {
	return fmt.Sprintf("planarity: vertex index %d out of range [0,%d)", e.Index, e.N)
}

// EdgeLoopError reports an attempt to add a self-loop.
type EdgeLoopError struct {
	Vertex int
}

func (e EdgeLoopError) Error() string {
	return fmt.Sprintf("planarity: self-loop at vertex %d not permitted", e.Vertex)
}

// EdgeDuplicateError reports an attempt to add a parallel edge (no multigraph
// support, per the Non-goals of §1).
type EdgeDuplicateError struct {
	U, V int
}

func (e EdgeDuplicateError) Error() string {
	return fmt.Sprintf("planarity: edge (%d,%d) already present", e.U, e.V)
}

// CapacityError reports that the preallocated arc or stack storage was
// exhausted (§4.1 failure clause, §5 Resources).
type CapacityError struct {
	Resource string
	Have     int
	Need     int
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("planarity: internal error: %s capacity %d insufficient, need %d", e.Resource, e.Have, e.Need)
}

// InvariantError reports a corrupted internal invariant detected mid-algorithm
// (external-face link, arc typing, ...). Embedding aborts immediately and the
// Graph must be reinitialized before reuse (§7 policy).
type InvariantError struct {
	Invariant string
	Detail    string
}

func (e InvariantError) Error() string {
	return fmt.Sprintf("planarity: internal error: invariant %s violated: %s", e.Invariant, e.Detail)
}

// ModeError reports an unsupported or malformed Flags value passed to Embed.
type ModeError struct {
	Flags Flags
}

func (e ModeError) Error() string {
	return fmt.Sprintf("planarity: unsupported mode %v", e.Flags)
}

// NotEmbeddedError is returned by the post-embedding walks and Rotation,
// which require a prior Embed call to have returned OK.
type NotEmbeddedError struct{}

func (NotEmbeddedError) Error() string {
	return "planarity: graph has not been embedded"
}
