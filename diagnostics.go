package planarity

import (
	llq "github.com/emirpasic/gods/queues/linkedlistqueue"
)

// Visitor receives one callback per vertex visited by DFSWalk or BFSWalk,
// mirroring the teacher library's Visitor interface. It runs over a
// finished embedding (after Embed has returned OK), walking the
// combinatorial rotation rather than a generic parent/child relation.
type Visitor interface {
	Visit(vertex int, rotation []int)
}

// DFSWalk walks every real vertex reachable from vertex 0 by following
// embedded adjacency (TREE-CHILD/TREE-PARENT/BACK/FORWARD arcs, all of
// which have been folded into FirstArc/LastArc rotations by the time Embed
// returns OK), using a native slice as an explicit stack. This is the same
// stack-over-interface-boxing split the teacher's DFSWalk makes, adapted to
// index-addressed vertices instead of string-keyed ones.
func (g *Graph) DFSWalk(visitor Visitor) error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.embedded {
		return NotEmbeddedError{}
	}

	n := g.n
	visited := make([]bool, n)
	stack := make([]int, 0, n)
	stack = append(stack, 0)

	al := arcList{arcs: g.arcs}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[v] {
			continue
		}
		visited[v] = true
		visitor.Visit(v, g.rotationLocked(v))

		var neighbors []int
		al.iterateOnce(g.vertices[v].FirstArc, func(j int) {
			neighbors = append(neighbors, g.arcs[j].Neighbor)
		})
		for k := len(neighbors) - 1; k >= 0; k-- {
			if w := neighbors[k]; w < n && !visited[w] {
				stack = append(stack, w)
			}
		}
	}
	return nil
}

// BFSWalk is DFSWalk's breadth-first counterpart, backed by
// emirpasic/gods's linked-list queue exactly as the teacher's BFSWalk is —
// this traversal is off the embedding hot path (diagnostic/export use only)
// so the container-library overhead is the right trade. It is the only
// gods container the package uses.
func (g *Graph) BFSWalk(visitor Visitor) error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.embedded {
		return NotEmbeddedError{}
	}

	n := g.n
	visited := make([]bool, n)
	queue := llq.New()
	queue.Enqueue(0)

	al := arcList{arcs: g.arcs}
	for !queue.Empty() {
		item, _ := queue.Dequeue()
		v := item.(int)
		if visited[v] {
			continue
		}
		visited[v] = true
		visitor.Visit(v, g.rotationLocked(v))

		al.iterateOnce(g.vertices[v].FirstArc, func(j int) {
			if w := g.arcs[j].Neighbor; w < n && !visited[w] {
				queue.Enqueue(w)
			}
		})
	}
	return nil
}

// rotationLocked returns the cyclic order of real-vertex neighbors around v
// in its finished embedding, callable only while g.mu is already held.
func (g *Graph) rotationLocked(v int) []int {
	al := arcList{arcs: g.arcs}
	var rotation []int
	al.iterateOnce(g.vertices[v].FirstArc, func(j int) {
		rotation = append(rotation, g.arcs[j].Neighbor)
	})
	return rotation
}

// Rotation is the exported, locking form of rotationLocked, usable once
// Embed has returned OK to read off vertex v's combinatorial embedding.
func (g *Graph) Rotation(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.embedded {
		return nil, NotEmbeddedError{}
	}
	if v < 0 || v >= g.n {
		return nil, VertexRangeError{Index: v, N: g.n}
	}
	return g.rotationLocked(v), nil
}
