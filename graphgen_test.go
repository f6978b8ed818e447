package planarity

import "math/rand"

// generateStackedTriangulation builds a maximal planar graph on n vertices by
// repeatedly picking a still-open triangular face at random and stacking a
// new vertex inside it, connected to all three of its corners. Edge count is
// exactly 3n-6 for n>=3, the densest a simple planar graph can be, which
// makes this the worst-case input shape for exercising Preprocess/Embed's
// O(N+E) bound (§5, P5) and for stress-testing a large, genuinely nontrivial
// rotation system.
func generateStackedTriangulation(n int, r *rand.Rand) [][2]int {
	switch {
	case n <= 1:
		return nil
	case n == 2:
		return [][2]int{{0, 1}}
	}

	type face struct{ a, b, c int }
	faces := []face{{0, 1, 2}}
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}}

	for v := 3; v < n; v++ {
		idx := r.Intn(len(faces))
		f := faces[idx]
		faces[idx] = faces[len(faces)-1]
		faces = faces[:len(faces)-1]

		edges = append(edges, [2]int{v, f.a}, [2]int{v, f.b}, [2]int{v, f.c})
		faces = append(faces,
			face{v, f.a, f.b}, face{v, f.b, f.c}, face{v, f.c, f.a})
	}
	return edges
}
