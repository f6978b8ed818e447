package obstruction

import (
	"testing"

	"github.com/embedplane/planarity"
)

func completeGraphEdges(n int) [][2]int {
	var edges [][2]int
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			edges = append(edges, [2]int{u, v})
		}
	}
	return edges
}

func buildAndBlock(t *testing.T, n int, edges [][2]int, flags planarity.Flags) *planarity.Graph {
	t.Helper()
	g := planarity.NewGraph()
	if err := planarity.InitGraph(g, n); err != nil {
		t.Fatalf("InitGraph: %v", err)
	}
	for _, e := range edges {
		if err := planarity.AddEdge(g, e[0], e[1]); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}
	if r := planarity.Preprocess(g); r != planarity.OK {
		t.Fatalf("Preprocess: %v", r)
	}
	if r := planarity.Embed(g, flags); r != planarity.NonEmbeddable {
		t.Fatalf("Embed = %v, want NONEMBEDDABLE", r)
	}
	return g
}

// TestIsolateK5 is P7 for PLANAR mode on the K5 scenario of §8.
func TestIsolateK5(t *testing.T) {
	g := buildAndBlock(t, 5, completeGraphEdges(5), planarity.Planar)
	root, ok := g.BlockedRoot()
	if !ok {
		t.Fatalf("BlockedRoot() not set after NonEmbeddable")
	}
	result, err := IsolateKuratowski(g, root)
	if err != nil {
		t.Fatalf("IsolateKuratowski: %v", err)
	}
	if result.Minor != MinorK5 {
		t.Errorf("Minor = %v, want K5", result.Minor)
	}
}

// TestIsolateK33 is P7 for PLANAR mode on the K3,3 scenario of §8.
func TestIsolateK33(t *testing.T) {
	edges := [][2]int{
		{0, 3}, {0, 4}, {0, 5},
		{1, 3}, {1, 4}, {1, 5},
		{2, 3}, {2, 4}, {2, 5},
	}
	g := buildAndBlock(t, 6, edges, planarity.Planar)
	root, ok := g.BlockedRoot()
	if !ok {
		t.Fatalf("BlockedRoot() not set after NonEmbeddable")
	}
	result, err := IsolateKuratowski(g, root)
	if err != nil {
		t.Fatalf("IsolateKuratowski: %v", err)
	}
	if result.Minor != MinorK33 {
		t.Errorf("Minor = %v, want K3,3", result.Minor)
	}
}
