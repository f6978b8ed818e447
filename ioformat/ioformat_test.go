package ioformat

import (
	"bytes"
	"sort"
	"testing"

	"github.com/embedplane/planarity"
)

func neighborSets(t *testing.T, g *planarity.Graph) [][]int {
	t.Helper()
	n := g.GetOrder()
	out := make([][]int, n)
	for v := 0; v < n; v++ {
		ns, err := g.Neighbors(v)
		if err != nil {
			t.Fatalf("Neighbors(%d): %v", v, err)
		}
		sort.Ints(ns)
		out[v] = ns
	}
	return out
}

func equalNeighborSets(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

// TestAdjacencyListRoundTrip checks the round-trip property of §8: a graph
// written as adjacency-list and re-read is equal to the original under
// reorder-invariant comparison.
func TestAdjacencyListRoundTrip(t *testing.T) {
	g := planarity.NewGraph()
	if err := planarity.InitGraph(g, 5); err != nil {
		t.Fatalf("InitGraph: %v", err)
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, {0, 2}} {
		if err := planarity.AddEdge(g, e[0], e[1]); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := WriteAdjacencyList(&buf, g); err != nil {
		t.Fatalf("WriteAdjacencyList: %v", err)
	}

	reread, err := ReadAdjacencyList(&buf)
	if err != nil {
		t.Fatalf("ReadAdjacencyList: %v", err)
	}

	if reread.GetOrder() != g.GetOrder() {
		t.Fatalf("GetOrder() = %d, want %d", reread.GetOrder(), g.GetOrder())
	}
	if reread.GetSize() != g.GetSize() {
		t.Fatalf("GetSize() = %d, want %d", reread.GetSize(), g.GetSize())
	}
	if !equalNeighborSets(neighborSets(t, g), neighborSets(t, reread)) {
		t.Errorf("neighbor sets diverged across round-trip")
	}
}

func TestAdjacencyMatrixRoundTrip(t *testing.T) {
	g := planarity.NewGraph()
	if err := planarity.InitGraph(g, 4); err != nil {
		t.Fatalf("InitGraph: %v", err)
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		if err := planarity.AddEdge(g, e[0], e[1]); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := WriteAdjacencyMatrix(&buf, g); err != nil {
		t.Fatalf("WriteAdjacencyMatrix: %v", err)
	}

	reread, err := ReadAdjacencyMatrix(&buf)
	if err != nil {
		t.Fatalf("ReadAdjacencyMatrix: %v", err)
	}
	if !equalNeighborSets(neighborSets(t, g), neighborSets(t, reread)) {
		t.Errorf("neighbor sets diverged across matrix round-trip")
	}
}

func TestTestCaptureRoundTrip(t *testing.T) {
	g := planarity.NewGraph()
	if err := planarity.InitGraph(g, 4); err != nil {
		t.Fatalf("InitGraph: %v", err)
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}} {
		if err := planarity.AddEdge(g, e[0], e[1]); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := WriteTestCapture(&buf, "p4", g); err != nil {
		t.Fatalf("WriteTestCapture: %v", err)
	}

	name, reread, err := ReadTestCapture(&buf)
	if err != nil {
		t.Fatalf("ReadTestCapture: %v", err)
	}
	if name != "p4" {
		t.Errorf("name = %q, want %q", name, "p4")
	}
	if !equalNeighborSets(neighborSets(t, g), neighborSets(t, reread)) {
		t.Errorf("neighbor sets diverged across test-capture round-trip")
	}
}
