// Package ioformat implements the persisted text formats of §6: the
// adjacency-list and adjacency-matrix graph formats, and the test-capture
// (test.dat) edge-pair format. All three are fixed-token, line-oriented
// grammars, so this package reads and writes them with bufio/strconv/fmt
// rather than a parser-combinator library — see DESIGN.md for why that
// would be the over-engineered choice here.
//
// ioformat is a concrete, swappable collaborator behind the persisted-
// format interface §6 names; the embedding engine in package planarity
// never imports it.
package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/embedplane/planarity"
)

// WriteAdjacencyList writes g in the adjacency-list format of §6: a header
// line "N M", then one line per vertex "i: n1 n2 ... nk -1", then a
// trailing line "N: -1".
func WriteAdjacencyList(w io.Writer, g *planarity.Graph) error {
	bw := bufio.NewWriter(w)
	n := g.GetOrder()
	if _, err := fmt.Fprintf(bw, "%d %d\n", n, g.GetSize()); err != nil {
		return err
	}
	for v := 0; v < n; v++ {
		neighbors, err := g.Neighbors(v)
		if err != nil {
			return err
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%d:", v)
		for _, nb := range neighbors {
			fmt.Fprintf(&b, " %d", nb)
		}
		b.WriteString(" -1\n")
		if _, err := bw.WriteString(b.String()); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "%d: -1\n", n); err != nil {
		return err
	}
	return bw.Flush()
}

// ReadAdjacencyList parses the adjacency-list format of §6 and returns a
// freshly built, un-embedded *planarity.Graph (AddEdge is called once per
// distinct edge it sees, so an edge may be listed on one or both of its
// endpoints' lines; WriteAdjacencyList lists it on both).
func ReadAdjacencyList(r io.Reader) (*planarity.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		return nil, fmt.Errorf("ioformat: empty adjacency-list input")
	}
	header := strings.Fields(sc.Text())
	if len(header) < 1 {
		return nil, fmt.Errorf("ioformat: malformed adjacency-list header %q", sc.Text())
	}
	n, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, fmt.Errorf("ioformat: malformed vertex count %q: %w", header[0], err)
	}

	g := planarity.NewGraph()
	if err := planarity.InitGraph(g, n); err != nil {
		return nil, err
	}

	seen := make(map[[2]int]bool)
	for v := 0; v < n; v++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("ioformat: truncated adjacency-list input at vertex %d", v)
		}
		line := sc.Text()
		colon := strings.IndexByte(line, ':')
		if colon < 0 {
			return nil, fmt.Errorf("ioformat: malformed vertex line %q", line)
		}
		vi, err := strconv.Atoi(strings.TrimSpace(line[:colon]))
		if err != nil || vi != v {
			return nil, fmt.Errorf("ioformat: vertex line %q out of order (expected %d)", line, v)
		}
		for _, tok := range strings.Fields(line[colon+1:]) {
			nb, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("ioformat: malformed neighbor token %q: %w", tok, err)
			}
			if nb == -1 {
				break
			}
			key := [2]int{v, nb}
			if v > nb {
				key = [2]int{nb, v}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			if err := planarity.AddEdge(g, v, nb); err != nil {
				return nil, err
			}
		}
	}
	// Trailing "N: -1" sentinel line, consumed but not otherwise validated.
	sc.Scan()
	return g, sc.Err()
}

// WriteAdjacencyMatrix writes g as N lines of N ASCII bits (§6).
func WriteAdjacencyMatrix(w io.Writer, g *planarity.Graph) error {
	bw := bufio.NewWriter(w)
	n := g.GetOrder()
	for v := 0; v < n; v++ {
		row := make([]byte, n)
		neighbors, err := g.Neighbors(v)
		if err != nil {
			return err
		}
		adj := make(map[int]bool, len(neighbors))
		for _, nb := range neighbors {
			adj[nb] = true
		}
		for u := 0; u < n; u++ {
			if adj[u] {
				row[u] = '1'
			} else {
				row[u] = '0'
			}
		}
		row = append(row, '\n')
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadAdjacencyMatrix parses N lines of N ASCII bits into a freshly built,
// un-embedded *planarity.Graph.
func ReadAdjacencyMatrix(r io.Reader) (*planarity.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var rows []string
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	n := len(rows)
	g := planarity.NewGraph()
	if err := planarity.InitGraph(g, n); err != nil {
		return nil, err
	}
	for v, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("ioformat: row %d has length %d, want %d", v, len(row), n)
		}
		for u := v + 1; u < n; u++ {
			if row[u] == '1' {
				if err := planarity.AddEdge(g, v, u); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}

// WriteTestCapture writes g in the test.dat format of §6: one line with
// name, then 1-based edge pairs "u+1 v+1", terminated by "0 0".
func WriteTestCapture(w io.Writer, name string, g *planarity.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, name); err != nil {
		return err
	}
	n := g.GetOrder()
	written := make(map[[2]int]bool)
	for v := 0; v < n; v++ {
		neighbors, err := g.Neighbors(v)
		if err != nil {
			return err
		}
		for _, nb := range neighbors {
			key := [2]int{v, nb}
			if v > nb {
				key = [2]int{nb, v}
			}
			if written[key] {
				continue
			}
			written[key] = true
			if _, err := fmt.Fprintf(bw, "%d %d\n", key[0]+1, key[1]+1); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintln(bw, "0 0"); err != nil {
		return err
	}
	return bw.Flush()
}

// ReadTestCapture parses the test.dat format of §6 and returns the graph
// name together with a freshly built, un-embedded *planarity.Graph sized to
// the highest 1-based vertex index seen.
func ReadTestCapture(r io.Reader) (name string, g *planarity.Graph, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		return "", nil, fmt.Errorf("ioformat: empty test-capture input")
	}
	name = sc.Text()

	var pairs [][2]int
	maxV := 0
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		u, err1 := strconv.Atoi(fields[0])
		v, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			return "", nil, fmt.Errorf("ioformat: malformed edge pair %q", sc.Text())
		}
		if u == 0 && v == 0 {
			break
		}
		if u > maxV {
			maxV = u
		}
		if v > maxV {
			maxV = v
		}
		pairs = append(pairs, [2]int{u - 1, v - 1})
	}
	if err := sc.Err(); err != nil {
		return "", nil, err
	}

	g = planarity.NewGraph()
	if err := planarity.InitGraph(g, maxV); err != nil {
		return "", nil, err
	}
	for _, p := range pairs {
		if err := planarity.AddEdge(g, p[0], p[1]); err != nil {
			return "", nil, err
		}
	}
	return name, g, nil
}
