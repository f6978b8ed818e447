// Command planarity is the thin CLI driver §6 describes as the one piece of
// the original interactive menu this repository reimplements: read an
// adjacency-list file, embed it under a chosen mode, and print the result.
// The full interactive menu (keys {M,N,O,P,D,2,3,R,X}, random-graph
// generation, the embedded/obstructed/adjlist/error output subdirectories)
// is out of core scope per spec.md §1 and is not reproduced here.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/embedplane/planarity"
	"github.com/embedplane/planarity/ioformat"
	"github.com/embedplane/planarity/obstruction"
)

func main() {
	mode := flag.String("mode", "planar", "embedding mode: planar, outerplanar, drawplanar, k23, k33")
	path := flag.String("file", "", "adjacency-list file to read (default: stdin)")
	flag.Parse()

	flags, err := parseMode(*mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	in := os.Stdin
	if *path != "" {
		f, err := os.Open(*path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	g, err := ioformat.ReadAdjacencyList(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "planarity: read:", err)
		os.Exit(1)
	}

	if r := planarity.Preprocess(g); r != planarity.OK {
		fmt.Fprintln(os.Stderr, "planarity: preprocess failed:", r)
		os.Exit(1)
	}

	result := planarity.Embed(g, flags)
	switch result {
	case planarity.OK:
		fmt.Printf("%s: planar (mode=%s)\n", describeMode(flags), flags)
	case planarity.NonEmbeddable:
		fmt.Printf("%s: non-embeddable (mode=%s, minor hint=%s)\n", describeMode(flags), flags, g.MinorType())
		if root, ok := g.BlockedRoot(); ok {
			if iso, err := isolate(flags, g, root); err == nil {
				fmt.Printf("obstruction: %s on vertices %v\n", iso.Minor, iso.Vertices)
			}
		}
	case planarity.Internal:
		fmt.Fprintln(os.Stderr, "planarity: internal error during embedding")
		os.Exit(2)
	}
}

func isolate(flags planarity.Flags, g *planarity.Graph, root int) (obstruction.Result, error) {
	if flags == planarity.Outerplanar {
		return obstruction.IsolateOuterplanarMinor(g, root)
	}
	return obstruction.IsolateKuratowski(g, root)
}

func describeMode(f planarity.Flags) string {
	if f == planarity.Outerplanar {
		return "outerplanar"
	}
	return "planar"
}

func parseMode(s string) (planarity.Flags, error) {
	switch s {
	case "planar":
		return planarity.Planar, nil
	case "outerplanar":
		return planarity.Outerplanar, nil
	case "drawplanar":
		return planarity.DrawPlanar, nil
	case "k23":
		return planarity.SearchK23, nil
	case "k33":
		return planarity.SearchK33, nil
	default:
		return 0, fmt.Errorf("planarity: unknown mode %q", s)
	}
}
