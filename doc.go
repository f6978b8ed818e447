// Package planarity implements the edge-addition planarity embedding
// algorithm of Boyer and Myrvold: given a simple undirected graph it decides
// whether the graph is planar (or, in OUTERPLANAR mode, outerplanar) and, on
// success, produces a combinatorial embedding — a rotation system admitting a
// crossing-free drawing. On failure it leaves enough state on the graph for
// an ObstructionIsolator to extract a Kuratowski (or K4/K2,3) subdivision.
//
// The engine is a single-threaded, synchronous value type: a *Graph owns all
// of its storage up front (vertex and arc arrays sized from N at InitGraph
// time); Walkup and orientation still allocate small scratch slices per
// call. Two *Graph values may
// be embedded concurrently from separate goroutines as long as neither is
// shared between them.
//
// Sibling packages build on this one: ioformat reads and writes the
// persisted graph formats, obstruction isolates a Kuratowski or outerplanar
// witness once Embed reports NonEmbeddable, and cmd/planarity is a thin CLI
// wiring both together.
package planarity
