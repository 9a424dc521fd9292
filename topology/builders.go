package topology

import "fmt"

// Ring connects every node to its previous and next node. Link 0 of node i
// leads to node i-1 and link 1 leads to node i+1. A ring of 2 nodes has one
// link on each node.
func Ring(n int) *Graph {
	g := NewGraph(n)
	if n == 2 {
		return g.Connect(0, 1)
	}

	for i := 0; i < n; i++ {
		g.AddLink(i, (i+n-1)%n)
		g.AddLink(i, (i+1)%n)
	}

	return g
}

// Line connects the nodes in a chain. Both end nodes have a single link.
func Line(n int) *Graph {
	g := NewGraph(n)
	for i := 0; i+1 < n; i++ {
		g.Connect(i, i+1)
	}

	return g
}

// Star connects node 0 with all the other nodes.
func Star(n int) *Graph {
	g := NewGraph(n)
	for i := 1; i < n; i++ {
		g.Connect(0, i)
	}

	return g
}

// FullMesh connects every pair of nodes. The links of a node are ordered by
// the peer index.
func FullMesh(n int) *Graph {
	g := NewGraph(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				g.AddLink(i, j)
			}
		}
	}

	return g
}

// Kinds lists the names accepted by ByKind.
var Kinds = []string{"ring", "line", "star", "mesh"}

// ByKind builds a regular topology by name.
func ByKind(kind string, n int) (*Graph, error) {
	switch kind {
	case "ring":
		return Ring(n), nil
	case "line":
		return Line(n), nil
	case "star":
		return Star(n), nil
	case "mesh":
		return FullMesh(n), nil
	default:
		return nil, fmt.Errorf("unknown topology kind %q, expecting one of %v",
			kind, Kinds)
	}
}
