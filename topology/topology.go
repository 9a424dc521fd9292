// Package topology describes the nodes of a network and the outgoing links of
// every node.
package topology

import "fmt"

// A Topology answers how the nodes of a network are linked.
type Topology interface {
	// NetworkSize returns the number of nodes. Nodes are numbered from 0.
	NetworkSize() int

	// LinkCount returns the number of outgoing links of a node.
	LinkCount(node int) int

	// PeerOnLink returns the node on the other end of an outgoing link.
	PeerOnLink(node, link int) int
}

// Graph is a Topology that stores the outgoing links of every node in the
// order they are added.
type Graph struct {
	links [][]int
}

// NewGraph creates a graph with n nodes and no links.
func NewGraph(n int) *Graph {
	if n < 0 {
		panic(fmt.Sprintf("cannot create a graph with %d nodes", n))
	}

	return &Graph{links: make([][]int, n)}
}

// NetworkSize returns the number of nodes.
func (g *Graph) NetworkSize() int {
	return len(g.links)
}

// LinkCount returns the number of outgoing links of the node.
func (g *Graph) LinkCount(node int) int {
	g.nodeMustExist(node)
	return len(g.links[node])
}

// PeerOnLink returns the node the given outgoing link leads to.
func (g *Graph) PeerOnLink(node, link int) int {
	g.nodeMustExist(node)

	if link < 0 || link >= len(g.links[node]) {
		panic(fmt.Sprintf("node %d does not have link %d", node, link))
	}

	return g.links[node][link]
}

// AddLink adds an outgoing link from node a to node b.
func (g *Graph) AddLink(a, b int) *Graph {
	g.nodeMustExist(a)
	g.links[a] = append(g.links[a], b)

	return g
}

// Connect adds a link from a to b and a link from b to a.
func (g *Graph) Connect(a, b int) *Graph {
	return g.AddLink(a, b).AddLink(b, a)
}

func (g *Graph) nodeMustExist(node int) {
	if node < 0 || node >= len(g.links) {
		panic(fmt.Sprintf("node %d is not in a network of %d nodes",
			node, len(g.links)))
	}
}
