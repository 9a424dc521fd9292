package routing

import (
	"log"

	"github.com/sarchlab/hopsim/report"
	"github.com/sarchlab/hopsim/sim"
	"github.com/sarchlab/hopsim/topology"
)

// A Network holds one node per topology vertex and one link per directed
// topology link.
type Network struct {
	topo  topology.Topology
	nodes []*Node
	links [][]*sim.Link
}

// Size returns the number of nodes.
func (n *Network) Size() int {
	return len(n.nodes)
}

// Node returns the node with the given index.
func (n *Network) Node(index int) *Node {
	return n.nodes[index]
}

// Nodes returns all the nodes, ordered by index.
func (n *Network) Nodes() []*Node {
	return n.nodes
}

// Link returns the link that the given node sends over as its link k.
func (n *Network) Link(node, link int) *sim.Link {
	return n.links[node][link]
}

// Components returns the nodes as simulation components.
func (n *Network) Components() []sim.Component {
	comps := make([]sim.Component, len(n.nodes))
	for i, node := range n.nodes {
		comps[i] = node
	}

	return comps
}

// Initialize lets every node prepare its first events.
func (n *Network) Initialize() {
	for _, node := range n.nodes {
		node.Initialize()
	}
}

// AcceptHook registers the hook to every node.
func (n *Network) AcceptHook(hook sim.Hook) {
	for _, node := range n.nodes {
		node.AcceptHook(hook)
	}
}

// AcceptLinkHook registers the hook to every link.
func (n *Network) AcceptLinkHook(hook sim.Hook) {
	for _, links := range n.links {
		for _, l := range links {
			l.AcceptHook(hook)
		}
	}
}

// AcceptPortHook registers the hook to every port of every node.
func (n *Network) AcceptPortHook(hook sim.Hook) {
	for _, node := range n.nodes {
		for _, p := range node.Ports() {
			p.AcceptHook(hook)
		}
	}
}

// NumSent returns the number of messages generated after arrivals in the
// whole network.
func (n *Network) NumSent() uint64 {
	var total uint64
	for _, node := range n.nodes {
		total += node.NumSent()
	}

	return total
}

// NumReceived returns the number of arrivals in the whole network.
func (n *Network) NumReceived() uint64 {
	var total uint64
	for _, node := range n.nodes {
		total += node.NumReceived()
	}

	return total
}

// Handle lets every node report. It is called when the simulation ends.
func (n *Network) Handle(_ sim.VTimeInSec) {
	for _, node := range n.nodes {
		node.Finish()
	}
}

// NetworkBuilder can build networks.
type NetworkBuilder struct {
	engine     sim.Engine
	topo       topology.Topology
	reporter   report.Reporter
	seed       int64
	latency    sim.VTimeInSec
	namePrefix string
}

// MakeNetworkBuilder creates a NetworkBuilder with default parameters.
func MakeNetworkBuilder() NetworkBuilder {
	return NetworkBuilder{
		latency:    0.1,
		namePrefix: "Node",
	}
}

// WithEngine sets the engine that runs the network.
func (b NetworkBuilder) WithEngine(engine sim.Engine) NetworkBuilder {
	b.engine = engine
	return b
}

// WithTopology sets the shape of the network.
func (b NetworkBuilder) WithTopology(topo topology.Topology) NetworkBuilder {
	b.topo = topo
	return b
}

// WithReporter sets where the nodes report when the simulation ends.
func (b NetworkBuilder) WithReporter(r report.Reporter) NetworkBuilder {
	b.reporter = r
	return b
}

// WithSeed sets the seed of the simulation.
func (b NetworkBuilder) WithSeed(seed int64) NetworkBuilder {
	b.seed = seed
	return b
}

// WithLinkLatency sets the time a message spends on every link.
func (b NetworkBuilder) WithLinkLatency(t sim.VTimeInSec) NetworkBuilder {
	b.latency = t
	return b
}

// WithNamePrefix sets the prefix of the node names. Nodes are named as
// Prefix[i].
func (b NetworkBuilder) WithNamePrefix(prefix string) NetworkBuilder {
	b.namePrefix = prefix
	return b
}

// Build creates the nodes and links the nodes according to the topology. The
// network registers itself to the engine so that the nodes report when the
// engine finishes.
func (b NetworkBuilder) Build() *Network {
	if b.engine == nil {
		log.Panic("engine is not set")
	}

	topology.MustBeValid(b.topo)

	n := &Network{topo: b.topo}

	nodeBuilder := MakeBuilder().
		WithEngine(b.engine).
		WithTopology(b.topo).
		WithReporter(b.reporter).
		WithSeed(b.seed)

	for i := 0; i < b.topo.NetworkSize(); i++ {
		name := sim.BuildNameWithIndex("", b.namePrefix, i)
		n.nodes = append(n.nodes, nodeBuilder.Build(name, i))
	}

	n.links = make([][]*sim.Link, len(n.nodes))
	for i, node := range n.nodes {
		b.connectNode(n, i, node)
	}

	b.engine.RegisterSimulationEndHandler(n)

	return n
}

func (b NetworkBuilder) connectNode(n *Network, i int, node *Node) {
	n.links[i] = make([]*sim.Link, node.LinkCount())

	for k := 0; k < node.LinkCount(); k++ {
		peer := n.nodes[b.topo.PeerOnLink(i, k)]

		link := sim.NewLink(
			sim.BuildNameWithIndex(node.Name(), "Link", k), b.engine, b.latency)
		link.PlugIn(node.OutPort(k))
		node.ConnectLink(k, peer.InPort())

		n.links[i][k] = link
	}
}
