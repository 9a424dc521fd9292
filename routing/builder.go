package routing

import (
	"fmt"
	"math/rand"

	"github.com/sarchlab/hopsim/report"
	"github.com/sarchlab/hopsim/sim"
	"github.com/sarchlab/hopsim/topology"
)

// Builder can build nodes.
type Builder struct {
	engine   sim.EventScheduler
	topo     topology.Topology
	reporter report.Reporter
	seed     int64
}

// MakeBuilder creates a Builder with seed 0.
func MakeBuilder() Builder {
	return Builder{}
}

// WithEngine sets the engine that delivers the events of the nodes.
func (b Builder) WithEngine(engine sim.EventScheduler) Builder {
	b.engine = engine
	return b
}

// WithTopology sets the network the nodes belong to.
func (b Builder) WithTopology(topo topology.Topology) Builder {
	b.topo = topo
	return b
}

// WithReporter sets where the nodes report when the simulation ends.
func (b Builder) WithReporter(reporter report.Reporter) Builder {
	b.reporter = reporter
	return b
}

// WithSeed sets the seed the random streams of the nodes derive from.
func (b Builder) WithSeed(seed int64) Builder {
	b.seed = seed
	return b
}

func (b Builder) parametersMustBeValid(index int) {
	if b.engine == nil {
		panic("engine is not set")
	}

	if b.topo == nil {
		panic("topology is not set")
	}

	if b.topo.NetworkSize() < 2 {
		panic(&topology.Error{Node: -1, Link: -1, Err: topology.ErrTooFewNodes})
	}

	if index < 0 || index >= b.topo.NetworkSize() {
		panic(fmt.Sprintf("node %d is not in the topology", index))
	}

	if b.topo.LinkCount(index) == 0 {
		panic(&topology.Error{
			Node: index, Link: -1, Err: topology.ErrNoOutgoingLinks})
	}
}

// Build creates the node with the given identity. The node gets one outgoing
// port per link, named Port[k], and one incoming port named In.
func (b Builder) Build(name string, index int) *Node {
	b.parametersMustBeValid(index)
	sim.NameMustBeValid(name)

	n := &Node{
		engine:    b.engine,
		topo:      b.topo,
		reporter:  b.reporter,
		index:     index,
		rng:       rand.New(rand.NewSource(NodeSeed(b.seed, index))),
		hopCounts: NewHopCountStats(),
	}
	n.ComponentBase = sim.NewComponentBase(name)

	n.inPort = sim.NewPort(n, 0, sim.BuildName(name, "In"))
	n.AddPort("In", n.inPort)

	linkCount := b.topo.LinkCount(index)
	n.outPorts = make([]sim.Port, linkCount)
	n.peerPorts = make([]sim.Port, linkCount)

	for k := 0; k < linkCount; k++ {
		portName := sim.BuildNameWithIndex("", "Port", k)
		n.outPorts[k] = sim.NewPort(n, 0, sim.BuildName(name, portName))
		n.AddPort(portName, n.outPorts[k])
	}

	return n
}

// NodeSeed derives the seed of a node's random stream from the simulation
// seed, so that the streams of different nodes do not overlap.
func NodeSeed(seed int64, index int) int64 {
	const golden = 0x9E3779B97F4A7C15

	x := uint64(seed) + uint64(index+1)*golden
	x ^= x >> 30
	x *= 0xBF58476D1CE4E5B9
	x ^= x >> 27
	x *= 0x94D049BB133111EB
	x ^= x >> 31

	return int64(x)
}
