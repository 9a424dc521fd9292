package routing

import (
	"fmt"
	"math/rand"
	"reflect"

	"github.com/sarchlab/hopsim/report"
	"github.com/sarchlab/hopsim/sim"
	"github.com/sarchlab/hopsim/topology"
)

// HookPosMsgGenerated marks when a node creates a message.
var HookPosMsgGenerated = &sim.HookPos{Name: "Msg Generated"}

// HookPosMsgForwarded marks when a node sends a message over a link. The
// detail is the index of the link.
var HookPosMsgForwarded = &sim.HookPos{Name: "Msg Forwarded"}

// HookPosMsgArrived marks when a message reaches its destination. The detail
// is the hop count of the message.
var HookPosMsgArrived = &sim.HookPos{Name: "Msg Arrived"}

// bootstrapEvent carries the very first message to the node that generates
// it.
type bootstrapEvent struct {
	*sim.EventBase

	msg *HopMsg
}

// Node generates messages, forwards the messages that are not addressed to it
// and records the hop counts of the messages that are.
type Node struct {
	*sim.ComponentBase

	engine   sim.EventScheduler
	topo     topology.Topology
	reporter report.Reporter
	rng      *rand.Rand

	index     int
	inPort    sim.Port
	outPorts  []sim.Port
	peerPorts []sim.Port

	numSent     uint64
	numReceived uint64
	hopCounts   *HopCountStats
}

// Index returns the identity of the node in the topology.
func (n *Node) Index() int {
	return n.index
}

// LinkCount returns the number of outgoing links.
func (n *Node) LinkCount() int {
	return len(n.outPorts)
}

// InPort returns the port that receives the messages from all the links
// leading to the node.
func (n *Node) InPort() sim.Port {
	return n.inPort
}

// OutPort returns the port that sends messages over the given link.
func (n *Node) OutPort(link int) sim.Port {
	return n.outPorts[link]
}

// NumSent returns the number of messages the node generated after an arrival.
func (n *Node) NumSent() uint64 {
	return n.numSent
}

// NumReceived returns the number of messages that arrived at the node.
func (n *Node) NumReceived() uint64 {
	return n.numReceived
}

// HopCounts returns the hop count statistics of the node.
func (n *Node) HopCounts() *HopCountStats {
	return n.hopCounts
}

// ConnectLink sets the port that the given outgoing link leads to.
func (n *Node) ConnectLink(link int, peerPort sim.Port) {
	n.peerPorts[link] = peerPort
}

// Initialize lets node 0 inject the first message. The message is delivered
// to node 0 itself at time 0 and is handled as any incoming message.
func (n *Node) Initialize() {
	if n.index != 0 {
		return
	}

	msg := n.Generate()
	evt := bootstrapEvent{
		EventBase: sim.NewEventBase(0, n),
		msg:       msg,
	}
	n.engine.Schedule(evt)
}

// Handle handles the events scheduled for the node.
func (n *Node) Handle(e sim.Event) error {
	n.Lock()
	defer n.Unlock()

	switch e := e.(type) {
	case bootstrapEvent:
		n.handleMsg(e.Time(), e.msg)
	default:
		panic("cannot handle event of type " + reflect.TypeOf(e).String())
	}

	return nil
}

// NotifyRecv handles the messages delivered to the port.
func (n *Node) NotifyRecv(now sim.VTimeInSec, port sim.Port) {
	n.Lock()
	defer n.Unlock()

	for {
		item := port.RetrieveIncoming()
		if item == nil {
			return
		}

		msg, ok := item.(*HopMsg)
		if !ok {
			panic("cannot process msg of type " + reflect.TypeOf(item).String())
		}

		n.handleMsg(now, msg)
	}
}

func (n *Node) handleMsg(now sim.VTimeInSec, msg *HopMsg) {
	if msg.Destination != n.index {
		n.Forward(msg)
		return
	}

	hopCount := msg.HopCount
	n.hopCounts.Record(float64(now), hopCount)
	n.numReceived++

	n.InvokeHook(sim.HookCtx{
		Domain: n,
		Now:    now,
		Pos:    HookPosMsgArrived,
		Item:   msg,
		Detail: hopCount,
	})

	newMsg := n.Generate()
	n.Forward(newMsg)
	n.numSent++
}

// Generate creates a message addressed to a uniformly chosen node other than
// this node.
func (n *Node) Generate() *HopMsg {
	size := n.topo.NetworkSize()
	if size < 2 {
		panic(&topology.Error{Node: -1, Link: -1, Err: topology.ErrTooFewNodes})
	}

	dst := n.intUniform(0, size-2)
	if dst >= n.index {
		dst++
	}

	msg := NewHopMsg(n.index, dst)

	n.InvokeHook(sim.HookCtx{
		Domain: n,
		Now:    n.engine.CurrentTime(),
		Pos:    HookPosMsgGenerated,
		Item:   msg,
	})

	return msg
}

// Forward sends the message over a uniformly chosen outgoing link. The node
// must not use the message after Forward returns.
func (n *Node) Forward(msg *HopMsg) {
	if len(n.outPorts) == 0 {
		panic(&topology.Error{
			Node: n.index, Link: -1, Err: topology.ErrNoOutgoingLinks})
	}

	msg.HopCount++

	link := n.intUniform(0, len(n.outPorts)-1)
	now := n.engine.CurrentTime()

	msg.Src = n.outPorts[link]
	msg.Dst = n.peerPorts[link]
	msg.SendTime = now

	if msg.Dst == nil {
		panic(fmt.Sprintf("link %d of %s is not connected", link, n.Name()))
	}

	n.InvokeHook(sim.HookCtx{
		Domain: n,
		Now:    now,
		Pos:    HookPosMsgForwarded,
		Item:   msg,
		Detail: link,
	})

	n.outPorts[link].Send(msg)
}

// intUniform returns an integer in [a, b] with uniform probability.
func (n *Node) intUniform(a, b int) int {
	return a + n.rng.Intn(b-a+1)
}

// Finish reports the counters and the statistics of the node.
func (n *Node) Finish() {
	n.Lock()
	defer n.Unlock()

	if n.reporter == nil {
		return
	}

	n.reporter.ReportNode(report.NodeReport{
		Name:        n.Name(),
		Index:       n.index,
		Sent:        n.numSent,
		Received:    n.numReceived,
		MaxHopCount: n.hopCounts.Max(),
		HopCount:    n.hopCounts.Summary(),
		HopCounts:   n.hopCounts.Samples(),
	})
}
