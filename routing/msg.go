// Package routing simulates messages that travel over randomly chosen links
// until they reach their randomly chosen destinations.
package routing

import (
	"fmt"

	"github.com/sarchlab/hopsim/sim"
)

// HopMsg is a message that travels from its source node to its destination
// node and counts the links it traverses.
type HopMsg struct {
	sim.MsgMeta

	Name        string
	Source      int
	Destination int
	HopCount    int
}

// NewHopMsg creates a message that has not taken any hop yet.
func NewHopMsg(src, dst int) *HopMsg {
	msg := &HopMsg{
		Name:        fmt.Sprintf("From Source %d to Destination %d", src, dst),
		Source:      src,
		Destination: dst,
	}
	msg.ID = sim.GetIDGenerator().Generate()

	return msg
}

// Meta returns the meta data of the message.
func (m *HopMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

func (m *HopMsg) String() string {
	return m.Name
}
