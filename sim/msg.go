package sim

// A Msg is what ports send to each other over connections.
type Msg interface {
	Meta() *MsgMeta
}

// MsgMeta is the routing information of a Msg. Src and Dst are ports; the
// link fills RecvTime on delivery.
type MsgMeta struct {
	ID       string
	Src, Dst Port
	SendTime VTimeInSec
	RecvTime VTimeInSec
}
