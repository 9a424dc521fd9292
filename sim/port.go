package sim

import (
	"fmt"
	"sync"
)

// HookPosPortMsgSend marks when a message is sent out from the port.
var HookPosPortMsgSend = &HookPos{Name: "Port Msg Send"}

// HookPosPortMsgRecvd marks when an inbound message arrives at a the given port
var HookPosPortMsgRecvd = &HookPos{Name: "Port Msg Recv"}

// HookPosPortMsgRetrieveIncoming marks when an inbound message is retrieved
// from the incoming buffer.
var HookPosPortMsgRetrieveIncoming = &HookPos{
	Name: "Port Msg Retrieve Incoming",
}

// A Port is owned by a component and is used to plugin connections
type Port interface {
	Named
	Hookable

	SetConnection(conn Connection)
	Connection() Connection
	Component() Component

	// For connection
	Deliver(msg Msg) *SendError

	// For component
	Send(msg Msg) *SendError
	RetrieveIncoming() Msg
	PeekIncoming() Msg
}

// defaultPort implements the port interface.
type defaultPort struct {
	HookableBase

	lock sync.Mutex
	name string
	comp Component
	conn Connection

	incomingBuf Buffer
}

// NewPort creates a new port that belongs to the given component. A
// incomingBufCap that is not positive makes the incoming buffer unbounded.
func NewPort(comp Component, incomingBufCap int, name string) Port {
	p := new(defaultPort)
	p.comp = comp
	p.name = name
	p.incomingBuf = NewBuffer(name+".IncomingBuf", incomingBufCap)

	return p
}

// SetConnection sets which connection plugged in to this port.
func (p *defaultPort) SetConnection(conn Connection) {
	if p.conn != nil {
		panicMsg := fmt.Sprintf(
			"connection already set to %s, now connecting to %s",
			p.conn.Name(), conn.Name(),
		)
		panic(panicMsg)
	}

	p.conn = conn
}

// Connection returns the connection plugged in to this port.
func (p *defaultPort) Connection() Connection {
	return p.conn
}

// Component returns the owner component of the port.
func (p *defaultPort) Component() Component {
	return p.comp
}

// IncomingBuffer returns the buffer that holds the delivered messages.
func (p *defaultPort) IncomingBuffer() Buffer {
	return p.incomingBuf
}

// Name returns the name of the port.
func (p *defaultPort) Name() string {
	return p.name
}

// Send is used to send a message out from a component
func (p *defaultPort) Send(msg Msg) *SendError {
	p.msgMustBeValid(msg)

	hookCtx := HookCtx{
		Domain: p,
		Now:    msg.Meta().SendTime,
		Pos:    HookPosPortMsgSend,
		Item:   msg,
	}
	p.InvokeHook(hookCtx)

	return p.conn.Send(msg)
}

func (p *defaultPort) msgMustBeValid(msg Msg) {
	if p.conn == nil {
		panic("port " + p.name + " is not connected")
	}

	meta := msg.Meta()
	if meta.Src != p {
		panic("sending port is not msg src")
	}

	if meta.Dst == nil {
		panic("destination of the msg is not set")
	}

	if meta.Src == meta.Dst {
		panic("sending back to src")
	}
}

// Deliver is used to deliver a message to a component
func (p *defaultPort) Deliver(msg Msg) *SendError {
	p.lock.Lock()

	if !p.incomingBuf.CanPush() {
		p.lock.Unlock()
		return NewSendError()
	}

	hookCtx := HookCtx{
		Domain: p,
		Now:    msg.Meta().RecvTime,
		Pos:    HookPosPortMsgRecvd,
		Item:   msg,
	}
	p.InvokeHook(hookCtx)

	p.incomingBuf.Push(msg)
	p.lock.Unlock()

	if p.comp != nil {
		p.comp.NotifyRecv(msg.Meta().RecvTime, p)
	}

	return nil
}

// RetrieveIncoming is used by the component to take a message from the
// incoming buffer
func (p *defaultPort) RetrieveIncoming() Msg {
	p.lock.Lock()

	msg := p.incomingBuf.Pop()
	p.lock.Unlock()

	if msg == nil {
		return nil
	}

	hookCtx := HookCtx{
		Domain: p,
		Now:    msg.Meta().RecvTime,
		Pos:    HookPosPortMsgRetrieveIncoming,
		Item:   msg,
	}
	p.InvokeHook(hookCtx)

	return msg
}

// PeekIncoming returns the first message in the incoming buffer without
// removing it.
func (p *defaultPort) PeekIncoming() Msg {
	p.lock.Lock()
	defer p.lock.Unlock()

	return p.incomingBuf.Peek()
}
