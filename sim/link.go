package sim

import (
	"fmt"
	"log"
)

// A Link is a one-way connection that delivers every message a fixed amount
// of time after it is sent. Messages sent over the same link arrive in the
// order they are sent.
type Link struct {
	HookableBase

	name    string
	engine  EventScheduler
	latency VTimeInSec
	src     Port

	numDelivered uint64
}

// NewLink creates a new Link. The latency can be zero, in which case the
// message is delivered at the time it is sent, after the sending event
// completes.
func NewLink(name string, engine EventScheduler, latency VTimeInSec) *Link {
	if latency < 0 {
		log.Panicf("link %s cannot have a negative latency", name)
	}

	return &Link{
		name:    name,
		engine:  engine,
		latency: latency,
	}
}

// Name returns the name of the link.
func (l *Link) Name() string {
	return l.name
}

// Latency returns the time a message spends on the link.
func (l *Link) Latency() VTimeInSec {
	return l.latency
}

// NumDelivered returns the number of messages the link has delivered.
func (l *Link) NumDelivered() uint64 {
	return l.numDelivered
}

// PlugIn attaches the sending end of the link.
func (l *Link) PlugIn(port Port) {
	if l.src != nil {
		panic(fmt.Sprintf("link %s already has a sending port", l.name))
	}

	l.src = port
	port.SetConnection(l)
}

// Send schedules the delivery of the message.
func (l *Link) Send(msg Msg) *SendError {
	meta := msg.Meta()
	if meta.Src != l.src {
		panic(fmt.Sprintf("msg is not sent from the port plugged in to %s",
			l.name))
	}

	now := l.engine.CurrentTime()
	evt := NewDeliverEvent(now+l.latency, l, msg)
	l.engine.Schedule(evt)

	l.InvokeHook(HookCtx{
		Domain: l,
		Now:    now,
		Pos:    HookPosConnStartTrans,
		Item:   msg,
	})

	return nil
}

// Handle delivers the message carried by a DeliverEvent.
func (l *Link) Handle(evt Event) error {
	switch evt := evt.(type) {
	case *DeliverEvent:
		l.deliver(evt)
	default:
		log.Panicf("cannot handle event of type %T", evt)
	}

	return nil
}

func (l *Link) deliver(evt *DeliverEvent) {
	msg := evt.Msg
	msg.Meta().RecvTime = evt.Time()

	err := msg.Meta().Dst.Deliver(msg)
	if err != nil {
		log.Panicf("link %s failed to deliver msg %s", l.name, msg.Meta().ID)
	}

	l.numDelivered++

	l.InvokeHook(HookCtx{
		Domain: l,
		Now:    evt.Time(),
		Pos:    HookPosConnDeliver,
		Item:   msg,
	})
}
