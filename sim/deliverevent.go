package sim

// DeliverEvent is the event that moves the message from the connection
// to the destination
type DeliverEvent struct {
	*EventBase

	Msg Msg
}

// NewDeliverEvent creates a new DeliverEvent
func NewDeliverEvent(t VTimeInSec, handler Handler, msg Msg) *DeliverEvent {
	e := new(DeliverEvent)
	e.EventBase = NewEventBase(t, handler)
	e.Msg = msg

	return e
}
