package sim

// VTimeInSec is a point in simulated time, in seconds.
type VTimeInSec float64

// An Event happens at a point in simulated time and is handled by exactly
// one Handler.
type Event interface {
	Time() VTimeInSec
	Handler() Handler
}

// A Handler owns the events scheduled for it and is the only state those
// events may modify.
type Handler interface {
	Handle(e Event) error
}

// EventBase can be embedded to implement Event.
type EventBase struct {
	time    VTimeInSec
	handler Handler
}

// NewEventBase creates an EventBase that happens at t and is handled by
// handler.
func NewEventBase(t VTimeInSec, handler Handler) *EventBase {
	return &EventBase{time: t, handler: handler}
}

// Time returns when the event happens.
func (e EventBase) Time() VTimeInSec {
	return e.time
}

// Handler returns the handler of the event.
func (e EventBase) Handler() Handler {
	return e.handler
}
