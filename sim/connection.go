package sim

// SendError is returned when a port or a connection cannot take a message.
type SendError struct{}

// NewSendError creates a SendError.
func NewSendError() *SendError {
	return &SendError{}
}

// A Connection carries messages from the ports that send over it to the
// destination ports recorded in the messages.
type Connection interface {
	Named
	Hookable

	Send(msg Msg) *SendError
}

// HookPosConnStartTrans marks when a connection accepts a message.
var HookPosConnStartTrans = &HookPos{Name: "Conn Start Trans"}

// HookPosConnDeliver marks when a connection delivers a message.
var HookPosConnDeliver = &HookPos{Name: "Conn Deliver"}
