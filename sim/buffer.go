package sim

// HookPosBufPush marks when a message is pushed into a buffer.
var HookPosBufPush = &HookPos{Name: "Buffer Push"}

// HookPosBufPop marks when a message is popped from a buffer.
var HookPosBufPop = &HookPos{Name: "Buffer Pop"}

// A Buffer is a FIFO queue of messages.
type Buffer interface {
	Named
	Hookable

	CanPush() bool
	Push(msg Msg)
	Pop() Msg
	Peek() Msg
	Capacity() int
	Size() int
}

// NewBuffer creates a buffer. A capacity that is not positive means the
// buffer never fills up.
func NewBuffer(name string, capacity int) Buffer {
	return &msgBuffer{name: name, capacity: capacity}
}

// msgBuffer keeps the messages in a slice and advances a head index on pop.
// The consumed prefix is dropped once it is at least half of the slice.
type msgBuffer struct {
	HookableBase

	name     string
	capacity int
	msgs     []Msg
	head     int
}

func (b *msgBuffer) Name() string {
	return b.name
}

func (b *msgBuffer) Size() int {
	return len(b.msgs) - b.head
}

func (b *msgBuffer) Capacity() int {
	return b.capacity
}

func (b *msgBuffer) CanPush() bool {
	return b.capacity <= 0 || b.Size() < b.capacity
}

func (b *msgBuffer) Push(msg Msg) {
	if !b.CanPush() {
		panic("buffer " + b.name + " overflow")
	}

	b.msgs = append(b.msgs, msg)
	b.invoke(HookPosBufPush, msg)
}

func (b *msgBuffer) Pop() Msg {
	if b.Size() == 0 {
		return nil
	}

	msg := b.msgs[b.head]
	b.msgs[b.head] = nil
	b.head++

	if b.head*2 >= len(b.msgs) {
		b.msgs = append(b.msgs[:0], b.msgs[b.head:]...)
		b.head = 0
	}

	b.invoke(HookPosBufPop, msg)

	return msg
}

func (b *msgBuffer) Peek() Msg {
	if b.Size() == 0 {
		return nil
	}

	return b.msgs[b.head]
}

func (b *msgBuffer) invoke(pos *HookPos, msg Msg) {
	if b.NumHooks() == 0 {
		return
	}

	b.InvokeHook(HookCtx{Domain: b, Pos: pos, Item: msg})
}
