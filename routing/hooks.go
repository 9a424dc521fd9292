package routing

import (
	"sync"

	"github.com/sarchlab/hopsim/sim"
	"go.uber.org/zap"
)

// MsgLogger is a hook that writes a line for every message that a node
// generates, forwards, or receives.
type MsgLogger struct {
	logger *zap.Logger
}

// NewMsgLogger creates a MsgLogger that writes into the given logger.
func NewMsgLogger(logger *zap.Logger) *MsgLogger {
	return &MsgLogger{logger: logger}
}

// Func writes the message information.
func (h *MsgLogger) Func(ctx sim.HookCtx) {
	msg, ok := ctx.Item.(*HopMsg)
	if !ok {
		return
	}

	node, ok := ctx.Domain.(*Node)
	if !ok {
		return
	}

	fields := []zap.Field{
		zap.Float64("time", float64(ctx.Now)),
		zap.String("node", node.Name()),
		zap.String("msg", msg.Name),
		zap.String("msg_id", msg.ID),
		zap.Int("hop_count", msg.HopCount),
	}

	switch ctx.Pos {
	case HookPosMsgGenerated:
		h.logger.Info("generating another message", fields...)
	case HookPosMsgForwarded:
		fields = append(fields, zap.Any("link", ctx.Detail))
		h.logger.Info("forwarding message", fields...)
	case HookPosMsgArrived:
		h.logger.Info("message arrived", fields...)
	}
}

// A Stopper can stop a simulation.
type Stopper interface {
	Stop()
}

// A ProgressTracker is notified of every arrival.
type ProgressTracker interface {
	IncrementFinished(amount uint64)
}

// ArrivalLimiter is a hook that stops the simulation after a number of
// messages arrive at their destinations.
type ArrivalLimiter struct {
	sync.Mutex

	stopper  Stopper
	limit    uint64
	arrivals uint64
	trackers []ProgressTracker
}

// NewArrivalLimiter creates an ArrivalLimiter that stops the stopper when the
// number of arrivals reaches the limit. A limit of 0 never stops.
func NewArrivalLimiter(stopper Stopper, limit uint64) *ArrivalLimiter {
	return &ArrivalLimiter{
		stopper: stopper,
		limit:   limit,
	}
}

// AddTracker registers a tracker to be notified of every arrival.
func (l *ArrivalLimiter) AddTracker(t ProgressTracker) {
	l.trackers = append(l.trackers, t)
}

// Arrivals returns the number of arrivals seen so far.
func (l *ArrivalLimiter) Arrivals() uint64 {
	l.Lock()
	defer l.Unlock()

	return l.arrivals
}

// Func counts the arrivals.
func (l *ArrivalLimiter) Func(ctx sim.HookCtx) {
	if ctx.Pos != HookPosMsgArrived {
		return
	}

	l.Lock()
	l.arrivals++
	reached := l.limit > 0 && l.arrivals == l.limit
	l.Unlock()

	for _, t := range l.trackers {
		t.IncrementFinished(1)
	}

	if reached {
		l.stopper.Stop()
	}
}
