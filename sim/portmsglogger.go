package sim

import (
	"reflect"

	"go.uber.org/zap"
)

// PortMsgLogger is a hook that logs messages as they go across a Port.
type PortMsgLogger struct {
	logger *zap.Logger
}

// NewPortMsgLogger returns a new PortMsgLogger which writes into the logger
// at debug level.
func NewPortMsgLogger(logger *zap.Logger) *PortMsgLogger {
	return &PortMsgLogger{logger: logger}
}

// Func writes the message information into the logger.
func (h *PortMsgLogger) Func(ctx HookCtx) {
	msg, ok := ctx.Item.(Msg)
	if !ok {
		return
	}

	port, ok := ctx.Domain.(Port)
	if !ok {
		return
	}

	meta := msg.Meta()
	fields := []zap.Field{
		zap.Float64("time", float64(ctx.Now)),
		zap.String("port", port.Name()),
		zap.String("pos", ctx.Pos.Name),
		zap.String("type", reflect.TypeOf(msg).String()),
		zap.String("id", meta.ID),
	}

	if meta.Src != nil {
		fields = append(fields, zap.String("src", meta.Src.Name()))
	}

	if meta.Dst != nil {
		fields = append(fields, zap.String("dst", meta.Dst.Name()))
	}

	h.logger.Debug("port msg", fields...)
}
