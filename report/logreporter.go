package report

import "go.uber.org/zap"

// LogReporter writes the reports into a logger.
type LogReporter struct {
	logger *zap.Logger
}

// NewLogReporter creates a LogReporter.
func NewLogReporter(logger *zap.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

// ReportNode logs the counters and the hop count summary of the node.
func (r *LogReporter) ReportNode(nr NodeReport) {
	fields := []zap.Field{
		zap.String("node", nr.Name),
		zap.Uint64("sent", nr.Sent),
		zap.Uint64("received", nr.Received),
	}

	if nr.HopCount.Count > 0 {
		fields = append(fields,
			zap.Float64("max_hop_count", nr.MaxHopCount),
			zap.Float64("min_hop_count", nr.HopCount.Min),
			zap.Float64("mean_hop_count", nr.HopCount.Mean),
		)
	}

	r.logger.Info("node finished", fields...)
}
