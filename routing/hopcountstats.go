package routing

import (
	"github.com/sarchlab/hopsim/report"
	"github.com/sarchlab/hopsim/stats"
)

// HopCountStats collects the hop counts of the messages that arrive at a
// node, both as an ordered sequence and as a distribution.
type HopCountStats struct {
	vector *stats.OutVector
	hist   *stats.Histogram
}

// NewHopCountStats creates an empty collector.
func NewHopCountStats() *HopCountStats {
	return &HopCountStats{
		vector: stats.NewOutVector(report.VectorName),
		hist:   stats.NewHistogram(report.HistogramName),
	}
}

// Record adds the hop count of an arrived message.
func (s *HopCountStats) Record(now float64, hopCount int) {
	s.vector.Record(now, float64(hopCount))
	s.hist.Collect(float64(hopCount))
}

// Len returns the number of recorded hop counts.
func (s *HopCountStats) Len() int {
	return s.vector.Len()
}

// Max returns the largest recorded hop count, or NaN before the first arrival.
func (s *HopCountStats) Max() float64 {
	return s.hist.Max()
}

// Sequence returns the recorded hop counts in arrival order.
func (s *HopCountStats) Sequence() []int {
	values := s.vector.Values()
	hops := make([]int, len(values))

	for i, v := range values {
		hops[i] = int(v)
	}

	return hops
}

// Samples returns the recorded hop counts with their arrival times.
func (s *HopCountStats) Samples() []stats.Sample {
	return s.vector.Samples()
}

// Summary returns the distribution of the recorded hop counts.
func (s *HopCountStats) Summary() stats.Summary {
	return s.hist.Summarize()
}
