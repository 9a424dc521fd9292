// Package report defines what every node reports when a simulation ends and
// the places the reports can go.
package report

import (
	"sort"
	"sync"

	"github.com/sarchlab/hopsim/stats"
)

// Names of the reported quantities.
const (
	SentName        = "#sent"
	ReceivedName    = "#received"
	MaxHopCountName = "maxHopCount"
	HistogramName   = "hop count"
	VectorName      = "HopCount"
)

// NodeReport holds the final counters and statistics of a node.
type NodeReport struct {
	Name     string
	Index    int
	Sent     uint64
	Received uint64

	// MaxHopCount is NaN if the node never received a message.
	MaxHopCount float64

	HopCount  stats.Summary
	HopCounts []stats.Sample
}

// A Reporter receives the report of every node at the end of a simulation.
type Reporter interface {
	ReportNode(r NodeReport)
}

// MultiReporter forwards every report to all its reporters.
type MultiReporter []Reporter

// ReportNode forwards the report.
func (m MultiReporter) ReportNode(r NodeReport) {
	for _, reporter := range m {
		reporter.ReportNode(r)
	}
}

// Collector keeps the reports in memory.
type Collector struct {
	lock    sync.Mutex
	reports []NodeReport
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// ReportNode stores the report.
func (c *Collector) ReportNode(r NodeReport) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.reports = append(c.reports, r)
}

// Reports returns the collected reports ordered by node index.
func (c *Collector) Reports() []NodeReport {
	c.lock.Lock()
	defer c.lock.Unlock()

	reports := make([]NodeReport, len(c.reports))
	copy(reports, c.reports)

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Index < reports[j].Index
	})

	return reports
}

// Totals is the sum of the counters over all nodes.
type Totals struct {
	Nodes       int
	Sent        uint64
	Received    uint64
	MaxHopCount float64
	MeanHops    float64
}

// Totals sums up the collected reports. MaxHopCount and MeanHops are zero if
// no message arrived.
func (c *Collector) Totals() Totals {
	reports := c.Reports()

	t := Totals{Nodes: len(reports)}

	var hopSum float64
	for _, r := range reports {
		t.Sent += r.Sent
		t.Received += r.Received

		if r.HopCount.Count > 0 && r.HopCount.Max > t.MaxHopCount {
			t.MaxHopCount = r.HopCount.Max
		}

		for _, s := range r.HopCounts {
			hopSum += s.Value
		}
	}

	if t.Received > 0 {
		t.MeanHops = hopSum / float64(t.Received)
	}

	return t
}
