package report

import (
	"math"

	"github.com/sarchlab/hopsim/datarecording"
)

// Table names used by RecorderReporter.
const (
	ScalarTable       = "scalars"
	VectorTable       = "vectors"
	HistogramTable    = "histograms"
	HistogramBinTable = "histogram_bins"
)

// ScalarEntry is a row of the scalar table.
type ScalarEntry struct {
	Node  string
	Name  string
	Value float64
}

// VectorEntry is a row of the vector table.
type VectorEntry struct {
	Node  string
	Name  string
	Seq   int
	Time  float64
	Value float64
}

// HistogramEntry is a row of the histogram table. The statistics of an empty
// histogram are recorded as 0.
type HistogramEntry struct {
	Node   string
	Name   string
	Count  uint64
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// HistogramBinEntry is a row of the histogram bin table.
type HistogramBinEntry struct {
	Node  string
	Name  string
	Lower float64
	Upper float64
	Count uint64
}

// RecorderReporter writes the reports into a DataRecorder.
type RecorderReporter struct {
	recorder      datarecording.DataRecorder
	tablesCreated bool
}

// NewRecorderReporter creates a RecorderReporter.
func NewRecorderReporter(
	recorder datarecording.DataRecorder,
) *RecorderReporter {
	return &RecorderReporter{recorder: recorder}
}

func (r *RecorderReporter) createTables() {
	if r.tablesCreated {
		return
	}

	r.recorder.CreateTable(ScalarTable, ScalarEntry{})
	r.recorder.CreateTable(VectorTable, VectorEntry{})
	r.recorder.CreateTable(HistogramTable, HistogramEntry{})
	r.recorder.CreateTable(HistogramBinTable, HistogramBinEntry{})
	r.tablesCreated = true
}

// ReportNode records the scalars, the vector and the histogram of a node.
func (r *RecorderReporter) ReportNode(nr NodeReport) {
	r.createTables()

	r.recorder.InsertData(ScalarTable,
		ScalarEntry{Node: nr.Name, Name: SentName, Value: float64(nr.Sent)})
	r.recorder.InsertData(ScalarTable,
		ScalarEntry{Node: nr.Name, Name: ReceivedName,
			Value: float64(nr.Received)})

	if !math.IsNaN(nr.MaxHopCount) {
		r.recorder.InsertData(ScalarTable,
			ScalarEntry{Node: nr.Name, Name: MaxHopCountName,
				Value: nr.MaxHopCount})
	}

	for i, s := range nr.HopCounts {
		r.recorder.InsertData(VectorTable, VectorEntry{
			Node:  nr.Name,
			Name:  VectorName,
			Seq:   i,
			Time:  s.Time,
			Value: s.Value,
		})
	}

	h := nr.HopCount
	r.recorder.InsertData(HistogramTable, HistogramEntry{
		Node:   nr.Name,
		Name:   HistogramName,
		Count:  h.Count,
		Min:    zeroIfNaN(h.Min),
		Max:    zeroIfNaN(h.Max),
		Mean:   zeroIfNaN(h.Mean),
		StdDev: zeroIfNaN(h.StdDev),
	})

	for _, b := range h.Bins {
		r.recorder.InsertData(HistogramBinTable, HistogramBinEntry{
			Node:  nr.Name,
			Name:  HistogramName,
			Lower: b.Lower,
			Upper: b.Upper,
			Count: b.Count,
		})
	}
}

func zeroIfNaN(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}

	return v
}
