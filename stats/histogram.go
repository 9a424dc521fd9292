// Package stats provides the collectors that summarize values recorded during
// a simulation.
package stats

import (
	"fmt"
	"math"
	"sort"
)

// A Bin counts the samples that fall in [Lower, Upper).
type Bin struct {
	Lower, Upper float64
	Count        uint64
}

// Histogram keeps the count, extremes, moments and the distribution of the
// collected samples.
type Histogram struct {
	name     string
	binWidth float64

	count      uint64
	min, max   float64
	sum, sqSum float64
	bins       map[int64]uint64
}

// NewHistogram creates a histogram with unit-width bins, so that every
// integer value has its own bin.
func NewHistogram(name string) *Histogram {
	return NewHistogramWithBinWidth(name, 1)
}

// NewHistogramWithBinWidth creates a histogram whose bins are binWidth wide
// and aligned at 0.
func NewHistogramWithBinWidth(name string, binWidth float64) *Histogram {
	if binWidth <= 0 || math.IsNaN(binWidth) {
		panic(fmt.Sprintf("bin width must be positive, got %f", binWidth))
	}

	return &Histogram{
		name:     name,
		binWidth: binWidth,
		bins:     make(map[int64]uint64),
	}
}

// Name returns the name of the histogram.
func (h *Histogram) Name() string {
	return h.name
}

// Collect adds a sample.
func (h *Histogram) Collect(v float64) {
	if math.IsNaN(v) {
		panic("cannot collect NaN")
	}

	if h.count == 0 || v < h.min {
		h.min = v
	}

	if h.count == 0 || v > h.max {
		h.max = v
	}

	h.count++
	h.sum += v
	h.sqSum += v * v
	h.bins[int64(math.Floor(v/h.binWidth))]++
}

// Count returns the number of samples.
func (h *Histogram) Count() uint64 {
	return h.count
}

// Min returns the smallest sample, or NaN if there is none.
func (h *Histogram) Min() float64 {
	if h.count == 0 {
		return math.NaN()
	}

	return h.min
}

// Max returns the largest sample, or NaN if there is none.
func (h *Histogram) Max() float64 {
	if h.count == 0 {
		return math.NaN()
	}

	return h.max
}

// Sum returns the sum of the samples.
func (h *Histogram) Sum() float64 {
	return h.sum
}

// Mean returns the average of the samples, or NaN if there is none.
func (h *Histogram) Mean() float64 {
	if h.count == 0 {
		return math.NaN()
	}

	return h.sum / float64(h.count)
}

// Variance returns the unbiased sample variance. It is NaN with less than two
// samples.
func (h *Histogram) Variance() float64 {
	if h.count < 2 {
		return math.NaN()
	}

	n := float64(h.count)
	mean := h.sum / n
	v := (h.sqSum - n*mean*mean) / (n - 1)

	if v < 0 {
		return 0
	}

	return v
}

// StdDev returns the square root of the variance.
func (h *Histogram) StdDev() float64 {
	return math.Sqrt(h.Variance())
}

// Bins returns the non-empty bins in ascending order.
func (h *Histogram) Bins() []Bin {
	keys := make([]int64, 0, len(h.bins))
	for k := range h.bins {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	bins := make([]Bin, 0, len(keys))
	for _, k := range keys {
		bins = append(bins, Bin{
			Lower: float64(k) * h.binWidth,
			Upper: float64(k+1) * h.binWidth,
			Count: h.bins[k],
		})
	}

	return bins
}

// Summary is a snapshot of a histogram.
type Summary struct {
	Name   string
	Count  uint64
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	Bins   []Bin
}

// Summarize takes a snapshot of the histogram.
func (h *Histogram) Summarize() Summary {
	return Summary{
		Name:   h.name,
		Count:  h.count,
		Min:    h.Min(),
		Max:    h.Max(),
		Mean:   h.Mean(),
		StdDev: h.StdDev(),
		Bins:   h.Bins(),
	}
}
