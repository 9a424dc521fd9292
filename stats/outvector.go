package stats

// A Sample is a value recorded at a simulated time.
type Sample struct {
	Time  float64
	Value float64
}

// OutVector records values in the order they are produced.
type OutVector struct {
	name    string
	samples []Sample
}

// NewOutVector creates an empty vector.
func NewOutVector(name string) *OutVector {
	return &OutVector{name: name}
}

// Name returns the name of the vector.
func (v *OutVector) Name() string {
	return v.name
}

// Record appends a value.
func (v *OutVector) Record(time, value float64) {
	v.samples = append(v.samples, Sample{Time: time, Value: value})
}

// Len returns the number of recorded values.
func (v *OutVector) Len() int {
	return len(v.samples)
}

// Samples returns a copy of the recorded samples.
func (v *OutVector) Samples() []Sample {
	s := make([]Sample, len(v.samples))
	copy(s, v.samples)

	return s
}

// Values returns the recorded values without their times.
func (v *OutVector) Values() []float64 {
	values := make([]float64, len(v.samples))
	for i, s := range v.samples {
		values[i] = s.Value
	}

	return values
}
