package analysis

import (
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/aethonholdings/aethon-arion-pipeline/analysis/record"
)

// DefaultBinCount is the histogram resolution used when the caller does not
// request one.
const DefaultBinCount = 100

// Summary bundles the cross-run statistics of a ResultSet. Nil fields mean
// "no data": an empty batch yields nil everywhere, and the standard
// deviation needs more than two samples.
type Summary struct {
	AvgPerformance   *float64 `yaml:"avgPerformance" json:"avgPerformance"`
	StDevPerformance *float64 `yaml:"stDevPerformance" json:"stDevPerformance"`
	Entropy          *float64 `yaml:"entropy" json:"entropy"`
}

// ResultSet aggregates the final-state records of many simulation runs into
// a quantized-state histogram and performance statistics. The histogram is
// built eagerly at construction; queries afterwards are pure reads over the
// frozen batch.
type ResultSet struct {
	results  []record.Result
	binCount int

	histogram map[string]float64 // nil when the batch is empty
	mins      []float64
	maxs      []float64
	binSizes  []float64
}

// NewResultSet builds the quantized-state histogram over results with
// binCount bins per dimension. Never fails: an empty batch produces a set
// whose queries all report absent data, and a bin count of 0 collapses
// every dimension to a single bin instead of dividing by zero.
func NewResultSet(results []record.Result, binCount int) *ResultSet {
	rs := &ResultSet{results: results, binCount: binCount}
	if len(results) == 0 {
		return rs
	}
	vectors := make([][]float64, len(results))
	for i := range results {
		vectors[i] = stateVector(&results[i])
	}
	rs.computeBounds(vectors)
	rs.buildHistogram(vectors)
	logrus.Debugf("result set: %d runs, %d dimensions, %d histogram buckets",
		len(results), len(rs.mins), len(rs.histogram))
	return rs
}

// stateVector flattens one record into the fixed-order numeric vector used
// as the unit of quantization: board, agent states, plant, reporting, then
// the flattened priority tensor.
func stateVector(r *record.Result) []float64 {
	v := make([]float64, 0, len(r.Board)+len(r.AgentStates)+len(r.Plant)+len(r.Reporting))
	v = append(v, r.Board...)
	for _, s := range r.AgentStates {
		v = append(v, float64(s))
	}
	v = append(v, r.Plant...)
	v = append(v, r.Reporting...)
	v = append(v, Flatten3(r.PriorityTensor)...)
	return v
}

// computeBounds derives per-dimension min, max and bin size across all
// state vectors. Bounds are initialized from the first vector; vectors
// shorter than the first contribute only the dimensions they have.
func (rs *ResultSet) computeBounds(vectors [][]float64) {
	rs.mins = append([]float64(nil), vectors[0]...)
	rs.maxs = append([]float64(nil), vectors[0]...)
	for _, v := range vectors[1:] {
		for i := 0; i < len(v) && i < len(rs.mins); i++ {
			if v[i] < rs.mins[i] {
				rs.mins[i] = v[i]
			}
			if v[i] > rs.maxs[i] {
				rs.maxs[i] = v[i]
			}
		}
	}
	rs.binSizes = make([]float64, len(rs.mins))
	for i := range rs.binSizes {
		if rs.binCount > 0 {
			rs.binSizes[i] = (rs.maxs[i] - rs.mins[i]) / float64(rs.binCount)
		}
	}
}

// buildHistogram counts quantized state vectors and normalizes the counts
// to probabilities. When every dimension is constant across the batch the
// whole count goes to the single bucket keyed by the shared vector; the
// generic quantization is degenerate there since every bin size is 0, so
// it is skipped entirely rather than special-cased per dimension.
func (rs *ResultSet) buildHistogram(vectors [][]float64) {
	rs.histogram = make(map[string]float64)
	if rs.spansAnyDimension() {
		for _, v := range vectors {
			rs.histogram[histogramKey(rs.quantize(v))]++
		}
	} else {
		rs.histogram[histogramKey(vectors[0])] = float64(len(vectors))
	}
	n := float64(len(vectors))
	for key := range rs.histogram {
		rs.histogram[key] /= n
	}
}

// spansAnyDimension reports whether at least one dimension varies across
// the batch.
func (rs *ResultSet) spansAnyDimension() bool {
	for i := range rs.mins {
		if rs.maxs[i] != rs.mins[i] {
			return true
		}
	}
	return false
}

// quantize maps each dimension of a state vector to the left edge of its
// containing bin. Dimensions with a zero bin size collapse to bin 0, i.e.
// the dimension minimum.
func (rs *ResultSet) quantize(v []float64) []float64 {
	q := make([]float64, len(v))
	for i := 0; i < len(v) && i < len(rs.binSizes); i++ {
		if rs.binSizes[i] != 0 {
			bin := math.Floor((v[i] - rs.mins[i]) / rs.binSizes[i])
			q[i] = bin*rs.binSizes[i] + rs.mins[i]
		} else {
			q[i] = rs.mins[i]
		}
	}
	return q
}

// histogramKey encodes a quantized vector as a deterministic string so that
// two vectors with identical values always land in the same bucket.
func histogramKey(v []float64) string {
	var sb strings.Builder
	for i, x := range v {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	return sb.String()
}

// Entropy returns the Shannon entropy in bits of the quantized-state
// distribution, or nil when no results were supplied. Only buckets with
// positive probability enter the sum; the guard keeps the degenerate
// p·log(0) term out, so the value is always finite and non-negative.
func (rs *ResultSet) Entropy() *float64 {
	if rs.histogram == nil {
		return nil
	}
	entropy := 0.0
	for _, p := range rs.histogram {
		if p > 0 {
			entropy -= p * math.Log2(p)
		}
	}
	// a single full bucket leaves -0.0 behind
	entropy = math.Max(entropy, 0)
	return &entropy
}

// Performance returns the mean and sample standard deviation of the batch
// performance scores. The mean is nil for an empty batch; records without
// a score count as 0 rather than being excluded, preserving the engine's
// reporting convention. The standard deviation uses the n-1 denominator
// and is nil unless more than two samples are present.
func (rs *ResultSet) Performance() (mean, stdev *float64) {
	if len(rs.results) == 0 {
		return nil, nil
	}
	scores := make([]float64, len(rs.results))
	for i := range rs.results {
		if p := rs.results[i].Performance; p != nil {
			scores[i] = *p
		}
	}
	m := stat.Mean(scores, nil)
	mean = &m
	if len(scores) > 2 {
		s := stat.StdDev(scores, nil)
		stdev = &s
	}
	return mean, stdev
}

// Summary bundles entropy and performance statistics for downstream
// reporting. Callers must check the nil fields before use.
func (rs *ResultSet) Summary() Summary {
	mean, stdev := rs.Performance()
	return Summary{
		AvgPerformance:   mean,
		StDevPerformance: stdev,
		Entropy:          rs.Entropy(),
	}
}

// Results returns the batch the set was built from.
func (rs *ResultSet) Results() []record.Result { return rs.results }

// BinCount returns the per-dimension histogram resolution the set was
// built with.
func (rs *ResultSet) BinCount() int { return rs.binCount }

// Histogram returns a copy of the quantized-state probability map, or nil
// when the batch was empty.
func (rs *ResultSet) Histogram() map[string]float64 {
	if rs.histogram == nil {
		return nil
	}
	out := make(map[string]float64, len(rs.histogram))
	for k, p := range rs.histogram {
		out[k] = p
	}
	return out
}
