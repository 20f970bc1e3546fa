package lib

import "math"
import "strconv"

// HistogramInt64 statistical histogram, used to sample node depths.
type HistogramInt64 struct {
	n         int64
	minval    int64
	maxval    int64
	sum       int64
	sumsq     float64
	histogram []int64
	// setup
	from  int64
	till  int64
	width int64
}

// NewhistorgramInt64 return a new histogram with buckets of width
// between [from, till). Samples outside the range are counted in the
// first and last bucket.
func NewhistorgramInt64(from, till, width int64) *HistogramInt64 {
	from = (from / width) * width
	till = (till / width) * width
	h := &HistogramInt64{from: from, till: till, width: width}
	h.histogram = make([]int64, 1+((till-from)/width)+1)
	return h
}

// Add a sample to this histogram.
func (h *HistogramInt64) Add(sample int64) {
	if h.n == 0 || sample < h.minval {
		h.minval = sample
	}
	if h.n == 0 || sample > h.maxval {
		h.maxval = sample
	}
	h.n++
	h.sum += sample
	h.sumsq += float64(sample) * float64(sample)

	switch {
	case sample < h.from:
		h.histogram[0]++
	case sample >= h.till:
		h.histogram[len(h.histogram)-1]++
	default:
		h.histogram[((sample-h.from)/h.width)+1]++
	}
}

// Min return minimum value from sample.
func (h *HistogramInt64) Min() int64 { return h.minval }

// Max return maximum value from sample.
func (h *HistogramInt64) Max() int64 { return h.maxval }

// Samples return total number of samples in the set.
func (h *HistogramInt64) Samples() int64 { return h.n }

// Sum return the sum of all sample values.
func (h *HistogramInt64) Sum() int64 { return h.sum }

// Mean return the average value of all samples.
func (h *HistogramInt64) Mean() int64 {
	if h.n == 0 {
		return 0
	}
	return h.sum / h.n
}

// SD return by how much the samples differ from the mean value of
// sample set.
func (h *HistogramInt64) SD() float64 {
	if h.n == 0 {
		return 0
	}
	mean := float64(h.sum) / float64(h.n)
	variance := (h.sumsq / float64(h.n)) - (mean * mean)
	if variance < 0 {
		return 0
	}
	return math.Sqrt(variance)
}

// Stats return cummulative count of samples below each bucket's upper
// bound, the bucket holding the maximum sample is keyed as "+".
func (h *HistogramInt64) Stats() map[string]int64 {
	m := make(map[string]int64)
	last := -1
	for i := len(h.histogram) - 1; i >= 0; i-- {
		if h.histogram[i] > 0 {
			last = i
			break
		}
	}
	cumm := int64(0)
	for i := 0; i <= last; i++ {
		cumm += h.histogram[i]
		if i == last {
			m["+"] = cumm
			break
		}
		m[strconv.Itoa(int(h.from+(int64(i)*h.width)))] = cumm
	}
	return m
}

// Fullstats include samples, min, max, mean and stddeviance along
// with Stats().
func (h *HistogramInt64) Fullstats() map[string]interface{} {
	hmap := make(map[string]interface{})
	for k, v := range h.Stats() {
		hmap[k] = v
	}
	return map[string]interface{}{
		"samples":     h.Samples(),
		"min":         h.Min(),
		"max":         h.Max(),
		"mean":        h.Mean(),
		"stddeviance": h.SD(),
		"histogram":   hmap,
	}
}
