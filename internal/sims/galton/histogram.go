package galton

// Histogram counts landed particles per bin, bounded by a display height.
type Histogram struct {
	counts    []int
	maxHeight int
}

// NewHistogram returns an empty histogram with the given bin count.
func NewHistogram(bins, maxHeight int) *Histogram {
	if bins < 0 {
		bins = 0
	}
	return &Histogram{counts: make([]int, bins), maxHeight: maxHeight}
}

// Len returns the number of bins.
func (h *Histogram) Len() int { return len(h.counts) }

// MaxHeight returns the display bound applied by Normalize.
func (h *Histogram) MaxHeight() int { return h.maxHeight }

// Add increments bin, clamping out-of-range indices to the edge bins.
// It returns the bin that was incremented, or -1 for an empty histogram.
func (h *Histogram) Add(bin int) int {
	if len(h.counts) == 0 {
		return -1
	}
	if bin < 0 {
		bin = 0
	}
	if bin >= len(h.counts) {
		bin = len(h.counts) - 1
	}
	h.counts[bin]++
	return bin
}

// Max returns the largest counter, never less than 1.
func (h *Histogram) Max() int {
	m := 1
	for _, c := range h.counts {
		if c > m {
			m = c
		}
	}
	return m
}

// Normalize rescales every counter proportionally when the largest exceeds
// the display height. The rescale truncates and cannot be undone. It reports
// whether anything changed.
func (h *Histogram) Normalize() bool {
	m := h.Max()
	if m <= h.maxHeight {
		return false
	}
	for i, c := range h.counts {
		h.counts[i] = int(float64(c) / float64(m) * float64(h.maxHeight))
	}
	return true
}

// Counts returns a copy of the counters.
func (h *Histogram) Counts() []int {
	return append([]int(nil), h.counts...)
}

// Reset zeroes every counter.
func (h *Histogram) Reset() {
	clear(h.counts)
}
