package histogram

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRange indicates Max <= Min, a non-positive bin count, a
// non-finite bound, or a value added outside [Min, Max].
var ErrInvalidRange = errors.New("histogram: invalid range")

// Histogram is a fixed-bin frequency table.
type Histogram struct {
	min, max   float64
	step       float64
	counts     []int
	added      int
	cumulative bool
}

// New builds an empty histogram of bins bins spanning [min, max].
func New(min, max float64, bins int) (*Histogram, error) {
	if bins <= 0 {
		return nil, fmt.Errorf("%w: %d bins", ErrInvalidRange, bins)
	}
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || max <= min {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, min, max)
	}

	step := (max - min) / float64(bins)
	if math.IsInf(step, 0) || step == 0 {
		return nil, fmt.Errorf("%w: [%g, %g] in %d bins has step %g", ErrInvalidRange, min, max, bins, step)
	}

	return &Histogram{
		min:    min,
		max:    max,
		step:   step,
		counts: make([]int, bins),
	}, nil
}

// Add counts v in bin floor((v-Min)/Step), clamped to the last bin.
// Returns ErrInvalidRange for v outside [Min, Max] or NaN.
func (h *Histogram) Add(v float64) error {
	if math.IsNaN(v) || v < h.min || v > h.max {
		return fmt.Errorf("%w: %g not in [%g, %g]", ErrInvalidRange, v, h.min, h.max)
	}
	bin := int((v - h.min) / h.step)
	if bin < 0 {
		bin = 0
	} else if bin >= len(h.counts) {
		bin = len(h.counts) - 1
	}
	if h.cumulative {
		for i := bin; i < len(h.counts); i++ {
			h.counts[i]++
		}
	} else {
		h.counts[bin]++
	}
	h.added++

	return nil
}

// Min returns the lower bound of the first bin.
func (h *Histogram) Min() float64 { return h.min }

// Max returns the upper bound of the last bin.
func (h *Histogram) Max() float64 { return h.max }

// Step returns the bin width, (Max-Min)/Bins.
func (h *Histogram) Step() float64 { return h.step }

// Bins returns the number of bins.
func (h *Histogram) Bins() int { return len(h.counts) }

// Total returns the number of values added.
func (h *Histogram) Total() int { return h.added }

// Cumulative reports whether MakeCumulative has been applied.
func (h *Histogram) Cumulative() bool { return h.cumulative }

// Count returns the stored count of bin, or 0 for a bin outside the table.
func (h *Histogram) Count(bin int) int {
	if bin < 0 || bin >= len(h.counts) {
		return 0
	}

	return h.counts[bin]
}

// Counts returns a copy of the stored bin counts.
func (h *Histogram) Counts() []int {
	out := make([]int, len(h.counts))
	copy(out, h.counts)

	return out
}

// ValueForBin returns the lower edge of bin: Min + bin·Step.
func (h *Histogram) ValueForBin(bin int) float64 {
	return h.min + float64(bin)*h.step
}

// BinForValue returns floor((v-Min)/Step) without clamping.
func (h *Histogram) BinForValue(v float64) int {
	return int(math.Floor((v - h.min) / h.step))
}

// Occupied returns the number of bins holding at least one value.
func (h *Histogram) Occupied() int {
	n := 0
	prev := 0
	for _, c := range h.counts {
		if c-prev > 0 {
			n++
		}
		if h.cumulative {
			prev = c
		}
	}

	return n
}

// MakeCumulative rewrites the stored bins as a running sum. It is a no-op
// on an already cumulative histogram.
func (h *Histogram) MakeCumulative() {
	if h.cumulative {
		return
	}
	for i := 1; i < len(h.counts); i++ {
		h.counts[i] += h.counts[i-1]
	}
	h.cumulative = true
}

// cumulativeCounts returns the running sum without touching stored bins.
func (h *Histogram) cumulativeCounts() []int {
	if h.cumulative {
		return h.counts
	}
	cum := make([]int, len(h.counts))
	run := 0
	for i, c := range h.counts {
		run += c
		cum[i] = run
	}

	return cum
}

// Percentile returns the bin edge whose cumulative count is closest to
// p·Total, for p in [0,1].
//
// Let i be the first bin whose cumulative count reaches p·Total. The
// candidates are bins i-1 and i; i-1 is chosen only when strictly closer,
// so on an exact distance tie the later candidate i is returned, and among
// bins with equal cumulative counts the earliest reaching bin wins. The result is the upper edge of the chosen bin, the value at
// which its cumulative count is attained: Min + (bin+1)·Step.
func (h *Histogram) Percentile(p float64) float64 {
	cum := h.cumulativeCounts()
	target := float64(cum[len(cum)-1]) * p

	i := 0
	for i < len(cum)-1 && float64(cum[i]) < target {
		i++
	}
	chosen := i
	if i > 0 && math.Abs(target-float64(cum[i-1])) < math.Abs(float64(cum[i])-target) {
		chosen = i - 1
	}

	return h.ValueForBin(chosen + 1)
}

// LargestBin returns the first bin with the highest count.
func (h *Histogram) LargestBin() int {
	best := 0
	counts := h.counts
	if h.cumulative {
		counts = h.binCounts()
	}
	for i := 1; i < len(counts); i++ {
		if counts[i] > counts[best] {
			best = i
		}
	}

	return best
}

// binCounts recovers per-bin counts from a cumulative table.
func (h *Histogram) binCounts() []int {
	out := make([]int, len(h.counts))
	prev := 0
	for i, c := range h.counts {
		out[i] = c - prev
		prev = c
	}

	return out
}
