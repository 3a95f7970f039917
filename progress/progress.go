// Package progress defines the progress-reporting contract shared by the
// long-running raster scans of rasterlab.
//
// A Func receives the completed fraction in [0,1]. Scans never branch on the
// reporter: cancellation is done through context.Context, not through the
// callback. A Tracker throttles calls so the reporter is invoked only when the
// integer percent changes.
package progress

// Func receives the fraction of work completed, in [0,1].
type Func func(fraction float64)

// Nop is the default reporter; it does nothing.
func Nop(float64) {}

// Tracker converts unit counts into throttled Func calls.
type Tracker struct {
	fn    Func
	total int
	last  int
}

// NewTracker returns a Tracker reporting to fn over total units of work.
// A nil fn is replaced by Nop; total < 1 is treated as 1.
func NewTracker(fn Func, total int) *Tracker {
	if fn == nil {
		fn = Nop
	}
	if total < 1 {
		total = 1
	}

	return &Tracker{fn: fn, total: total, last: -1}
}

// Update records that done units have been completed. fn is called only when
// the integer percent differs from the previous call.
func (t *Tracker) Update(done int) {
	if done < 0 {
		done = 0
	}
	if done > t.total {
		done = t.total
	}
	pct := done * 100 / t.total
	if pct == t.last {
		return
	}
	t.last = pct
	t.fn(float64(done) / float64(t.total))
}

// Done reports completion (fraction 1) unless it was already reported.
func (t *Tracker) Done() {
	t.Update(t.total)
}
