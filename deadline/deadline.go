// Package deadline implements HardwareDeadline, the next-event-clock
// tracker the peripheral tick scheduler uses to know when it should next be
// invoked (spec.md §2, §4.5).
package deadline

// Clock is the external master clock contract: a monotonic cycle counter
// the host advances. This module never advances it.
type Clock interface {
	// Clocks returns the current cycle count.
	Clocks() uint64
}

// Handle accumulates the earliest next-event cycle across every peripheral
// ticked in a single scheduler pass.
type Handle struct {
	clock   Clock
	nearest uint64
	set     bool
}

// New returns a Handle bound to clock.
func New(clock Clock) *Handle {
	return &Handle{clock: clock}
}

// Reset clears any previously accumulated deadline, to be called once at
// the start of each scheduler pass before ticking peripherals.
func (h *Handle) Reset() {
	h.nearest = 0
	h.set = false
}

// Propose records a candidate next-event cycle. Peripherals call this
// during their own tick() to report when they next need attention; only
// the minimum across all calls in a pass survives.
func (h *Handle) Propose(atClock uint64) {
	if !h.set || atClock < h.nearest {
		h.nearest = atClock
		h.set = true
	}
}

// ProposeAfter is a convenience for peripherals expressing their next event
// as a relative cycle count from now.
func (h *Handle) ProposeAfter(cycles uint64) {
	h.Propose(h.clock.Clocks() + cycles)
}

// Next returns the accumulated deadline and whether any peripheral proposed
// one this pass. If nothing proposed a deadline, no peripheral has asked
// for another scheduler pass.
func (h *Handle) Next() (uint64, bool) {
	return h.nearest, h.set
}

// Due reports whether the current clock has reached or passed the
// accumulated deadline.
func (h *Handle) Due() bool {
	if !h.set {
		return false
	}
	return h.clock.Clocks() >= h.nearest
}
