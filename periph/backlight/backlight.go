// Package backlight models the cube's backlight driver, cycled from the
// address-latch logic on LAT1's rising edge (spec.md §4.2).
package backlight

// Chip tracks whether the backlight is currently lit and the clock of the
// most recent cycle, for a debug viewer or waveform export to sample.
type Chip struct {
	lit      bool
	lastTick uint64
}

// New returns an off Chip.
func New() *Chip {
	return &Chip{}
}

// Cycle records a backlight drive pulse: lit reflects whether the control
// port condition (3V3_EN & LCD_DCX) held at atClock.
func (c *Chip) Cycle(lit bool, atClock uint64) {
	c.lit = lit
	c.lastTick = atClock
}

// Lit reports the backlight's state as of the last Cycle call.
func (c *Chip) Lit() bool {
	return c.lit
}

// LastTick returns the clock of the most recent Cycle call.
func (c *Chip) LastTick() uint64 {
	return c.lastTick
}
