// Package adc is the core-facing contract for the cube's ADC. Channel
// physics are out of scope (spec.md §1); this package exposes only the
// tick surface the scheduler drives and a settable channel reading for
// tests and host integration.
package adc

import "github.com/cubecore/cubehw/deadline"

// Chip is a minimal multi-channel ADC stand-in.
type Chip struct {
	channels [8]uint16
}

// New returns a zeroed Chip.
func New() *Chip {
	return &Chip{}
}

// SetChannel stores a reading for channel ch (0-7).
func (c *Chip) SetChannel(ch int, v uint16) {
	if ch < 0 || ch >= len(c.channels) {
		return
	}
	c.channels[ch] = v
}

// Channel returns the most recently set reading for channel ch.
func (c *Chip) Channel(ch int) uint16 {
	if ch < 0 || ch >= len(c.channels) {
		return 0
	}
	return c.channels[ch]
}

// Tick advances the ADC's own conversion timing. Conversions are modeled as
// instantaneous here, so no deadline is ever proposed.
func (c *Chip) Tick(h *deadline.Handle) {
	_ = h
}
