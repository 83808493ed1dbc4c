// Package spi is the core-facing contract for the cube's SPI bus and its
// radio. RF layer and link logic are out of scope (spec.md §1); this
// package exposes only the register/tick surface the scheduler and SFR
// dispatch drive.
package spi

import (
	"github.com/cubecore/cubehw/deadline"
	"github.com/cubecore/cubehw/trace"
)

// Radio models the 2.4GHz radio's clock-gated tick surface
// (cube_hardware.cpp's spi.radio.tick(rfcken, &cpu)).
type Radio struct {
	lastClockEnable bool
}

// NewRadio returns an initialized Radio.
func NewRadio() *Radio {
	return &Radio{}
}

// Tick advances the radio, which only runs its own clocked logic while
// rfcken (the radio clock-enable SFR bit) is asserted.
func (r *Radio) Tick(h *deadline.Handle, clockEnable bool) {
	r.lastClockEnable = clockEnable
	_ = h
}

// ClockEnabled reports the clock-enable state as of the last Tick call.
func (r *Radio) ClockEnabled() bool {
	return r.lastClockEnable
}

// DefineWaveform registers the radio's own exported signals into scope,
// keeping the radio scope's contents owned by the radio module itself
// (spec.md §6: "radio: delegated to the radio module").
func (r *Radio) DefineWaveform(scope *trace.Scope) {
	scope.DefineWide("rfcken", 1, func() uint64 {
		if r.lastClockEnable {
			return 1
		}
		return 0
	})
}

// Bus models the SPI controller peripheral, which the scheduler ticks with
// a pointer to its control SFR byte (cube_hardware.cpp's
// spi.tick(hwDeadline, cpu.mSFR + REG_SPIRCON0, &cpu)) so it can observe
// mode/clock-divider bits without the hardware core re-decoding them.
type Bus struct {
	Radio *Radio
}

// New returns a Bus with its Radio wired up.
func New() *Bus {
	return &Bus{Radio: NewRadio()}
}

// Tick advances the SPI controller itself, given the live control SFR
// byte. Radio ticking is separate (spec.md §4.5 lists them as distinct
// scheduler steps).
func (b *Bus) Tick(h *deadline.Handle, ctrlSFR *uint8) {
	_ = h
	_ = ctrlSFR
}
