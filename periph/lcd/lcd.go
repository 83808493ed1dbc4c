// Package lcd is the core-facing contract for the cube's LCD controller.
// The pixel pipeline is out of scope (spec.md §1); this package models only
// the control-line surface the graphics bus drives.
package lcd

import "github.com/cubecore/cubehw/deadline"

// Pins is the LCD pin vector composed each GraphicsTick (spec.md §4.2, §6).
// CSX and RDX are hard-wired low by the graphics bus and present here only
// because the original hardware's pin vector carries them (spec.md design
// notes: "retain unless confirmed otherwise").
type Pins struct {
	Power  bool
	CSX    bool
	DCX    bool
	WRX    bool
	RDX    bool
	DataIn uint8
}

// Chip is a minimal LCD controller stand-in: it latches the last byte
// written on a WRX strobe and never drives the shared bus itself (real LCD
// controllers in this family are write-only from the host's perspective).
type Chip struct {
	power     bool
	lastByte  uint8
	lastDCX   bool
	prevWRX   bool
}

// New returns a powered-off Chip.
func New() *Chip {
	return &Chip{}
}

// Cycle applies one cycle of pin state, latching DataIn on WRX's rising
// edge. Returns dataDrv, always false: the LCD data pins are input-only
// from the cube's perspective.
func (c *Chip) Cycle(p Pins) (dataDrv bool) {
	c.power = p.Power
	if p.WRX && !c.prevWRX {
		c.lastByte = p.DataIn
		c.lastDCX = p.DCX
	}
	c.prevWRX = p.WRX
	return false
}

// LastCommand returns the most recently latched byte and whether it was
// latched as data (DCX high) or command (DCX low).
func (c *Chip) LastCommand() (b uint8, isData bool) {
	return c.lastByte, c.lastDCX
}

// Powered reports the controller's current power rail state.
func (c *Chip) Powered() bool {
	return c.power
}

// Tick proposes this peripheral's next event clock. The LCD controller has
// no autonomous timing of its own in this model (it only reacts to writes),
// so it never proposes a deadline.
func (c *Chip) Tick(h *deadline.Handle) {
	_ = h
}
