// Package extflash is the core-facing contract for the cube's external
// serial flash. Its internal memory-array timing and program/erase state
// machine are out of scope (spec.md §1): this package only models the
// pin-level surface the graphics bus and peripheral scheduler drive, in the
// register-switch style of tia.Chip.Read/Write.
package extflash

import (
	"github.com/cubecore/cubehw/deadline"
	"github.com/cubecore/cubehw/flashmem"
)

// Pins is the 22-bit-addressed flash pin vector composed by the graphics
// bus each tick (spec.md §4.2).
type Pins struct {
	Addr   uint32 // 22 bits valid.
	Power  bool
	OE     bool
	CE     bool
	WE     bool
	DataIn uint8
}

// Chip is a minimal stand-in for the external flash device: reads/writes
// the backing Bank directly on WE/OE strobes instead of modeling the
// device's internal timing, since that timing is out of scope here.
type Chip struct {
	bank    *flashmem.Bank
	dataOut uint8
	dataDrv bool
}

// New returns a Chip backed by bank.
func New(bank *flashmem.Bank) *Chip {
	return &Chip{bank: bank}
}

// Cycle applies one cycle of pin state. It returns DataDrv, matching the
// C++ original's Flash::Pins.data_drv out-parameter.
func (c *Chip) Cycle(p Pins) (dataDrv bool) {
	if !p.Power || p.CE {
		c.dataDrv = false
		return false
	}
	if p.WE {
		c.bank.Write(int(p.Addr), p.DataIn)
	}
	if p.OE && !p.WE {
		c.dataOut = c.bank.Read(int(p.Addr))
		c.dataDrv = true
	} else {
		c.dataDrv = false
	}
	return c.dataDrv
}

// DataOut returns the byte most recently latched by an OE-asserted cycle.
func (c *Chip) DataOut() uint8 {
	return c.dataOut
}

// Tick advances the device's own internal timing (none, here) and proposes
// its next event clock. External flash has no asynchronous events of its
// own in this model, so it never proposes a deadline.
func (c *Chip) Tick(h *deadline.Handle) {
	_ = h
}
