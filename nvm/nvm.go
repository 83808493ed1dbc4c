// Package nvm implements the cube's NVM programming model: a gated,
// monotone (1->0 only) byte-array program operation with a fixed self-timed
// write latency, backing the flash.NVM region described in spec.md §4.4.
package nvm

import (
	"github.com/cubecore/cubehw/exception"
	"github.com/cubecore/cubehw/flashmem"
)

// SelfTimedWriteCycles is the number of cycles a successful program
// operation costs; the CPU emulator is expected to stall its own advance
// by this many cycles (spec.md §4.4).
const SelfTimedWriteCycles = 12800

// Model gates programming of a flashmem.Bank behind a write-enable bit.
type Model struct {
	bank       *flashmem.Bank
	writeOK    func() bool
	exceptions exception.Callback
}

// New returns a Model programming bank, gated by writeOK (evaluated on
// every Write call — in the real hardware this reads bit 5 of the FSR SFR
// live, so it is supplied as a function rather than a snapshot). cb is
// invoked (and expected to do its own counting) on a write-disabled write
// attempt.
func New(bank *flashmem.Bank, writeOK func() bool, cb exception.Callback) *Model {
	return &Model{bank: bank, writeOK: writeOK, exceptions: cb}
}

// Write programs data into addr, AND-ing it into the existing byte. If the
// write-enable gate is closed, no bits change, an NVM exception is raised,
// and 0 self-timed cycles are reported. Otherwise SelfTimedWriteCycles is
// reported. pc is the program counter to attribute the exception to.
func (m *Model) Write(pc uint16, addr uint16, data uint8) (cycles int, err error) {
	if !m.bank.InBounds(int(addr)) {
		return 0, exception.InvalidOperation{Reason: "nvm write address out of range"}
	}
	if !m.writeOK() {
		if m.exceptions != nil {
			m.exceptions.Raise(pc, exception.NVM)
		}
		return 0, nil
	}
	m.bank.Program(int(addr), data)
	return SelfTimedWriteCycles, nil
}

// Read returns the byte at addr with no latency.
func (m *Model) Read(addr uint16) (uint8, error) {
	if !m.bank.InBounds(int(addr)) {
		return 0, exception.InvalidOperation{Reason: "nvm read address out of range"}
	}
	return m.bank.Read(int(addr)), nil
}
