// Package sfr defines the cube CPU's special-function-register address
// space and the state-record contract the hardware core reads and writes
// through. It deliberately implements no instruction execution: the 8051
// interpreter that fetches, decodes, and executes opcodes against this
// state is an external collaborator (spec.md §1).
package sfr

// Register addresses the graphics bus and latch logic care about. Named to
// match the control/address/bus port roles in spec.md §4.2, grounded on
// cube_hardware.cpp's REG_*/ *_PORT constants.
const (
	AddrPort    = 0x00
	AddrPortDir = 0x01
	BusPort     = 0x02
	BusPortDir  = 0x03
	CtrlPort    = 0x04
	CtrlPortDir = 0x05
	MiscPort    = 0x06
	MiscPortDir = 0x07

	P0     = 0x08
	P1     = 0x09
	P2     = 0x0A
	P3     = 0x0B
	P0Dir  = 0x0C
	P1Dir  = 0x0D
	P2Dir  = 0x0E
	P3Dir  = 0x0F

	FSR    = 0x10
	WUOPC0 = 0x11
	WUOPC1 = 0x12

	SPIRCON0 = 0x13

	REG_ACC = 0x14
	REG_PSW = 0x15
	REG_SP  = 0x16

	REG_DPL  = 0x17
	REG_DPH  = 0x18
	REG_DPL1 = 0x19
	REG_DPH1 = 0x1A
	REG_DPS  = 0x1B

	REG_TL0 = 0x1C
	REG_TH0 = 0x1D
	REG_TL1 = 0x1E
	REG_TH1 = 0x1F
	REG_TL2 = 0x20
	REG_TH2 = 0x21
	REG_TCON   = 0x22
	REG_IRCON  = 0x23
	REG_DEBUG  = 0x24

	REG_RTC2CMP0 = 0x25
	REG_RTC2CMP1 = 0x26

	// NumRegisters is the size of the SFR array. Firmware-defined SFRs
	// beyond the ones this module cares about still need storage, so the
	// array is sized generously like a real 8051's 128-byte SFR space.
	NumRegisters = 0x80
)

// Control port bit assignments (spec.md §6).
const (
	CtrlLCDDCX   = uint8(1 << 0)
	CtrlFlashLAT1 = uint8(1 << 1)
	CtrlFlashLAT2 = uint8(1 << 2)
	Ctrl3V3En     = uint8(1 << 3)
	CtrlDSEn      = uint8(1 << 4)
	CtrlFlashWE   = uint8(1 << 5)
	CtrlFlashOE   = uint8(1 << 6)
)

// FSR bit assignments.
const (
	FSRWriteEnable = uint8(1 << 5)
)

// Misc port bit assignments.
const (
	MiscTouch = uint8(1 << 0)
)

// PSW bank-selector bits (RS0/RS1), matching cube_hardware.cpp's PSWMASK_RS0/RS1.
const (
	PSWMaskRS0 = uint8(1 << 3)
	PSWMaskRS1 = uint8(1 << 4)
	PSWRS0Shift = 3
)

// State is the CPU state record contract from spec.md §3: a block of SFRs,
// internal data memory, program counter, interrupt nesting, RTC/watchdog
// state, and the NeedHardwareTick flag. Everything here is owned
// exclusively by a single Hardware instance; nothing in this package reads
// or mutates it except through the explicit accessors below, so the
// instruction interpreter driving PC/Data/IRQCount is free to do so
// directly without a back-pointer (spec.md §9 Design Notes).
type State struct {
	SFR  [NumRegisters]uint8
	Data [256]uint8

	PC       uint16
	IRQCount uint8

	RTC2        uint16
	WDTEnabled  bool
	WDTCounter  uint32

	// NeedHardwareTick is set by the interpreter whenever simulated time
	// has advanced past the cached deadline; the scheduler clears it once
	// it has run a tick pass.
	NeedHardwareTick bool
}

// RegisterBank returns the currently selected 8-register bank (0-3) per the
// PSW RS0/RS1 bits, and the 8 data bytes backing it.
func (s *State) RegisterBank() (bank uint8, regs [8]uint8) {
	bank = (s.SFR[REG_PSW] & (PSWMaskRS0 | PSWMaskRS1)) >> PSWRS0Shift
	copy(regs[:], s.Data[int(bank)*8:int(bank)*8+8])
	return bank, regs
}

// DPTR returns the two data-pointer pairs and the currently selected one
// (bit 0 of REG_DPS).
func (s *State) DPTR() (selected uint8, dptr0, dptr1 uint16) {
	selected = s.SFR[REG_DPS] & 1
	dptr0 = uint16(s.SFR[REG_DPH])<<8 | uint16(s.SFR[REG_DPL])
	dptr1 = uint16(s.SFR[REG_DPH1])<<8 | uint16(s.SFR[REG_DPL1])
	return selected, dptr0, dptr1
}

// EffectivePort computes the value a port presents to the outside world:
// an output pin asserts its register bit, an input pin floats high via
// pull-up (spec.md §4.2).
func EffectivePort(value, direction uint8) uint8 {
	return value | direction
}
