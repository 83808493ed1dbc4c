// Package hardware implements Hardware, the per-cube orchestrator: the
// graphics bus, address latches, peripheral tick scheduler, NVM programming
// model, bus-contention detector, and SFR dispatch described across
// spec.md §3-§4. It is adapted from atari2600.go's Init-validates-then-
// wires-chips pattern, generalized from a fixed 6502+PIA+TIA trio to the
// cube's CPU-state-record-plus-nine-peripherals shape.
package hardware

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/cubecore/cubehw/accel"
	"github.com/cubecore/cubehw/deadline"
	"github.com/cubecore/cubehw/debug"
	"github.com/cubecore/cubehw/exception"
	"github.com/cubecore/cubehw/flashmem"
	"github.com/cubecore/cubehw/latch"
	"github.com/cubecore/cubehw/nvm"
	"github.com/cubecore/cubehw/periph/adc"
	"github.com/cubecore/cubehw/periph/backlight"
	"github.com/cubecore/cubehw/periph/extflash"
	"github.com/cubecore/cubehw/periph/i2c"
	"github.com/cubecore/cubehw/periph/lcd"
	"github.com/cubecore/cubehw/periph/mdu"
	"github.com/cubecore/cubehw/periph/neighbors"
	"github.com/cubecore/cubehw/periph/rng"
	"github.com/cubecore/cubehw/periph/spi"
	"github.com/cubecore/cubehw/sfr"
	"github.com/cubecore/cubehw/trace"
)

// sfrTriggersGraphicsTick lists the SFR addresses whose write should pulse
// a GraphicsTick, matching cube_hardware.cpp's sfrWrite dispatch for the
// port/control registers that feed the multiplexed graphics bus.
var sfrTriggersGraphicsTick = map[int]bool{
	sfr.AddrPort:    true,
	sfr.AddrPortDir: true,
	sfr.BusPort:     true,
	sfr.BusPortDir:  true,
	sfr.CtrlPort:    true,
	sfr.CtrlPortDir: true,
}

// Host is the CPU callback surface spec.md §6 describes: the set of calls
// an external 8051 instruction interpreter makes into the hardware core as
// it executes. *Hardware implements this directly; the interpreter holds
// no other reference back into this package, mirroring how
// atari2600.controller presents memory.Ram to the cpu.Chip it owns without
// the chip needing to know about atari2600 itself.
type Host interface {
	SFRRead(reg int) uint8
	SFRWrite(reg int, val uint8)
	NVMRead(addr uint16) (uint8, error)
	NVMWrite(pc uint16, addr uint16, data uint8) (selfTimedCycles int, err error)
	GraphicsTick()
	HWDeadlineWork()
	TestWakeOnPin() bool
	Raise(pc uint16, kind exception.Kind)
	LogWatchdogReset(pc uint16)
	TraceExecution(assembly string)
	DebugByte()
}

// DefaultNVMSize and DefaultExtFlashSize are the cube's real flash
// dimensions: a small mask-programmable NVM holding the HWID plus
// firmware-defined calibration data, and a larger external serial flash
// for assets.
const (
	DefaultNVMSize      = 256
	DefaultExtFlashSize = 1 << 22 // 22 address bits, per spec.md §3.
)

// BatteryADCDefault is the simulated battery telemetry value Init seeds
// into the accelerometer's auxiliary ADC channel (cube_hardware.cpp's
// i2c.accel.setADC1(0x8760) boot-time seed).
const BatteryADCDefault = 0x8760

// Def configures a Hardware instance at construction.
type Def struct {
	// ID identifies this cube for logging and debugger attachment.
	ID int

	// Timer is the shared master clock. Required.
	Timer deadline.Clock

	// NVMSize and ExtFlashSize override the default flash dimensions.
	// Zero means "use the default".
	NVMSize      int
	ExtFlashSize int

	// NVMStorage and ExtFlashStorage let a host supply its own backing
	// arrays (e.g. to persist across process restarts), matching
	// spec.md §6's "flash_storage: handle" construction knob. Either may
	// be nil, in which case a fresh erased Bank of the configured size is
	// allocated.
	NVMStorage      *flashmem.Bank
	ExtFlashStorage *flashmem.Bank

	// Debugger, if non-nil, is attached at construction (spec.md §9
	// Design Notes: a capability, not a process-wide global).
	Debugger debug.Debugger

	// Trace is the diagnostic output stream. Defaults to os.Stderr.
	Trace io.Writer
	// Verbose enables per-instruction execution tracing and full state
	// dumps on exception.
	Verbose bool

	// AccelRand seeds the acceleration-input dither. Defaults to a source
	// with the fixed seed 1.
	AccelRand *rand.Rand

	// RNGSource seeds the hardware RNG peripheral register. Defaults to a
	// source with the fixed seed 2, distinct from AccelRand's default.
	RNGSource *rand.Rand
}

// Hardware is one cube instance: CPU state record, flash storage, every
// peripheral, the address latches, and the observability hooks (spec.md
// §3).
type Hardware struct {
	id    int
	timer deadline.Clock
	state sfr.State

	nvmBank *flashmem.Bank
	extBank *flashmem.Bank
	nvm     *nvm.Model

	latches   *latch.Latches
	bus       uint8
	flashDrv  bool
	rfcken    bool

	lcd       *lcd.Chip
	ext       *extflash.Chip
	i2cBus    *i2c.Bus
	spiBus    *spi.Bus
	adc       *adc.Chip
	mdu       *mdu.Chip
	rng       *rng.Chip
	neighbors *neighbors.Chip
	backlight *backlight.Chip

	deadline *deadline.Handle

	exceptions exception.Counter
	debugCap   *debug.Capability
	tracer     *trace.Tracer
	accelSrc   accel.Source
}

// Init constructs and power-on-resets a Hardware instance.
func Init(def *Def) (*Hardware, error) {
	if def.Timer == nil {
		return nil, fmt.Errorf("hardware: Timer must be non-nil")
	}

	nvmSize := def.NVMSize
	if nvmSize == 0 {
		nvmSize = DefaultNVMSize
	}
	extSize := def.ExtFlashSize
	if extSize == 0 {
		extSize = DefaultExtFlashSize
	}

	nvmBank := def.NVMStorage
	if nvmBank == nil {
		b, err := flashmem.New(nvmSize)
		if err != nil {
			return nil, fmt.Errorf("hardware: can't allocate NVM: %v", err)
		}
		nvmBank = b
	}
	extBank := def.ExtFlashStorage
	if extBank == nil {
		b, err := flashmem.New(extSize)
		if err != nil {
			return nil, fmt.Errorf("hardware: can't allocate external flash: %v", err)
		}
		extBank = b
	}

	traceOut := def.Trace
	if traceOut == nil {
		traceOut = os.Stderr
	}

	accelRand := def.AccelRand
	if accelRand == nil {
		accelRand = rand.New(rand.NewSource(1))
	}
	rngRand := def.RNGSource
	if rngRand == nil {
		rngRand = rand.New(rand.NewSource(2))
	}

	h := &Hardware{
		id:        def.ID,
		timer:     def.Timer,
		nvmBank:   nvmBank,
		extBank:   extBank,
		lcd:       lcd.New(),
		ext:       extflash.New(extBank),
		i2cBus:    i2c.New(),
		spiBus:    spi.New(),
		adc:       adc.New(),
		mdu:       mdu.New(),
		rng:       rng.New(rngRand),
		neighbors: neighbors.New(),
		backlight: backlight.New(),
		deadline:  deadline.New(def.Timer),
		debugCap:  debug.New(),
		tracer:    trace.New(def.ID, traceOut, def.Verbose),
		accelSrc:  accel.MathRand{R: accelRand},
	}
	h.latches = latch.New(h.backlight, &h.i2cBus.Accel)
	h.nvm = nvm.New(h.nvmBank, func() bool {
		return h.state.SFR[sfr.FSR]&sfr.FSRWriteEnable != 0
	}, h)

	if def.Debugger != nil {
		h.debugCap.Attach(def.Debugger)
	}

	h.init()
	return h, nil
}

// init wires up power-on state, matching Hardware::init in
// cube_hardware.cpp minus the CPU reset and firmware/code-memory loading,
// which belong to the (external, out of scope) CPU interpreter.
func (h *Hardware) init() {
	h.reset()
	h.i2cBus.Accel.SetADC1(BatteryADCDefault)
	h.SetTouch(false)
}

// State returns the CPU state record this Hardware owns. The external CPU
// interpreter is expected to execute instructions directly against it
// (spec.md §3, §9: no back-pointer, Hardware is the only thing that calls
// into peripheral logic).
func (h *Hardware) State() *sfr.State {
	return &h.state
}

// ID returns this cube's identifier.
func (h *Hardware) ID() int {
	return h.id
}

// reset performs the internal latch/bus reset common to both Reset and
// FullReset.
func (h *Hardware) reset() {
	h.latches = latch.New(h.backlight, &h.i2cBus.Accel)
	h.bus = 0
	h.flashDrv = false
	h.rfcken = false
	h.deadline.Reset()
}

// Reset performs a soft reset: it does not wipe flash (spec.md §3
// Lifecycle).
func (h *Hardware) Reset() {
	h.reset()
}

// FullReset erases both flash arrays to all-ones, then performs a soft
// reset (spec.md §3 Lifecycle).
func (h *Hardware) FullReset() {
	h.nvmBank.PowerOn()
	h.extBank.PowerOn()
	h.reset()
}

// GetHWID reads the cube's 64 bit hardware identifier straight from NVM,
// little-endian (spec.md §6). May read back ~0 if the cube hasn't yet
// programmed its own HWID.
func (h *Hardware) GetHWID() uint64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(h.nvmBank.Read(i))
	}
	return v
}

// GetExceptionCount returns the per-cube exception tally.
func (h *Hardware) GetExceptionCount() uint32 {
	return h.exceptions.Count()
}

// IsDebugging reports whether a debugger is attached to this cube.
func (h *Hardware) IsDebugging() bool {
	return h.debugCap.IsAttached()
}

// Raise implements exception.Callback: every fault detected inside this
// package's own logic (bus contention, NVM write-disable) funnels through
// here, matching cube_hardware.cpp's except()/incExceptionCount() pair.
// External CPU-interpreter-detected faults (illegal opcode, stack
// overflow) should also be routed through this method with
// exception.External(name) so they share the same counting/logging/
// debugger-transfer path.
func (h *Hardware) Raise(pc uint16, kind exception.Kind) {
	h.exceptions.Inc()
	h.tracer.Exception(pc, kind, &h.state)
	if h.IsDebugging() {
		h.debugCap.HandleException(pc, kind.String())
	}
}

// LogWatchdogReset logs a watchdog-triggered reset (spec.md §4.8). The CPU
// interpreter calls this just before it handles the reset itself, matching
// Hardware::watchdogReset in cube_hardware.cpp.
func (h *Hardware) LogWatchdogReset(pc uint16) {
	h.tracer.WatchdogReset(pc, h.latches.Lat2, h.latches.Lat1,
		h.state.SFR[sfr.AddrPort], h.state.SFR[sfr.BusPort], h.state.SFR[sfr.REG_ACC])
}

// TraceExecution emits one execution-trace line for the current CPU state
// (spec.md §4.8): PC, IRQ nesting, accumulator, active register bank, both
// data pointers, the four parallel ports and their direction registers, the
// latches, watchdog state, six timer bytes, RTC2 state, and the decoded
// assembly string the CPU interpreter supplies (decoding itself is out of
// scope here).
func (h *Hardware) TraceExecution(assembly string) {
	bank, regs := h.state.RegisterBank()
	dptrSelected, dptr0, dptr1 := h.state.DPTR()
	h.tracer.Execution(trace.ExecutionFields{
		PC:           h.state.PC,
		IRQCount:     h.state.IRQCount,
		Acc:          h.state.SFR[sfr.REG_ACC],
		RegBank:      bank,
		Regs:         regs,
		DPTRSelected: dptrSelected,
		DPTR0:        dptr0,
		DPTR1:        dptr1,
		P0:           h.state.SFR[sfr.P0],
		P1:           h.state.SFR[sfr.P1],
		P2:           h.state.SFR[sfr.P2],
		P3:           h.state.SFR[sfr.P3],
		P0Dir:        h.state.SFR[sfr.P0Dir],
		P1Dir:        h.state.SFR[sfr.P1Dir],
		P2Dir:        h.state.SFR[sfr.P2Dir],
		P3Dir:        h.state.SFR[sfr.P3Dir],
		Lat1:         h.latches.Lat1,
		Lat2:         h.latches.Lat2,
		WDTEnabled:   h.state.WDTEnabled,
		WDTCounter:   h.state.WDTCounter,
		TH0:          h.state.SFR[sfr.REG_TH0],
		TL0:          h.state.SFR[sfr.REG_TL0],
		TH1:          h.state.SFR[sfr.REG_TH1],
		TL1:          h.state.SFR[sfr.REG_TL1],
		TH2:          h.state.SFR[sfr.REG_TH2],
		TL2:          h.state.SFR[sfr.REG_TL2],
		RTC2:         h.state.RTC2,
		RTC2Cmp0:     h.state.SFR[sfr.REG_RTC2CMP0],
		RTC2Cmp1:     h.state.SFR[sfr.REG_RTC2CMP1],
		Assembly:     assembly,
	})
}

// DebugByte logs the DEBUG SFR register (spec.md §9: Hardware::debugByte).
func (h *Hardware) DebugByte() {
	h.tracer.DebugByte(h.state.SFR[sfr.REG_DEBUG])
}

// NVMWrite programs addr with data (spec.md §4.4 / §6's CPU callback
// surface nvm_write).
func (h *Hardware) NVMWrite(pc uint16, addr uint16, data uint8) (selfTimedCycles int, err error) {
	return h.nvm.Write(pc, addr, data)
}

// NVMRead reads addr (spec.md §6's CPU callback surface nvm_read).
func (h *Hardware) NVMRead(addr uint16) (uint8, error) {
	return h.nvm.Read(addr)
}

// SetTouch sets or clears the touch bit of the misc port directly (spec.md
// §9: setTouch flips MISC_PORT with no peripheral indirection).
func (h *Hardware) SetTouch(touching bool) {
	if touching {
		h.state.SFR[sfr.MiscPort] |= sfr.MiscTouch
	} else {
		h.state.SFR[sfr.MiscPort] &^= sfr.MiscTouch
	}
}

// SetAcceleration scales and stores the cube's current acceleration in G's
// (spec.md §4.7).
func (h *Hardware) SetAcceleration(xG, yG, zG float64) {
	h.i2cBus.Accel.SetVector(accel.Scale(h.accelSrc, xG, yG, zG))
}

// TestWakeOnPin implements spec.md §4.3: mirrors accelerometer INT2 into
// LAT1 when LAT1 is configured as input, then evaluates the wake-on-pin
// condition.
func (h *Hardware) TestWakeOnPin() bool {
	return latch.WakeOnPin(&h.state, &h.i2cBus.Accel)
}

// Neighbors returns the neighbor-detect peripheral for host wiring/tests.
func (h *Hardware) Neighbors() *neighbors.Chip {
	return h.neighbors
}

// ADC returns the ADC peripheral for host wiring/tests.
func (h *Hardware) ADC() *adc.Chip {
	return h.adc
}

// MDU returns the multiply/divide unit for host wiring/tests.
func (h *Hardware) MDU() *mdu.Chip {
	return h.mdu
}

// RNG returns the hardware RNG peripheral for host wiring/tests.
func (h *Hardware) RNG() *rng.Chip {
	return h.rng
}

// Accel returns the accelerometer device for host wiring/tests.
func (h *Hardware) Accel() *i2c.Accel {
	return &h.i2cBus.Accel
}

// Backlight returns the backlight driver for host wiring/tests.
func (h *Hardware) Backlight() *backlight.Chip {
	return h.backlight
}

// LAT1 and LAT2 expose the current address latch values for tests and
// waveform export.
func (h *Hardware) LAT1() uint8 { return h.latches.Lat1 }
func (h *Hardware) LAT2() uint8 { return h.latches.Lat2 }

// Bus returns the current resolved shared-bus byte.
func (h *Hardware) Bus() uint8 { return h.bus }

// SetRFCKEN sets the radio clock-enable bit the scheduler passes to the
// radio's tick (spec.md §3: "an rfcken radio-clock-enable bit").
func (h *Hardware) SetRFCKEN(v bool) { h.rfcken = v }

// GraphicsTick resolves one cycle of the multiplexed address/data graphics
// bus: it composes the effective port values, cycles the external flash
// and LCD controllers, commits the address latches, then resolves the
// shared bus byte against whichever device (if any) drove it this cycle,
// raising a bus-contention exception if more than one did (spec.md §4.2).
//
// Must be called whenever AddrPort, AddrPortDir, BusPort, BusPortDir,
// CtrlPort, or CtrlPortDir changes, and latch commitment must precede bus
// resolution (spec.md §5 ordering guarantee).
func (h *Hardware) GraphicsTick() {
	busPort := sfr.EffectivePort(h.state.SFR[sfr.BusPort], h.state.SFR[sfr.BusPortDir])
	addrPort := sfr.EffectivePort(h.state.SFR[sfr.AddrPort], h.state.SFR[sfr.AddrPortDir])
	ctrlPort := sfr.EffectivePort(h.state.SFR[sfr.CtrlPort], h.state.SFR[sfr.CtrlPortDir])

	addr7 := addrPort >> 1
	a21 := h.i2cBus.Accel.INT2()
	mcuDataDrv := h.state.SFR[sfr.BusPortDir] != 0xFF

	flashAddr := uint32(addr7) | uint32(h.latches.Lat1)<<7 | uint32(h.latches.Lat2)<<14
	if a21 {
		flashAddr |= 1 << 21
	}

	flashPins := extflash.Pins{
		Addr:   flashAddr,
		Power:  ctrlPort&sfr.CtrlDSEn != 0,
		OE:     ctrlPort&sfr.CtrlFlashOE != 0,
		CE:     false,
		WE:     ctrlPort&sfr.CtrlFlashWE != 0,
		DataIn: h.bus,
	}
	lcdPins := lcd.Pins{
		Power:  ctrlPort&sfr.Ctrl3V3En != 0,
		CSX:    false,
		DCX:    ctrlPort&sfr.CtrlLCDDCX != 0,
		WRX:    addrPort&1 != 0,
		RDX:    false,
		DataIn: h.bus,
	}

	flashDrv := h.ext.Cycle(flashPins)
	h.lcd.Cycle(lcdPins)

	h.latches.Update(ctrlPort, addr7, h.timer.Clocks())

	switch {
	case !mcuDataDrv && !flashDrv:
		// Floating bus: nothing drives it, the last resolved value holds.
	case !mcuDataDrv && flashDrv:
		h.bus = h.ext.DataOut()
	case mcuDataDrv && !flashDrv:
		h.bus = busPort
	default:
		h.Raise(h.state.PC, exception.BusContention)
	}

	h.flashDrv = flashDrv
	h.state.SFR[sfr.BusPort] = h.bus
}

// SFRRead returns the current value of SFR register reg. Reads never carry
// side effects here; the peripherals present their state through the SFR
// array directly rather than reacting to being read.
func (h *Hardware) SFRRead(reg int) uint8 {
	return h.state.SFR[reg]
}

// SFRWrite stores val into SFR register reg, pulsing a GraphicsTick if reg
// is one of the port registers that feed the graphics bus (spec.md §4.1).
func (h *Hardware) SFRWrite(reg int, val uint8) {
	h.state.SFR[reg] = val
	if sfrTriggersGraphicsTick[reg] {
		h.GraphicsTick()
	}
}

// HWDeadlineWork runs one pass of the fixed-order peripheral tick scheduler
// (spec.md §4.5), accumulating the next clock at which any peripheral needs
// attention. The interpreter calls this whenever NeedHardwareTick is set or
// a proposed deadline has been reached.
func (h *Hardware) HWDeadlineWork() {
	h.state.NeedHardwareTick = false
	h.deadline.Reset()

	h.lcd.Tick(h.deadline)
	h.adc.Tick(h.deadline)
	h.spiBus.Tick(h.deadline, &h.state.SFR[sfr.SPIRCON0])
	h.i2cBus.Tick(h.deadline)
	h.ext.Tick(h.deadline)
	h.spiBus.Radio.Tick(h.deadline, h.rfcken)
}

// NextDeadline returns the clock value accumulated by the most recent
// HWDeadlineWork pass, and whether any peripheral proposed one.
func (h *Hardware) NextDeadline() (uint64, bool) {
	return h.deadline.Next()
}

// InitVCD registers this cube's waveform signals, matching the scopes and
// bit-fields cube_hardware.cpp's initVCD wires up (spec.md §4.9, §6). The
// returned Waveform is a passive registry; actual VCD encoding is an
// external collaborator's job.
func (h *Hardware) InitVCD() *trace.Waveform {
	w := &trace.Waveform{}

	gpio := w.EnterScope("gpio")
	gpio.Define("addr_port", &h.state.SFR[sfr.AddrPort], 8, 0)
	gpio.Define("addr_dir", &h.state.SFR[sfr.AddrPortDir], 8, 0)
	gpio.Define("bus_port", &h.state.SFR[sfr.BusPort], 8, 0)
	gpio.Define("bus_dir", &h.state.SFR[sfr.BusPortDir], 8, 0)
	gpio.Define("ctrl_port", &h.state.SFR[sfr.CtrlPort], 8, 0)
	gpio.Define("ctrl_dir", &h.state.SFR[sfr.CtrlPortDir], 8, 0)
	gpio.Define("lcd_dcx", &h.state.SFR[sfr.CtrlPort], 1, 0)
	gpio.Define("flash_lat1", &h.state.SFR[sfr.CtrlPort], 1, 1)
	gpio.Define("flash_lat2", &h.state.SFR[sfr.CtrlPort], 1, 2)
	gpio.Define("en3v3", &h.state.SFR[sfr.CtrlPort], 1, 3)
	gpio.Define("ds_en", &h.state.SFR[sfr.CtrlPort], 1, 4)
	gpio.Define("flash_we", &h.state.SFR[sfr.CtrlPort], 1, 5)
	gpio.Define("flash_oe", &h.state.SFR[sfr.CtrlPort], 1, 6)
	gpio.Define("misc_port", &h.state.SFR[sfr.MiscPort], 8, 0)
	gpio.DefineWide("lat1", 8, func() uint64 { return uint64(h.latches.Lat1) })
	gpio.DefineWide("lat2", 8, func() uint64 { return uint64(h.latches.Lat2) })
	gpio.DefineWide("bus", 8, func() uint64 { return uint64(h.bus) })
	gpio.DefineWide("nb0", 1, func() uint64 { return bit64(h.neighbors.Detected(neighbors.Top)) })
	gpio.DefineWide("nb0_dir", 1, func() uint64 { return bit64(h.neighbors.Direction(neighbors.Top)) })
	gpio.DefineWide("nb1", 1, func() uint64 { return bit64(h.neighbors.Detected(neighbors.Left)) })
	gpio.DefineWide("nb1_dir", 1, func() uint64 { return bit64(h.neighbors.Direction(neighbors.Left)) })
	gpio.DefineWide("nb2", 1, func() uint64 { return bit64(h.neighbors.Detected(neighbors.Bottom)) })
	gpio.DefineWide("nb2_dir", 1, func() uint64 { return bit64(h.neighbors.Direction(neighbors.Bottom)) })
	gpio.DefineWide("nb3", 1, func() uint64 { return bit64(h.neighbors.Detected(neighbors.Right)) })
	gpio.DefineWide("nb3_dir", 1, func() uint64 { return bit64(h.neighbors.Direction(neighbors.Right)) })
	gpio.DefineWide("nb_in", 1, func() uint64 { return bit64(h.neighbors.RawInput()) })
	gpio.DefineWide("nb_in_dir", 1, func() uint64 { return bit64(h.neighbors.InputDirection()) })

	cpu := w.EnterScope("cpu")
	cpu.DefineWide("irq_count", 3, func() uint64 { return uint64(h.state.IRQCount) & 0x7 })
	cpu.DefineWide("pc", 16, func() uint64 { return uint64(h.state.PC) })
	cpu.Define("acc", &h.state.SFR[sfr.REG_ACC], 8, 0)
	cpu.Define("psw", &h.state.SFR[sfr.REG_PSW], 8, 0)
	cpu.Define("sp", &h.state.SFR[sfr.REG_SP], 8, 0)
	cpu.Define("tl0", &h.state.SFR[sfr.REG_TL0], 8, 0)
	cpu.Define("th0", &h.state.SFR[sfr.REG_TH0], 8, 0)
	cpu.Define("tl1", &h.state.SFR[sfr.REG_TL1], 8, 0)
	cpu.Define("th1", &h.state.SFR[sfr.REG_TH1], 8, 0)
	cpu.Define("tl2", &h.state.SFR[sfr.REG_TL2], 8, 0)
	cpu.Define("th2", &h.state.SFR[sfr.REG_TH2], 8, 0)
	cpu.Define("tcon", &h.state.SFR[sfr.REG_TCON], 8, 0)
	cpu.Define("ircon", &h.state.SFR[sfr.REG_IRCON], 8, 0)
	cpu.Define("debug", &h.state.SFR[sfr.REG_DEBUG], 8, 0)

	radio := w.EnterScope("radio")
	h.spiBus.Radio.DefineWaveform(radio)

	return w
}

func bit64(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
