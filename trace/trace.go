// Package trace implements the cube's diagnostic output: exception
// logging, watchdog-reset logging, per-instruction execution tracing, and
// waveform signal registration (spec.md §4.8, §4.9). It follows the
// teacher's mix of plain log.Printf for running commentary and
// github.com/davecgh/go-spew for full structured dumps when a human needs
// to see everything at once.
package trace

import (
	"fmt"
	"io"
	"log"

	"github.com/davecgh/go-spew/spew"
)

// Tracer owns the diagnostic output stream for one cube.
type Tracer struct {
	id   int
	out  *log.Logger
	verbose bool
}

// New returns a Tracer for cube id writing to w. verbose enables per-
// instruction execution tracing, which is otherwise a no-op since it would
// dominate output at full CPU speed.
func New(id int, w io.Writer, verbose bool) *Tracer {
	return &Tracer{id: id, out: log.New(w, "", 0), verbose: verbose}
}

// Log emits a formatted diagnostic line unconditionally, mirroring
// Tracer::log in cube_hardware.cpp.
func (t *Tracer) Log(format string, args ...interface{}) {
	t.out.Printf(format, args...)
}

// LogV emits a formatted diagnostic line only when verbose tracing is
// enabled, mirroring Tracer::logV.
func (t *Tracer) LogV(format string, args ...interface{}) {
	if !t.verbose {
		return
	}
	t.out.Printf(format, args...)
}

// Exception logs an exception at pc with the given kind name, and dumps
// state via go-spew when verbose tracing is enabled, matching
// cpu/cpu_test.go's spew.Sdump(c) fatal-path convention for "here is
// everything, go figure it out" diagnostics.
func (t *Tracer) Exception(pc uint16, kind fmt.Stringer, state interface{}) {
	t.Log("[%2d] EXCEPTION at 0x%04x: %s", t.id, pc, kind)
	if t.verbose {
		t.out.Printf("state:\n%s", spew.Sdump(state))
	}
}

// WatchdogReset logs a watchdog-triggered reset. Must be idempotent and
// side-effect-free beyond emitting diagnostics (spec.md §7).
func (t *Tracer) WatchdogReset(pc uint16, lat2, lat1, addrPort, busPort, acc uint8) {
	t.LogV("CUBE[%d]: Watchdog reset. pc=%02x bus=[%02x.%02x.%02x -> %02x] a=%02x",
		t.id, pc, lat2, lat1, addrPort, busPort, acc)
}

// DebugByte logs the DEBUG SFR register, matching Hardware::debugByte.
func (t *Tracer) DebugByte(v uint8) {
	t.out.Printf("DEBUG[%d]: %02x", t.id, v)
}

// Execution emits one execution-trace line, matching the fields
// Hardware::traceExecution gathers (spec.md §4.8). assembly is the decoded
// instruction string, supplied by the external CPU interpreter since
// decoding opcodes is out of scope here.
func (t *Tracer) Execution(fields ExecutionFields) {
	t.LogV("@%04X i%d a%02X reg%d[%02X%02X%02X%02X-%02X%02X%02X%02X] "+
		"dptr%d[%04X%04X] port[%02X%02X%02X%02X-%02X%02X%02X%02X] "+
		"lat[%02x.%02x] wdt%d[%06x] tmr[%02X%02X%02X%02X%02X%02X] "+
		"rtc[%04x-%02x%02x]  %s",
		fields.PC, fields.IRQCount, fields.Acc,
		fields.RegBank, fields.Regs[0], fields.Regs[1], fields.Regs[2], fields.Regs[3],
		fields.Regs[4], fields.Regs[5], fields.Regs[6], fields.Regs[7],
		fields.DPTRSelected, fields.DPTR0, fields.DPTR1,
		fields.P0, fields.P1, fields.P2, fields.P3,
		fields.P0Dir, fields.P1Dir, fields.P2Dir, fields.P3Dir,
		fields.Lat2, fields.Lat1,
		boolToInt(fields.WDTEnabled), fields.WDTCounter,
		fields.TH0, fields.TL0, fields.TH1, fields.TL1, fields.TH2, fields.TL2,
		fields.RTC2, fields.RTC2Cmp1, fields.RTC2Cmp0,
		fields.Assembly)
}

// ExecutionFields is the snapshot Hardware gathers each instruction for
// Execution to format.
type ExecutionFields struct {
	PC       uint16
	IRQCount uint8
	Acc      uint8
	RegBank  uint8
	Regs     [8]uint8
	DPTRSelected uint8
	DPTR0, DPTR1 uint16
	P0, P1, P2, P3                 uint8
	P0Dir, P1Dir, P2Dir, P3Dir     uint8
	Lat1, Lat2                     uint8
	WDTEnabled                     bool
	WDTCounter                     uint32
	TH0, TL0, TH1, TL1, TH2, TL2   uint8
	RTC2                           uint16
	RTC2Cmp0, RTC2Cmp1             uint8
	Assembly                       string
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
