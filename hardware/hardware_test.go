package hardware

import (
	"testing"

	"github.com/cubecore/cubehw/exception"
	"github.com/cubecore/cubehw/sfr"
	"github.com/go-test/deep"
)

type fakeClock struct {
	now uint64
}

func (f *fakeClock) Clocks() uint64 { return f.now }

func mustInit(t *testing.T) *Hardware {
	t.Helper()
	h, err := Init(&Def{ID: 1, Timer: &fakeClock{}})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	return h
}

var _ Host = (*Hardware)(nil)

func TestInitRequiresTimer(t *testing.T) {
	if _, err := Init(&Def{}); err == nil {
		t.Error("Init with no Timer should have errored")
	}
}

func TestGetHWIDRoundTrip(t *testing.T) {
	h := mustInit(t)
	h.SFRWrite(sfr.FSR, sfr.FSRWriteEnable)

	bytes := []uint8{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88}
	for i, b := range bytes {
		if _, err := h.NVMWrite(0, uint16(i), b); err != nil {
			t.Fatalf("NVMWrite(%d): %v", i, err)
		}
	}
	if got, want := h.GetHWID(), uint64(0x8877665544332211); got != want {
		t.Errorf("got %.16X want %.16X", got, want)
	}
}

func TestNVMWriteDisabledRaisesException(t *testing.T) {
	h := mustInit(t)
	cycles, err := h.NVMWrite(0x100, 0, 0x00)
	if err != nil {
		t.Fatalf("NVMWrite: %v", err)
	}
	if got, want := cycles, 0; got != want {
		t.Errorf("cycles: got %d want %d", got, want)
	}
	if got, want := h.GetExceptionCount(), uint32(1); got != want {
		t.Errorf("exception count: got %d want %d", got, want)
	}
}

func TestNVMWriteEnabledReportsSelfTimedCycles(t *testing.T) {
	h := mustInit(t)
	h.SFRWrite(sfr.FSR, sfr.FSRWriteEnable)
	cycles, err := h.NVMWrite(0x100, 0, 0x00)
	if err != nil {
		t.Fatalf("NVMWrite: %v", err)
	}
	if got, want := cycles, 12800; got != want {
		t.Errorf("cycles: got %d want %d", got, want)
	}
	if got, want := h.GetExceptionCount(), uint32(0); got != want {
		t.Errorf("exception count: got %d want %d", got, want)
	}
}

func TestGraphicsTickCapturesLatch(t *testing.T) {
	h := mustInit(t)
	h.SFRWrite(sfr.AddrPortDir, 0x00)
	h.SFRWrite(sfr.AddrPort, 0xAA)
	h.SFRWrite(sfr.CtrlPortDir, 0x00)

	h.SFRWrite(sfr.CtrlPort, sfr.CtrlFlashLAT1)
	if got, want := h.LAT1(), uint8(0xAA>>1); got != want {
		t.Errorf("LAT1: got %.2X want %.2X", got, want)
	}
	if got, want := h.GetExceptionCount(), uint32(0); got != want {
		t.Errorf("unexpected exceptions during plain latch capture: %d", got)
	}
}

func TestGraphicsTickDetectsBusContention(t *testing.T) {
	h := mustInit(t)
	h.SFRWrite(sfr.AddrPortDir, 0x00)
	h.SFRWrite(sfr.AddrPort, 0x10)
	h.SFRWrite(sfr.CtrlPortDir, 0x00)

	// BusPortDir defaults to 0x00 (mcuDataDrv == true). Powering the flash
	// and asserting OE makes it drive the bus too, producing contention.
	h.SFRWrite(sfr.CtrlPort, sfr.CtrlDSEn|sfr.CtrlFlashOE)

	if got, want := h.GetExceptionCount(), uint32(1); got != want {
		t.Errorf("exception count: got %d want %d", got, want)
	}
}

func TestGraphicsTickNoContentionWhenMCUFloats(t *testing.T) {
	h := mustInit(t)
	h.SFRWrite(sfr.BusPortDir, 0xFF) // all input: MCU never drives.
	h.SFRWrite(sfr.AddrPortDir, 0x00)
	h.SFRWrite(sfr.AddrPort, 0x10)
	h.SFRWrite(sfr.CtrlPortDir, 0x00)
	h.SFRWrite(sfr.CtrlPort, sfr.CtrlDSEn|sfr.CtrlFlashOE)

	if got, want := h.GetExceptionCount(), uint32(0); got != want {
		t.Errorf("exception count: got %d want %d", got, want)
	}
}

func TestExternalExceptionPropagates(t *testing.T) {
	h := mustInit(t)
	h.Raise(0x55, exception.External("ILLEGAL_OPCODE"))
	if got, want := h.GetExceptionCount(), uint32(1); got != want {
		t.Errorf("exception count: got %d want %d", got, want)
	}
}

func TestSetTouch(t *testing.T) {
	h := mustInit(t)
	h.SetTouch(true)
	if got, want := h.SFRRead(sfr.MiscPort)&sfr.MiscTouch, sfr.MiscTouch; got != want {
		t.Errorf("touch bit not set: got %.2X want %.2X", got, want)
	}
	h.SetTouch(false)
	if got, want := h.SFRRead(sfr.MiscPort)&sfr.MiscTouch, uint8(0); got != want {
		t.Errorf("touch bit not cleared: got %.2X want %.2X", got, want)
	}
}

func TestSetAccelerationSaturates(t *testing.T) {
	h := mustInit(t)
	h.SetAcceleration(5.0, -5.0, 0.0)
	v := h.Accel().Vector()
	if got, want := v.X, int16(32767); got != want {
		t.Errorf("X: got %d want %d", got, want)
	}
	if got, want := v.Y, int16(-32768); got != want {
		t.Errorf("Y: got %d want %d", got, want)
	}
}

func TestTestWakeOnPinUsesAccelInt2(t *testing.T) {
	h := mustInit(t)
	h.SFRWrite(sfr.WUOPC0, 0x01)
	h.state.SFR[sfr.P2] = 0x01
	if got, want := h.TestWakeOnPin(), true; got != want {
		t.Errorf("got %t want %t", got, want)
	}
}

func TestFullResetErasesFlash(t *testing.T) {
	h := mustInit(t)
	h.SFRWrite(sfr.FSR, sfr.FSRWriteEnable)
	if _, err := h.NVMWrite(0, 0, 0x00); err != nil {
		t.Fatalf("NVMWrite: %v", err)
	}
	if got, want := h.GetHWID()&0xFF, uint64(0x00); got != want {
		t.Fatalf("precondition: got %.2X want %.2X", got, want)
	}
	h.FullReset()
	if got, want := h.GetHWID()&0xFF, uint64(0xFF); got != want {
		t.Errorf("HWID byte after FullReset: got %.2X want %.2X", got, want)
	}
}

func TestResetLeavesStateRecordUnchanged(t *testing.T) {
	h := mustInit(t)
	h.SFRWrite(sfr.FSR, sfr.FSRWriteEnable)
	h.state.PC = 0x1234

	before := h.State()
	snapshot := *before

	h.Reset()

	if diff := deep.Equal(snapshot, *h.State()); diff != nil {
		t.Errorf("Reset() should not touch the CPU state record, got diff: %v", diff)
	}
}

func TestResetDoesNotEraseFlash(t *testing.T) {
	h := mustInit(t)
	h.SFRWrite(sfr.FSR, sfr.FSRWriteEnable)
	if _, err := h.NVMWrite(0, 0, 0x00); err != nil {
		t.Fatalf("NVMWrite: %v", err)
	}
	h.Reset()
	if got, want := h.GetHWID()&0xFF, uint64(0x00); got != want {
		t.Errorf("Reset should not touch flash: got %.2X want %.2X", got, want)
	}
}

func TestHWDeadlineWorkClearsFlag(t *testing.T) {
	h := mustInit(t)
	h.state.NeedHardwareTick = true
	h.HWDeadlineWork()
	if h.state.NeedHardwareTick {
		t.Error("NeedHardwareTick should be cleared after a scheduler pass")
	}
}

func TestInitVCDRegistersScopes(t *testing.T) {
	h := mustInit(t)
	w := h.InitVCD()
	if got, want := len(w.Scopes), 3; got != want {
		t.Fatalf("scope count: got %d want %d (gpio, cpu, radio)", got, want)
	}
	for _, want := range []string{"gpio", "cpu", "radio"} {
		found := false
		for _, s := range w.Scopes {
			if s.Name == want {
				found = true
			}
		}
		if !found {
			t.Errorf("expected a %s scope", want)
		}
	}
}

func TestLogWatchdogResetDoesNotPanic(t *testing.T) {
	h := mustInit(t)
	h.LogWatchdogReset(0x1234)
}

func TestTraceExecutionDoesNotPanic(t *testing.T) {
	h := mustInit(t)
	h.TraceExecution("NOP")
}

func TestDebugByteDoesNotPanic(t *testing.T) {
	h := mustInit(t)
	h.SFRWrite(sfr.REG_DEBUG, 0x42)
	h.DebugByte()
}
