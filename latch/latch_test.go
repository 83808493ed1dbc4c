package latch

import (
	"testing"

	"github.com/cubecore/cubehw/sfr"
)

type recordingBacklight struct {
	calls []struct {
		lit     bool
		atClock uint64
	}
}

func (r *recordingBacklight) Cycle(lit bool, atClock uint64) {
	r.calls = append(r.calls, struct {
		lit     bool
		atClock uint64
	}{lit, atClock})
}

type fixedAccel struct {
	int2 bool
}

func (f fixedAccel) INT2() bool { return f.int2 }

func TestLatchRisingEdgeCapturesAddr(t *testing.T) {
	bl := &recordingBacklight{}
	l := New(bl, fixedAccel{})

	// Control port low: no latches armed yet.
	l.Update(0x00, 0x55, 0)
	if got, want := l.Lat1, uint8(0); got != want {
		t.Errorf("Lat1 before edge: got %.2X want %.2X", got, want)
	}

	// Rising edge on LAT1 should capture addr7.
	l.Update(sfr.CtrlFlashLAT1, 0x55, 10)
	if got, want := l.Lat1, uint8(0x55); got != want {
		t.Errorf("Lat1 after edge: got %.2X want %.2X", got, want)
	}
	if got, want := l.Lat2, uint8(0); got != want {
		t.Errorf("Lat2 should be untouched: got %.2X want %.2X", got, want)
	}

	// Holding the line high (no new edge) with a different address must not
	// recapture.
	l.Update(sfr.CtrlFlashLAT1, 0x2A, 20)
	if got, want := l.Lat1, uint8(0x55); got != want {
		t.Errorf("Lat1 should be stable while held: got %.2X want %.2X", got, want)
	}
}

func TestLatch2IndependentOfLatch1(t *testing.T) {
	l := New(nil, fixedAccel{})
	l.Update(sfr.CtrlFlashLAT2, 0x7F, 0)
	if got, want := l.Lat2, uint8(0x7F); got != want {
		t.Errorf("Lat2: got %.2X want %.2X", got, want)
	}
	if got, want := l.Lat1, uint8(0); got != want {
		t.Errorf("Lat1 should be untouched: got %.2X want %.2X", got, want)
	}
}

func TestBacklightCyclesOnLat1RisingEdge(t *testing.T) {
	bl := &recordingBacklight{}
	l := New(bl, fixedAccel{})

	const mask = sfr.Ctrl3V3En | sfr.CtrlLCDDCX
	l.Update(mask|sfr.CtrlFlashLAT1, 0x10, 42)

	if got, want := len(bl.calls), 1; got != want {
		t.Fatalf("backlight call count: got %d want %d", got, want)
	}
	if got, want := bl.calls[0].lit, true; got != want {
		t.Errorf("lit: got %t want %t", got, want)
	}
	if got, want := bl.calls[0].atClock, uint64(42); got != want {
		t.Errorf("atClock: got %d want %d", got, want)
	}
}

func TestBacklightNotCycledWithoutLat1Edge(t *testing.T) {
	bl := &recordingBacklight{}
	l := New(bl, fixedAccel{})
	const mask = sfr.Ctrl3V3En | sfr.CtrlLCDDCX
	l.Update(mask, 0x10, 0)
	if got, want := len(bl.calls), 0; got != want {
		t.Errorf("backlight should not cycle without a LAT1 edge: got %d calls", got)
	}
}

func TestWakeOnPinMirrorsInt2IntoLat1(t *testing.T) {
	var s sfr.State
	s.SFR[sfr.CtrlPortDir] = sfr.CtrlFlashLAT1

	WakeOnPin(&s, fixedAccel{int2: true})
	if got, want := s.SFR[sfr.CtrlPort]&sfr.CtrlFlashLAT1, sfr.CtrlFlashLAT1; got != want {
		t.Errorf("LAT1 not set from INT2: got %.2X want %.2X", got, want)
	}

	WakeOnPin(&s, fixedAccel{int2: false})
	if got, want := s.SFR[sfr.CtrlPort]&sfr.CtrlFlashLAT1, uint8(0); got != want {
		t.Errorf("LAT1 not cleared: got %.2X want %.2X", got, want)
	}
}

func TestWakeOnPinNotMirroredWhenLat1IsOutput(t *testing.T) {
	var s sfr.State
	s.SFR[sfr.CtrlPortDir] = 0
	s.SFR[sfr.CtrlPort] = 0

	WakeOnPin(&s, fixedAccel{int2: true})
	if got, want := s.SFR[sfr.CtrlPort]&sfr.CtrlFlashLAT1, uint8(0); got != want {
		t.Errorf("LAT1 should not be mirrored when configured as output: got %.2X want %.2X", got, want)
	}
}

func TestWakeOnPinCondition(t *testing.T) {
	var s sfr.State
	s.SFR[sfr.WUOPC0] = 0x01
	s.SFR[sfr.P2] = 0x01
	if got, want := WakeOnPin(&s, fixedAccel{}), true; got != want {
		t.Errorf("got %t want %t", got, want)
	}

	var s2 sfr.State
	if got, want := WakeOnPin(&s2, fixedAccel{}), false; got != want {
		t.Errorf("got %t want %t", got, want)
	}
}
