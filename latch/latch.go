// Package latch implements the cube's address latches (LAT1/LAT2) and the
// accelerometer-interrupt wake-on-pin coupling described in spec.md §4.3.
// Edge detection follows the prev-port-snapshot-and-compare technique used
// by pia6532.Chip's PA7 edge detector, adapted to commit synchronously
// within a single GraphicsTick call rather than across a shadow/TickDone
// half-cycle, since spec.md §4.2's ordering guarantee requires the latch to
// be visible to bus resolution within the same tick.
package latch

import "github.com/cubecore/cubehw/sfr"

// Backlight is cycled on the same rising edge as LAT1, with both a
// "currently lit" condition and the clock at which the edge occurred
// (cube_hardware.cpp's graphicsTick backlight call).
type Backlight interface {
	Cycle(lit bool, atClock uint64)
}

// AccelInt2 reports the accelerometer's INT2 pin level, routed into LAT1
// via pull-up during sleep and used as address bit A21 while awake.
type AccelInt2 interface {
	INT2() bool
}

// Latches holds lat1, lat2, and the previous control-port snapshot used for
// rising-edge detection.
type Latches struct {
	Lat1, Lat2   uint8
	prevCtrlPort uint8

	backlight Backlight
	accel     AccelInt2
}

// New returns a Latches wired to a backlight and the accelerometer's INT2
// pin. Both may be nil for tests that don't exercise those side effects.
func New(backlight Backlight, accel AccelInt2) *Latches {
	return &Latches{backlight: backlight, accel: accel}
}

// Update applies one cycle of latch logic given the already-composed
// effective control port and the upper 7 address bits. It returns nothing
// and never writes back to the control port: it updates only lat1/lat2,
// the stored control-port snapshot and, on LAT1's rising edge, the
// backlight.
//
// This must be called exactly once per GraphicsTick invocation, and must
// precede bus resolution (spec.md §5 ordering guarantee).
func (l *Latches) Update(ctrlPort, addr7 uint8, atClock uint64) {
	lat1Rising := (ctrlPort&sfr.CtrlFlashLAT1) != 0 && (l.prevCtrlPort&sfr.CtrlFlashLAT1) == 0
	lat2Rising := (ctrlPort&sfr.CtrlFlashLAT2) != 0 && (l.prevCtrlPort&sfr.CtrlFlashLAT2) == 0

	if lat1Rising {
		if l.backlight != nil {
			const mask = sfr.Ctrl3V3En | sfr.CtrlLCDDCX
			l.backlight.Cycle(mask == (ctrlPort & mask), atClock)
		}
		l.Lat1 = addr7
	}
	if lat2Rising {
		l.Lat2 = addr7
	}

	l.prevCtrlPort = ctrlPort
}

// WakeOnPin implements spec.md §4.3's out-of-GraphicsTick LAT1 follower and
// wake condition evaluation. Call it whenever the CPU is asleep and doing
// no port writes; it mirrors the accelerometer's INT2 pin into LAT1's data
// bit (through the SFR state directly, since that's where LAT1's direction
// bit and the wake-on-pin control registers live) and reports whether any
// enabled wake source is asserted.
func WakeOnPin(s *sfr.State, accel AccelInt2) bool {
	if s.SFR[sfr.CtrlPortDir]&sfr.CtrlFlashLAT1 != 0 {
		if accel != nil && accel.INT2() {
			s.SFR[sfr.CtrlPort] |= sfr.CtrlFlashLAT1
		} else {
			s.SFR[sfr.CtrlPort] &^= sfr.CtrlFlashLAT1
		}
	}

	c0 := s.SFR[sfr.WUOPC0]
	c1 := s.SFR[sfr.WUOPC1]
	p0 := s.SFR[sfr.P2]
	p1 := (s.SFR[sfr.P1] & 0x80) | (s.SFR[sfr.P3] & 0x7F)

	return (c0&p0)|(c1&p1) != 0
}
