// Package i2c is the core-facing contract for the cube's I2C bus and its
// one fixed device, the accelerometer. Device-level physics (tilt response,
// ADC channel behavior) are out of scope (spec.md §1); this package exposes
// only the surface the graphics bus and acceleration input rely on.
package i2c

import (
	"github.com/cubecore/cubehw/accel"
	"github.com/cubecore/cubehw/deadline"
)

// Accel models the accelerometer's externally-visible state: the scaled
// axis vector, the INT2 interrupt pin (mirrored into LAT1 for wake-on-pin,
// and used as address bit A21 on the graphics bus), and a simulated
// battery-telemetry ADC channel read at boot (cube_hardware.cpp's
// i2c.accel.setADC1 seed call).
type Accel struct {
	vector accel.Vector
	int2   bool
	adc1   uint16
}

// SetVector stores the latest scaled acceleration reading.
func (a *Accel) SetVector(v accel.Vector) {
	a.vector = v
}

// Vector returns the most recently set scaled acceleration reading.
func (a *Accel) Vector() accel.Vector {
	return a.vector
}

// SetINT2 drives the INT2 pin level directly. In a full simulation this
// would be driven by the device's own interrupt logic; here it's a
// settable input so tests and the hardware core's wake-on-pin path can
// exercise it.
func (a *Accel) SetINT2(v bool) {
	a.int2 = v
}

// INT2 implements latch.AccelInt2 and the graphics bus's A21 pin source.
func (a *Accel) INT2() bool {
	return a.int2
}

// SetADC1 sets the accelerometer's auxiliary ADC channel 1 reading, used
// for simulated battery voltage telemetry.
func (a *Accel) SetADC1(v uint16) {
	a.adc1 = v
}

// ADC1 returns the auxiliary ADC channel 1 reading.
func (a *Accel) ADC1() uint16 {
	return a.adc1
}

// Bus is the I2C controller peripheral ticked by the scheduler. It owns the
// bus's single fixed device.
type Bus struct {
	Accel Accel
}

// New returns an initialized Bus.
func New() *Bus {
	return &Bus{}
}

// Tick advances the bus's own timing. The simulated I2C transactions in
// this model are synchronous register operations rather than clocked
// multi-cycle transfers, so the bus itself never proposes a deadline; it
// exists in the fixed tick order (spec.md §4.5) so future transaction
// timing can be added without changing the scheduler's call sites.
func (b *Bus) Tick(h *deadline.Handle) {
	_ = h
}
