// Package accel implements the cube's acceleration-input scaling model:
// mapping host-provided G values onto the signed 16 bit range the
// accelerometer peripheral exposes over I2C, including the small amount of
// dither noise and saturation the real sensor exhibits (spec.md §4.7).
package accel

import "math/rand"

const (
	// Range is the magnitude of the signed 16 bit accelerometer scale.
	Range = 1 << 15
	// FullScale is the configured full-scale range in G's that Range maps to.
	FullScale = 2.0
	// NoiseAmount scales the dither: its magnitude is
	// (low16 * NoiseAmount) >> 16, at most NoiseAmount-1 counts, which is
	// under one LSB of the reading's high byte.
	NoiseAmount = 0x60
)

// Source provides the 32 random bits scaleAxis draws per call. Callers
// should pass a seeded *rand.Rand for deterministic-given-seed dithering;
// production wiring can use rand.New(rand.NewSource(seed)).
type Source interface {
	Uint32() uint32
}

// Vector holds the three scaled accelerometer axis readings.
type Vector struct {
	X, Y, Z int16
}

// Scale scales (x, y, z) in G's into a Vector of signed 16 bit accelerometer
// readings, independently per axis.
func Scale(src Source, x, y, z float64) Vector {
	return Vector{
		X: ScaleAxis(src, x),
		Y: ScaleAxis(src, y),
		Z: ScaleAxis(src, z),
	}
}

// ScaleAxis scales a single raw acceleration in G's, returning the
// corresponding two's complement accelerometer reading. Draws 32 random
// bits: the low 16 feed the dither magnitude, bit 16 is the dither sign.
func ScaleAxis(src Source, g float64) int16 {
	randomBits := src.Uint32()

	noise := int((randomBits & 0xFFFF) * NoiseAmount >> 16)
	if (randomBits>>16)&1 != 0 {
		noise = -noise
	}

	scaledF := g*(Range/FullScale) + float64(noise)
	scaled := int(scaledF)
	truncated := int16(scaled)

	if int(truncated) != scaled {
		if scaled > 0 {
			truncated = Range - 1
		} else {
			truncated = -Range
		}
	}
	return truncated
}

// MathRand adapts *rand.Rand to the Source interface.
type MathRand struct {
	R *rand.Rand
}

// Uint32 implements Source.
func (m MathRand) Uint32() uint32 {
	return m.R.Uint32()
}
