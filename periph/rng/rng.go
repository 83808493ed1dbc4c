// Package rng is the core-facing contract for the cube's hardware random
// number generator register. The physical entropy source is out of scope
// (spec.md §1); this package draws from an injectable source so firmware
// tests can be made deterministic.
package rng

import "math/rand"

// Chip exposes a single byte-wide RNG register.
type Chip struct {
	src *rand.Rand
}

// New returns a Chip drawing from src. Passing nil uses a default source
// with the fixed seed 1, so the drawn sequence is the same on every run.
func New(src *rand.Rand) *Chip {
	if src == nil {
		src = rand.New(rand.NewSource(1))
	}
	return &Chip{src: src}
}

// Read draws the next byte from the RNG register.
func (c *Chip) Read() uint8 {
	return uint8(c.src.Intn(256))
}
