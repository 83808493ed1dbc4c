// Package mdu is the core-facing contract for the cube's multiply/divide
// unit. Unlike the other peripherals it is purely combinational: each
// Multiply or Divide call computes its result immediately. No SFR write
// reaches it, and it is not part of the fixed peripheral tick order in
// spec.md §4.5.
package mdu

// Chip holds the operand/result registers an SFR write would address. The
// actual multiply/divide arithmetic is trivial enough that it isn't out of
// scope the way the other peripherals' physics are; it's included directly.
type Chip struct {
	a, b   uint16
	result uint32
	div0   bool
}

// New returns a zeroed Chip.
func New() *Chip {
	return &Chip{}
}

// SetOperands stores the two operand registers.
func (c *Chip) SetOperands(a, b uint16) {
	c.a, c.b = a, b
}

// Multiply computes a*b into the result register.
func (c *Chip) Multiply() {
	c.result = uint32(c.a) * uint32(c.b)
	c.div0 = false
}

// Divide computes a/b into the result register (quotient in the low 16
// bits, remainder in the high 16), raising the divide-by-zero flag instead
// of panicking if b is zero.
func (c *Chip) Divide() {
	if c.b == 0 {
		c.div0 = true
		c.result = 0
		return
	}
	q := uint32(c.a) / uint32(c.b)
	r := uint32(c.a) % uint32(c.b)
	c.result = (r << 16) | q
	c.div0 = false
}

// Result returns the last computed result.
func (c *Chip) Result() uint32 {
	return c.result
}

// DivideByZero reports whether the last Divide call divided by zero.
func (c *Chip) DivideByZero() bool {
	return c.div0
}
