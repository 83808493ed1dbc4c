// Package flashmem implements the byte-array backing storage for a cube's
// two flash regions: the small mask-programmable NVM used for identity and
// one-time configuration, and the larger external serial flash used for
// firmware assets. Both start fully erased (all bits set) on power on.
package flashmem

import "fmt"

// Bank is a fixed-size byte array with erase-to-all-ones semantics. Unlike
// memory.Bank in a CPU address-space sense, a Bank here has no parent chain
// or databus tracking: flash storage is addressed directly by the NVM model
// and the external flash peripheral, not by the CPU's own memory map.
type Bank struct {
	data []uint8
}

// New allocates a Bank of the given size, erased to 0xFF.
func New(size int) (*Bank, error) {
	if size <= 0 {
		return nil, fmt.Errorf("flashmem: invalid size %d", size)
	}
	b := &Bank{data: make([]uint8, size)}
	b.PowerOn()
	return b, nil
}

// Len returns the number of addressable bytes.
func (b *Bank) Len() int { return len(b.data) }

// Read returns the byte at addr. Addresses outside the bank wrap modulo
// the bank size (negative addresses included), so they alias onto the
// bank's valid range.
func (b *Bank) Read(addr int) uint8 {
	return b.data[b.mask(addr)]
}

// Write stores val at addr verbatim. Used for external flash, which (unlike
// NVM) is not restricted to AND-only programming.
func (b *Bank) Write(addr int, val uint8) {
	b.data[b.mask(addr)] = val
}

// Program performs NOR-flash style programming: only 1->0 transitions are
// possible. Returns the resulting byte.
func (b *Bank) Program(addr int, val uint8) uint8 {
	a := b.mask(addr)
	b.data[a] &= val
	return b.data[a]
}

// PowerOn erases the bank to all-ones, the flash-erased state.
func (b *Bank) PowerOn() {
	for i := range b.data {
		b.data[i] = 0xFF
	}
}

// InBounds reports whether addr is a valid index without aliasing.
func (b *Bank) InBounds(addr int) bool {
	return addr >= 0 && addr < len(b.data)
}

func (b *Bank) mask(addr int) int {
	if addr >= 0 && addr < len(b.data) {
		return addr
	}
	n := len(b.data)
	a := addr % n
	if a < 0 {
		a += n
	}
	return a
}
