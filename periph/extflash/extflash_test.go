package extflash

import (
	"testing"

	"github.com/cubecore/cubehw/flashmem"
)

func newChip(t *testing.T) (*Chip, *flashmem.Bank) {
	t.Helper()
	bank, err := flashmem.New(64)
	if err != nil {
		t.Fatalf("flashmem.New: %v", err)
	}
	return New(bank), bank
}

func TestUnpoweredNeverDrives(t *testing.T) {
	c, _ := newChip(t)
	if got := c.Cycle(Pins{Power: false, OE: true}); got {
		t.Error("unpowered chip should never drive the bus")
	}
}

func TestChipSelectBlocksAccess(t *testing.T) {
	c, _ := newChip(t)
	if got := c.Cycle(Pins{Power: true, CE: true, OE: true}); got {
		t.Error("CE asserted should block the bus drive")
	}
}

func TestWriteThenRead(t *testing.T) {
	c, bank := newChip(t)
	c.Cycle(Pins{Power: true, WE: true, Addr: 5, DataIn: 0xAB})
	if got, want := bank.Read(5), uint8(0xAB); got != want {
		t.Errorf("bank content: got %.2X want %.2X", got, want)
	}
	if drv := c.Cycle(Pins{Power: true, OE: true, Addr: 5}); !drv {
		t.Fatal("OE cycle should drive the bus")
	}
	if got, want := c.DataOut(), uint8(0xAB); got != want {
		t.Errorf("DataOut: got %.2X want %.2X", got, want)
	}
}

func TestWriteTakesPriorityOverRead(t *testing.T) {
	c, _ := newChip(t)
	if drv := c.Cycle(Pins{Power: true, WE: true, OE: true, Addr: 0}); drv {
		t.Error("asserting both WE and OE should not drive (write wins)")
	}
}
