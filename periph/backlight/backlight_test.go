package backlight

import "testing"

func TestCycle(t *testing.T) {
	c := New()
	if c.Lit() {
		t.Error("should start off")
	}
	c.Cycle(true, 123)
	if !c.Lit() {
		t.Error("should be lit after Cycle(true, ...)")
	}
	if got, want := c.LastTick(), uint64(123); got != want {
		t.Errorf("got %d want %d", got, want)
	}
	c.Cycle(false, 456)
	if c.Lit() {
		t.Error("should be off after Cycle(false, ...)")
	}
}
