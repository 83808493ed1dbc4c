package flashmem

import "testing"

func TestNewErrors(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Error("New(0) should have errored")
	}
	if _, err := New(-1); err == nil {
		t.Error("New(-1) should have errored")
	}
}

func TestPowerOnErased(t *testing.T) {
	b, err := New(16)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < b.Len(); i++ {
		if got, want := b.Read(i), uint8(0xFF); got != want {
			t.Errorf("byte %d: got %.2X want %.2X", i, got, want)
		}
	}
}

func TestProgramIsAndOnly(t *testing.T) {
	b, err := New(1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := b.Program(0, 0xF0), uint8(0xF0); got != want {
		t.Errorf("first program: got %.2X want %.2X", got, want)
	}
	// Programming 0x0F should AND against the existing 0xF0, yielding 0x00;
	// it must never set a bit that was already cleared.
	if got, want := b.Program(0, 0x0F), uint8(0x00); got != want {
		t.Errorf("second program: got %.2X want %.2X", got, want)
	}
	// Attempting to set a bit back high does nothing.
	if got, want := b.Program(0, 0xFF), uint8(0x00); got != want {
		t.Errorf("program with all-ones should not resurrect cleared bits: got %.2X want %.2X", got, want)
	}
}

func TestWriteVsProgram(t *testing.T) {
	b, err := New(1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b.Program(0, 0x00)
	// Write (used for external flash, not NVM) bypasses the AND-only rule.
	b.Write(0, 0xFF)
	if got, want := b.Read(0), uint8(0xFF); got != want {
		t.Errorf("got %.2X want %.2X", got, want)
	}
}

func TestAliasing(t *testing.T) {
	b, err := New(4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b.Write(0, 0xAA)
	if got, want := b.Read(4), uint8(0xAA); got != want {
		t.Errorf("aliased read: got %.2X want %.2X", got, want)
	}
	if got, want := b.Read(-4), uint8(0xAA); got != want {
		t.Errorf("negative aliased read: got %.2X want %.2X", got, want)
	}
}

func TestInBounds(t *testing.T) {
	b, err := New(4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tests := []struct {
		addr int
		want bool
	}{
		{0, true},
		{3, true},
		{4, false},
		{-1, false},
	}
	for _, test := range tests {
		if got := b.InBounds(test.addr); got != test.want {
			t.Errorf("InBounds(%d): got %t want %t", test.addr, got, test.want)
		}
	}
}
