package trace

import "testing"

func TestSignalValueExtractsBitField(t *testing.T) {
	var b uint8 = 0b1010_1100
	s := Signal{Name: "bit2", Width: 1, Source: &b, Offset: 2}
	if got, want := s.Value(), uint64(1); got != want {
		t.Errorf("got %d want %d", got, want)
	}
	s2 := Signal{Name: "bit0", Width: 1, Source: &b, Offset: 0}
	if got, want := s2.Value(), uint64(0); got != want {
		t.Errorf("got %d want %d", got, want)
	}
}

func TestSignalValueWholeByte(t *testing.T) {
	var b uint8 = 0xAB
	s := Signal{Name: "byte", Width: 8, Source: &b, Offset: 0}
	if got, want := s.Value(), uint64(0xAB); got != want {
		t.Errorf("got %.2X want %.2X", got, want)
	}
}

func TestScopeDefine(t *testing.T) {
	var w Waveform
	sc := w.EnterScope("gpio")
	var b uint8
	sc.Define("sig", &b, 1, 0)
	sc.DefineWide("wide", 16, func() uint64 { return 42 })

	if got, want := len(w.Scopes), 1; got != want {
		t.Fatalf("scope count: got %d want %d", got, want)
	}
	if got, want := len(w.Scopes[0].Signals), 1; got != want {
		t.Errorf("signal count: got %d want %d", got, want)
	}
	if got, want := len(w.Scopes[0].WideSignals), 1; got != want {
		t.Errorf("wide signal count: got %d want %d", got, want)
	}
	if got, want := w.Scopes[0].WideSignals[0].Read(), uint64(42); got != want {
		t.Errorf("wide read: got %d want %d", got, want)
	}
}
