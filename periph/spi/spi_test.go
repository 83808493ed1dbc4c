package spi

import "testing"

func TestRadioClockEnable(t *testing.T) {
	r := NewRadio()
	if r.ClockEnabled() {
		t.Error("should start clock-disabled")
	}
	r.Tick(nil, true)
	if !r.ClockEnabled() {
		t.Error("should reflect clockEnable after Tick")
	}
	r.Tick(nil, false)
	if r.ClockEnabled() {
		t.Error("should reflect clockEnable going low")
	}
}

func TestBusWiresRadio(t *testing.T) {
	b := New()
	if b.Radio == nil {
		t.Fatal("New() should wire up a Radio")
	}
}
