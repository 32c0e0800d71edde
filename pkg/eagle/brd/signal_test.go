package brd

import (
	"errors"
	"strings"
	"testing"
)

func TestNewSignalContactCount(t *testing.T) {
	pkg := testPackage(t, "1", 0, 0)
	e1 := NewElement("E$1", pkg, 0, 0, 0)

	_, err := NewSignal("S$1", 1, Contact{Element: e1, Pad: "1"})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewSignal() with one contact error = %v, want ErrInvalidArgument", err)
	}

	e2 := NewElement("E$2", pkg, 1, 1, 0)
	if _, err := NewSignal("S$1", 1, Contact{e1, "1"}, Contact{e2, "1"}); err != nil {
		t.Errorf("NewSignal() with two contacts unexpected error: %v", err)
	}
}

// Three contacts produce exactly two connector wires, drawn between
// consecutive contacts in chain order.
func TestSignalWireChain(t *testing.T) {
	pkg := testPackage(t, "1", 0, 0)
	e1 := NewElement("E$1", pkg, 0, 0, 0)
	e2 := NewElement("E$2", pkg, 10, 0, 0)
	e3 := NewElement("E$3", pkg, 10, 10, 0)

	sig, err := NewSignal("S$1", 16, Contact{e1, "1"}, Contact{e2, "1"}, Contact{e3, "1"})
	if err != nil {
		t.Fatalf("NewSignal() unexpected error: %v", err)
	}

	var sb strings.Builder
	if err := sig.WriteXML(&sb); err != nil {
		t.Fatalf("WriteXML() unexpected error: %v", err)
	}
	out := sb.String()

	if got := strings.Count(out, "<wire "); got != 2 {
		t.Fatalf("wire count = %d, want 2", got)
	}
	first := `<wire x1="0.00000" y1="0.00000" x2="10.00000" y2="0.00000" width="0" layer="16"/>`
	second := `<wire x1="10.00000" y1="0.00000" x2="10.00000" y2="10.00000" width="0" layer="16"/>`
	fi := strings.Index(out, first)
	si := strings.Index(out, second)
	if fi < 0 || si < 0 {
		t.Fatalf("expected wires missing:\n%s", out)
	}
	if fi > si {
		t.Error("wires emitted out of chain order")
	}

	if got := strings.Count(out, "<contactref "); got != 3 {
		t.Errorf("contactref count = %d, want 3", got)
	}
	if !strings.Contains(out, `<signal name="S$1" airwireshidden="no">`) {
		t.Errorf("signal opening tag wrong:\n%s", out)
	}
}

func TestSignalAirwiresHiddenToken(t *testing.T) {
	pkg := testPackage(t, "1", 0, 0)
	e1 := NewElement("E$1", pkg, 0, 0, 0)
	e2 := NewElement("E$2", pkg, 1, 0, 0)

	sig, err := NewSignal("S$1", 1, Contact{e1, "1"}, Contact{e2, "1"})
	if err != nil {
		t.Fatalf("NewSignal() unexpected error: %v", err)
	}
	sig.AirwiresHidden = true

	var sb strings.Builder
	if err := sig.WriteXML(&sb); err != nil {
		t.Fatalf("WriteXML() unexpected error: %v", err)
	}
	if !strings.Contains(sb.String(), `airwireshidden="yes"`) {
		t.Errorf("airwireshidden token missing:\n%s", sb.String())
	}
}

// Pad existence is not checked at construction; the dangling reference
// surfaces on first geometry access.
func TestSignalLazyPadValidation(t *testing.T) {
	pkg := testPackage(t, "1", 0, 0)
	e1 := NewElement("E$1", pkg, 0, 0, 0)
	e2 := NewElement("E$2", pkg, 1, 0, 0)

	sig, err := NewSignal("S$1", 1, Contact{e1, "1"}, Contact{e2, "nope"})
	if err != nil {
		t.Fatalf("NewSignal() unexpected error: %v", err)
	}

	var sb strings.Builder
	err = sig.WriteXML(&sb)
	if err == nil {
		t.Fatal("WriteXML() expected error for unknown pad, got nil")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("WriteXML() error = %v, want ErrNotFound", err)
	}
}
