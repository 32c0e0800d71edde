package script

import (
	"testing"
)

const sampleScript = `
# instrument board, generated fixtures
board "instr board" units mm grid 0.5 alt 0.1 comment "rev A"

library "conn" urn "urn:adsk.eagle:library:16378" version 2
package "SOLDERPAD" in "conn" description "bare solder pad" {
  pad "1" at 0 0 diameter 1.8 drill 0.9
  smd "2" at 1.27 0 size 0.6 1.2 layer 1
  via "V1" at 2 2 drill 0.6
}

place "E$1" package "SOLDERPAD" at 10 10 rot 90
place "E$2" package "SOLDERPAD" at 20 10 value "X1" mirror

net "S$1" layer 1 : "E$1"."1" "E$2"."1"

plain hole at 5 5 drill 3.0
plain circle at 0 0 diameter 50 layer 20
plain wire from 0 0 to 1 1 width 0.2 layer 21 curve 30
plain text at 1 1 size 2 layer 21 "label" rot 90 mirror
`

func TestParseSampleScript(t *testing.T) {
	p, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser() unexpected error: %v", err)
	}

	f, err := p.ParseString(sampleScript)
	if err != nil {
		t.Fatalf("ParseString() unexpected error: %v", err)
	}

	if len(f.Statements) != 10 {
		t.Fatalf("statement count = %d, want 10", len(f.Statements))
	}

	board := f.Statements[0].Board
	if board == nil {
		t.Fatal("first statement is not a board statement")
	}
	if board.Title != "instr board" {
		t.Errorf("board title = %q, want %q", board.Title, "instr board")
	}
	if board.Units == nil || *board.Units != "mm" {
		t.Errorf("board units = %v, want mm", board.Units)
	}
	if board.Comment == nil || *board.Comment != "rev A" {
		t.Errorf("board comment = %v, want rev A", board.Comment)
	}

	lib := f.Statements[1].Library
	if lib == nil || lib.Name != "conn" || lib.URN != "urn:adsk.eagle:library:16378" {
		t.Errorf("library statement = %+v", lib)
	}
	if lib.Version == nil || *lib.Version != 2 {
		t.Errorf("library version = %v, want 2", lib.Version)
	}

	pkg := f.Statements[2].Package
	if pkg == nil {
		t.Fatal("third statement is not a package statement")
	}
	if pkg.Library != "conn" || len(pkg.Pieces) != 3 {
		t.Errorf("package = %q in %q with %d pieces", pkg.Name, pkg.Library, len(pkg.Pieces))
	}
	if pkg.Pieces[0].Pad == nil || pkg.Pieces[0].Pad.Name != "1" {
		t.Errorf("first piece = %+v, want pad \"1\"", pkg.Pieces[0])
	}
	if pkg.Pieces[1].Smd == nil || pkg.Pieces[1].Smd.Layer != 1 {
		t.Errorf("second piece = %+v, want smd on layer 1", pkg.Pieces[1])
	}
	if pkg.Pieces[2].Via == nil || pkg.Pieces[2].Via.Drill != 0.6 {
		t.Errorf("third piece = %+v, want via with drill 0.6", pkg.Pieces[2])
	}

	place := f.Statements[4].Place
	if place == nil || place.Name != "E$2" {
		t.Fatalf("fifth statement = %+v, want place E$2", f.Statements[4])
	}
	if !place.Mirror {
		t.Error("place E$2 mirror flag not set")
	}
	if place.Value == nil || *place.Value != "X1" {
		t.Errorf("place E$2 value = %v, want X1", place.Value)
	}

	net := f.Statements[5].Net
	if net == nil || len(net.Contacts) != 2 {
		t.Fatalf("sixth statement = %+v, want net with 2 contacts", f.Statements[5])
	}
	if net.Contacts[0].Element != "E$1" || net.Contacts[0].Pad != "1" {
		t.Errorf("first contact = %+v, want E$1.1", net.Contacts[0])
	}

	wire := f.Statements[8].Plain
	if wire == nil || wire.Wire == nil {
		t.Fatalf("ninth statement = %+v, want plain wire", f.Statements[8])
	}
	if wire.Wire.Curve == nil || *wire.Wire.Curve != 30 {
		t.Errorf("wire curve = %v, want 30", wire.Wire.Curve)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "missing package body", input: `library "l" urn "u"` + "\n" + `package "P" in "l"`},
		{name: "pad without diameter", input: `package "P" in "l" { pad "1" at 0 0 }`},
		{name: "net without contacts separator", input: `net "S$1" layer 1 "E$1"."1"`},
		{name: "stray token", input: `bogus "x"`},
	}

	p, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser() unexpected error: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := p.ParseString(tt.input); err == nil {
				t.Errorf("ParseString(%q) expected error, got nil", tt.input)
			}
		})
	}
}
