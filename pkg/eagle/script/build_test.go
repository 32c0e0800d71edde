package script

import (
	"math"
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/brd"
)

func buildSample(t *testing.T, input string) *brd.Board {
	t.Helper()

	p, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser() unexpected error: %v", err)
	}
	f, err := p.ParseString(input)
	if err != nil {
		t.Fatalf("ParseString() unexpected error: %v", err)
	}
	b, err := Build(f)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	return b
}

func TestBuildSampleScript(t *testing.T) {
	b := buildSample(t, sampleScript)

	if b.Title != "instr board" {
		t.Errorf("board title = %q, want %q", b.Title, "instr board")
	}
	if b.GridDistance != 0.5 || b.AltDistance != 0.1 {
		t.Errorf("grid = %v/%v, want 0.5/0.1", b.GridDistance, b.AltDistance)
	}

	elems := b.Elements()
	if len(elems) != 2 {
		t.Fatalf("element count = %d, want 2", len(elems))
	}
	if elems[0].Name != "E$1" || elems[0].Rotation != 90 {
		t.Errorf("first element = %q rot %v, want E$1 rot 90", elems[0].Name, elems[0].Rotation)
	}
	if !elems[1].Mirror || elems[1].Value != "X1" {
		t.Errorf("second element mirror=%v value=%q, want mirrored X1", elems[1].Mirror, elems[1].Value)
	}

	// Pad "1" sits at the package origin, so rotation leaves it on the
	// element position.
	x, y, err := elems[0].PadPosition("1")
	if err != nil {
		t.Fatalf("PadPosition() unexpected error: %v", err)
	}
	if math.Abs(x-10) > 1e-9 || math.Abs(y-10) > 1e-9 {
		t.Errorf("PadPosition() = (%v, %v), want (10, 10)", x, y)
	}
}

// Script in, full document out: the emitted markup must contain the
// declared library, placements, net and plain geometry.
func TestBuildEmitsDocument(t *testing.T) {
	b := buildSample(t, sampleScript)

	var sb strings.Builder
	err := b.WriteBRD(&sb, brd.Fragments{
		Layers:           "<!--layers-->\n",
		ConnectorLibrary: "<!--connector-->\n",
		Attributes:       "<!--attributes-->\n",
	})
	if err != nil {
		t.Fatalf("WriteBRD() unexpected error: %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		"<!--instr board-->",
		"<!--rev A-->",
		`<library name="conn" urn="urn:adsk.eagle:library:16378">`,
		`<package name="SOLDERPAD" library_version="2">`,
		`<description>bare solder pad</description>`,
		`<pad name="1"`,
		`<smd name="2"`,
		`<via name="V1"`,
		`<element name="E$1"`,
		`rot="MR0.00000"`,
		`<signal name="S$1" airwireshidden="no">`,
		`<contactref element="E$1" pad="1"/>`,
		`<hole x="5.00000"`,
		`curve="30"`,
		`>label</text>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{
			name:    "package in unknown library",
			input:   `package "P" in "nope" { pad "1" at 0 0 diameter 1 }`,
			wantMsg: "unknown library",
		},
		{
			name:    "place unknown package",
			input:   `place "E$1" package "nope" at 0 0`,
			wantMsg: "unknown package",
		},
		{
			name: "net references unknown element",
			input: `library "l" urn "u"
package "P" in "l" { pad "1" at 0 0 diameter 1 }
place "E$1" package "P" at 0 0
net "S$1" layer 1 : "E$1"."1" "E$9"."1"`,
			wantMsg: "unknown element",
		},
		{
			name: "net with one contact",
			input: `library "l" urn "u"
package "P" in "l" { pad "1" at 0 0 diameter 1 }
place "E$1" package "P" at 0 0
net "S$1" layer 1 : "E$1"."1"`,
			wantMsg: "at least two contacts",
		},
		{
			name: "duplicate element name",
			input: `library "l" urn "u"
package "P" in "l" { pad "1" at 0 0 diameter 1 }
place "E$1" package "P" at 0 0
place "E$1" package "P" at 1 1`,
			wantMsg: "duplicate element",
		},
		{
			name: "duplicate board statement",
			input: `board "a"
board "b"`,
			wantMsg: "duplicate board",
		},
		{
			name:    "negative pad diameter",
			input:   `library "l" urn "u"` + "\n" + `package "P" in "l" { pad "1" at 0 0 diameter -1 }`,
			wantMsg: "diameter",
		},
	}

	p, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser() unexpected error: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := p.ParseString(tt.input)
			if err != nil {
				t.Fatalf("ParseString() unexpected error: %v", err)
			}
			_, err = Build(f)
			if err == nil {
				t.Fatal("Build() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Build() error = %v, want message containing %q", err, tt.wantMsg)
			}
		})
	}
}
