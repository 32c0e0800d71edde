package brd

import (
	"fmt"
	"io"
	"os"
)

// Board units accepted by the format.
const (
	UnitMM = "mm"
	UnitIn = "in"
)

// Board is the top-level container for one board document. It is built
// incrementally with the Add methods and emitted once with WriteBRD;
// there is no partial emission. All collections emit in insertion
// order.
type Board struct {
	Title         string
	GridDistance  float64
	AltDistance   float64
	HeaderComment string
	Width         float64 // carried for callers; not emitted
	Height        float64 // carried for callers; not emitted

	units     string
	plain     []Primitive
	libraries []*Library
	elements  []*Element
	signals   []*Signal
}

// NewBoard creates a board with millimeter units, a 0.5 grid with 0.1
// alternate spacing, and a 400x400 extent.
func NewBoard(title string) *Board {
	return &Board{
		Title:        title,
		GridDistance: 0.5,
		AltDistance:  0.1,
		Width:        400,
		Height:       400,
		units:        UnitMM,
	}
}

// SetUnits sets the measurement unit, "mm" or "in".
func (b *Board) SetUnits(units string) error {
	if units != UnitMM && units != UnitIn {
		return fmt.Errorf("%w: units must be %q or %q, got %q", ErrInvalidArgument, UnitMM, UnitIn, units)
	}
	b.units = units
	return nil
}

// Units returns the measurement unit.
func (b *Board) Units() string { return b.units }

// AddPlain places a bare primitive directly on the board, outside any
// package.
func (b *Board) AddPlain(p Primitive) { b.plain = append(b.plain, p) }

func (b *Board) AddLibrary(l *Library) { b.libraries = append(b.libraries, l) }

func (b *Board) AddElement(e *Element) { b.elements = append(b.elements, e) }

func (b *Board) AddSignal(s *Signal) { b.signals = append(b.signals, s) }

// Elements returns the placed elements in insertion order.
func (b *Board) Elements() []*Element { return b.elements }

func (b *Board) writeHeader(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<!DOCTYPE eagle SYSTEM \"eagle.dtd\">\n<!--%s-->\n", b.Title); err != nil {
		return err
	}
	if b.HeaderComment != "" {
		if _, err := fmt.Fprintf(w, "<!--%s-->\n", b.HeaderComment); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "<eagle version=\"9.1.3\">\n<drawing>\n<settings>\n<setting alwaysvectorfont=\"no\"/>\n<setting verticaltext=\"up\"/>\n</settings>\n"); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "<grid distance=\"%g\" unitdist=\"%s\" unit=\"%s\" style=\"dots\" multiple=\"1\" display=\"yes\" altdistance=\"%g\" altunitdist=\"%s\" altunit=\"%s\"/>\n\n",
		b.GridDistance, b.units, b.units, b.AltDistance, b.units, b.units)
	return err
}

func (b *Board) writeFooter(w io.Writer) error {
	_, err := io.WriteString(w, `<mfgpreviewcolors>
<mfgpreviewcolor name="soldermaskcolor" color="0xC8008000"/>
<mfgpreviewcolor name="silkscreencolor" color="0xFFFEFEFE"/>
<mfgpreviewcolor name="backgroundcolor" color="0xFF282828"/>
<mfgpreviewcolor name="coppercolor" color="0xFFFFBF00"/>
<mfgpreviewcolor name="substratecolor" color="0xFF786E46"/>
</mfgpreviewcolors>
</board>
</drawing>
</eagle>
`)
	return err
}

// WriteBRD emits the whole board document: header and layer
// definitions, plain geometry, libraries (the shared connector library
// fragment first), the attribute/design-rule fragment, elements,
// signals, footer. The fragments are spliced verbatim.
func (b *Board) WriteBRD(w io.Writer, frags Fragments) error {
	if err := b.writeHeader(w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, frags.Layers); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "<board>\n<plain>\n"); err != nil {
		return err
	}
	for _, p := range b.plain {
		if _, err := io.WriteString(w, p.String()); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</plain>\n<libraries>\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, frags.ConnectorLibrary); err != nil {
		return err
	}
	for _, l := range b.libraries {
		if err := l.WriteXML(w); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</libraries>\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, frags.Attributes); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "<elements>\n"); err != nil {
		return err
	}
	for _, e := range b.elements {
		if err := e.WriteXML(w); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</elements>\n<signals>\n"); err != nil {
		return err
	}
	for _, s := range b.signals {
		if err := s.WriteXML(w); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</signals>\n"); err != nil {
		return err
	}
	return b.writeFooter(w)
}

// WriteBRDFile writes the board document to path in one pass. The file
// is closed even when emission fails partway.
func (b *Board) WriteBRDFile(path string, frags Fragments) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create board file: %w", err)
	}
	werr := b.WriteBRD(f, frags)
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("failed to write board file: %w", werr)
	}
	if cerr != nil {
		return fmt.Errorf("failed to close board file: %w", cerr)
	}
	return nil
}
