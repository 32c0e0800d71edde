package brd

import (
	"fmt"
	"io"
	"math"
)

// Element is one placed instance of a package: a board-wide unique
// name (e.g. "E$1"), a shared package reference, an absolute position,
// a counter-clockwise rotation in degrees and an optional value string.
//
// Mirror only flips the emitted rotation marker. It does not enter the
// pad coordinate transform; a caller that needs mirrored connector
// geometry must mirror the package geometry itself. Changing that
// would silently move every derived wire, so the behavior is kept
// as-is.
type Element struct {
	Name     string
	Package  *Package
	X        float64
	Y        float64
	Rotation float64 // degrees, counter-clockwise
	Value    string
	Mirror   bool
}

func NewElement(name string, pkg *Package, x, y, rotation float64) *Element {
	return &Element{Name: name, Package: pkg, X: x, Y: y, Rotation: rotation}
}

// PadPosition returns the absolute board position of the named pad:
// the element position plus the package-local offset rotated by the
// element's angle.
func (e *Element) PadPosition(padName string) (x, y float64, err error) {
	px, py, err := e.Package.PieceOffset(padName)
	if err != nil {
		return 0, 0, fmt.Errorf("element %q: %w", e.Name, err)
	}
	theta := e.Rotation * math.Pi / 180
	sin, cos := math.Sincos(theta)
	x = e.X + px*cos - py*sin
	y = e.Y + px*sin + py*cos
	return x, y, nil
}

// PadNames returns the pad names defined by the referenced package, in
// the order the package declares them.
func (e *Element) PadNames() []string { return e.Package.PieceNames() }

// PadCount is the number of pads on the referenced package.
func (e *Element) PadCount() int { return e.Package.PieceCount() }

// WriteXML emits the element tag. The referenced package must belong
// to a library, since the tag names the library and its URN.
func (e *Element) WriteXML(w io.Writer) error {
	lib := e.Package.Library()
	if lib == nil {
		return fmt.Errorf("%w: element %q references package %q with no library", ErrInvalidArgument, e.Name, e.Package.Name)
	}
	mirror := ""
	if e.Mirror {
		mirror = "M"
	}
	_, err := fmt.Fprintf(w, "<element name=\"%s\" library=\"%s\" library_urn=\"%s\" package=\"%s\" value=\"%s\" x=\"%.5f\" y=\"%.5f\" rot=\"%sR%.5f\"/>\n",
		e.Name, lib.Name, lib.URN, e.Package.Name, e.Value, e.X, e.Y, mirror, e.Rotation)
	return err
}
