package brd

import "fmt"

// Primitive is anything that emits one board-file markup element.
// All coordinates and dimensions are formatted with five decimal places;
// that precision is part of the output contract with the CAD tool, not a
// display choice.
type Primitive interface {
	String() string
}

// Piece is a named primitive that can belong to a package. The name is
// the pad identifier referenced by elements and signals; the offset is
// the piece's position in package-local coordinates.
type Piece interface {
	Primitive
	PieceName() string
	Offset() (x, y float64)
}

// yesNo renders a boolean flag in the token vocabulary the board format
// expects.
func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// Hole is a non-plated mounting hole. Holes carry no name because they
// cannot be routed to.
type Hole struct {
	X     float64
	Y     float64
	Drill float64 // drill diameter
}

func NewHole(x, y, drill float64) *Hole {
	return &Hole{X: x, Y: y, Drill: drill}
}

func (h *Hole) String() string {
	return fmt.Sprintf("<hole x=\"%.5f\" y=\"%.5f\" drill=\"%.5f\"/>\n", h.X, h.Y, h.Drill)
}

// Circle is an unfilled circle outline, typically a milled board
// boundary (layer 20) or silkscreen marking (layer 21). The markup
// carries the radius even though the model stores the diameter.
type Circle struct {
	X        float64
	Y        float64
	Diameter float64
	Width    float64 // line width
	Layer    int
}

// NewCircle applies the conventional defaults: 0.3048 mm line width
// (0.012 in) on the board-dimension layer.
func NewCircle(x, y, diameter float64) *Circle {
	return &Circle{X: x, Y: y, Diameter: diameter, Width: 0.3048, Layer: 20}
}

func (c *Circle) String() string {
	return fmt.Sprintf("<circle x=\"%.5f\" y=\"%.5f\" radius=\"%.5f\" width=\"%.5f\" layer=\"%d\"/>\n",
		c.X, c.Y, c.Diameter/2, c.Width, c.Layer)
}

// Wire is a straight or curved line segment. Curve, when set, is the
// arc angle in degrees between the endpoints (positive bends
// counter-clockwise).
type Wire struct {
	X1    float64
	Y1    float64
	X2    float64
	Y2    float64
	Width float64
	Layer int
	Curve *float64
}

// NewWire applies the conventional defaults: 0.3048 mm width on the top
// copper layer, no curvature.
func NewWire(x1, y1, x2, y2 float64) *Wire {
	return &Wire{X1: x1, Y1: y1, X2: x2, Y2: y2, Width: 0.3048, Layer: 1}
}

func (w *Wire) String() string {
	s := fmt.Sprintf("<wire x1=\"%.5f\" y1=\"%.5f\" x2=\"%.5f\" y2=\"%.5f\" width=\"%.5f\" layer=\"%d\"",
		w.X1, w.Y1, w.X2, w.Y2, w.Width, w.Layer)
	if w.Curve != nil {
		s += fmt.Sprintf(" curve=\"%g\"", *w.Curve)
	}
	return s + "/>\n"
}

// Text is a text label. Mirror flips the rotation marker only; the
// position is emitted as given.
type Text struct {
	X        float64
	Y        float64
	Size     float64
	Layer    int
	Text     string
	Rotation float64 // degrees, counter-clockwise
	Font     string
	Distance int
	Align    string
	Ratio    int
	Mirror   bool
}

// NewText applies the conventional label defaults (proportional font,
// distance 50, ratio 8, bottom-left alignment).
func NewText(x, y, size float64, layer int, text string) *Text {
	return &Text{
		X:        x,
		Y:        y,
		Size:     size,
		Layer:    layer,
		Text:     text,
		Font:     "proportional",
		Distance: 50,
		Align:    "bottom-left",
		Ratio:    8,
	}
}

func (t *Text) String() string {
	mirror := ""
	if t.Mirror {
		mirror = "M"
	}
	return fmt.Sprintf("<text x=\"%.5f\" y=\"%.5f\" size=\"%.5f\" layer=\"%d\" rot=\"%sR%.5f\" ratio=\"%d\" font=\"%s\" distance=\"%d\" align=\"%s\">%s</text>\n",
		t.X, t.Y, t.Size, t.Layer, mirror, t.Rotation, t.Ratio, t.Font, t.Distance, t.Align, t.Text)
}
