package brd

import "fmt"

// Pad shape vocabulary accepted by the board format.
const (
	ShapeRound   = "round"
	ShapeSquare  = "square"
	ShapeOctagon = "octagon"
	ShapeLong    = "long"
	ShapeOffset  = "offset"
)

// Pad is a plated through-hole pad. The name is its contact identifier
// within the owning package, usually a pin number like "1".
type Pad struct {
	Name     string
	X        float64
	Y        float64
	Diameter float64
	Rotation float64 // degrees, counter-clockwise
	Drill    float64
	Shape    string
	Thermals bool
	Stop     bool
}

// NewPad creates a pad with the conventional defaults (round shape,
// thermals and stop mask on, no drill, no rotation). The diameter must
// be non-negative; no other field is validated.
func NewPad(name string, x, y, diameter float64) (*Pad, error) {
	if diameter < 0 {
		return nil, fmt.Errorf("%w: pad diameter must be >= 0, got %v", ErrInvalidArgument, diameter)
	}
	return &Pad{
		Name:     name,
		X:        x,
		Y:        y,
		Diameter: diameter,
		Shape:    ShapeRound,
		Thermals: true,
		Stop:     true,
	}, nil
}

func (p *Pad) PieceName() string { return p.Name }

func (p *Pad) Offset() (x, y float64) { return p.X, p.Y }

// The first attribute is always "no": the legacy tooling never managed
// to set it and downstream consumers expect the constant.
func (p *Pad) String() string {
	return fmt.Sprintf("<pad name=\"%s\" x=\"%.5f\" y=\"%.5f\" diameter=\"%.5f\" rot=\"R%.5f\" drill=\"%.5f\" shape=\"%s\" thermals=\"%s\" stop=\"%s\" first=\"no\"/>\n",
		p.Name, p.X, p.Y, p.Diameter, p.Rotation, p.Drill, p.Shape, yesNo(p.Thermals), yesNo(p.Stop))
}

// Via is a plated hole joining copper layers. Extent names the layer
// span, e.g. "1-16" for a through via.
type Via struct {
	Name   string
	X      float64
	Y      float64
	Drill  float64
	Extent string
}

// NewVia creates a through via spanning all copper layers.
func NewVia(name string, x, y, drill float64) *Via {
	return &Via{Name: name, X: x, Y: y, Drill: drill, Extent: "1-16"}
}

func (v *Via) PieceName() string { return v.Name }

func (v *Via) Offset() (x, y float64) { return v.X, v.Y }

func (v *Via) String() string {
	return fmt.Sprintf("<via name=\"%s\" x=\"%.5f\" y=\"%.5f\" drill=\"%.5f\" extent=\"%s\"/>\n",
		v.Name, v.X, v.Y, v.Drill, v.Extent)
}

// Smd is a surface-mount pad. Roundness runs 0 (rectangular) to 100
// (fully rounded corners).
type Smd struct {
	Name      string
	X         float64
	Y         float64
	DX        float64 // extent in x
	DY        float64 // extent in y
	Layer     int
	Rotation  float64 // degrees, counter-clockwise
	Roundness int
	Stop      bool
	Thermals  bool
	Cream     bool
}

// NewSmd creates a rectangular surface-mount pad with stop, thermals
// and cream mask enabled.
func NewSmd(name string, x, y, dx, dy float64, layer int) *Smd {
	return &Smd{
		Name:     name,
		X:        x,
		Y:        y,
		DX:       dx,
		DY:       dy,
		Layer:    layer,
		Stop:     true,
		Thermals: true,
		Cream:    true,
	}
}

func (s *Smd) PieceName() string { return s.Name }

func (s *Smd) Offset() (x, y float64) { return s.X, s.Y }

func (s *Smd) String() string {
	return fmt.Sprintf("<smd name=\"%s\" x=\"%.5f\" y=\"%.5f\" rot=\"R%.5f\" dx=\"%.5f\" dy=\"%.5f\" layer=\"%d\" roundness=\"%d\" stop=\"%s\" thermals=\"%s\" cream=\"%s\"/>\n",
		s.Name, s.X, s.Y, s.Rotation, s.DX, s.DY, s.Layer, s.Roundness, yesNo(s.Stop), yesNo(s.Thermals), yesNo(s.Cream))
}
