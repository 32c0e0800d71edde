package script

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/brd"
)

// Build assembles a board model from a parsed script. Statements are
// applied in file order; references to libraries, packages and
// elements resolve against what was declared earlier in the file.
func Build(f *File) (*brd.Board, error) {
	b := brd.NewBoard("")
	seenBoard := false
	libraries := make(map[string]*brd.Library)
	packages := make(map[string]*brd.Package)
	elements := make(map[string]*brd.Element)

	for _, stmt := range f.Statements {
		switch {
		case stmt.Board != nil:
			if seenBoard {
				return nil, fmt.Errorf("duplicate board statement %q", stmt.Board.Title)
			}
			seenBoard = true
			if err := applyBoard(b, stmt.Board); err != nil {
				return nil, err
			}

		case stmt.Library != nil:
			s := stmt.Library
			if _, ok := libraries[s.Name]; ok {
				return nil, fmt.Errorf("duplicate library %q", s.Name)
			}
			lib := brd.NewLibrary(s.Name, s.URN)
			if s.Version != nil {
				lib.Version = *s.Version
			}
			if s.Description != nil {
				lib.Description = *s.Description
			}
			libraries[s.Name] = lib
			b.AddLibrary(lib)

		case stmt.Package != nil:
			pkg, err := buildPackage(stmt.Package, libraries)
			if err != nil {
				return nil, err
			}
			if _, ok := packages[pkg.Name]; ok {
				return nil, fmt.Errorf("duplicate package %q", pkg.Name)
			}
			packages[pkg.Name] = pkg

		case stmt.Place != nil:
			s := stmt.Place
			pkg, ok := packages[s.Package]
			if !ok {
				return nil, fmt.Errorf("place %q: unknown package %q", s.Name, s.Package)
			}
			if _, ok := elements[s.Name]; ok {
				return nil, fmt.Errorf("duplicate element %q", s.Name)
			}
			e := brd.NewElement(s.Name, pkg, s.X, s.Y, 0)
			if s.Rot != nil {
				e.Rotation = *s.Rot
			}
			if s.Value != nil {
				e.Value = *s.Value
			}
			e.Mirror = s.Mirror
			elements[s.Name] = e
			b.AddElement(e)

		case stmt.Net != nil:
			sig, err := buildNet(stmt.Net, elements)
			if err != nil {
				return nil, err
			}
			b.AddSignal(sig)

		case stmt.Plain != nil:
			if p := buildPlain(stmt.Plain); p != nil {
				b.AddPlain(p)
			}
		}
	}
	return b, nil
}

func applyBoard(b *brd.Board, s *BoardStmt) error {
	b.Title = s.Title
	if s.Units != nil {
		if err := b.SetUnits(*s.Units); err != nil {
			return fmt.Errorf("board %q: %w", s.Title, err)
		}
	}
	if s.Grid != nil {
		b.GridDistance = *s.Grid
	}
	if s.Alt != nil {
		b.AltDistance = *s.Alt
	}
	if s.Comment != nil {
		b.HeaderComment = *s.Comment
	}
	return nil
}

func buildPackage(s *PackageStmt, libraries map[string]*brd.Library) (*brd.Package, error) {
	lib, ok := libraries[s.Library]
	if !ok {
		return nil, fmt.Errorf("package %q: unknown library %q", s.Name, s.Library)
	}

	pkg := brd.NewPackage(s.Name)
	if s.Description != nil {
		pkg.Description = *s.Description
	}

	for _, piece := range s.Pieces {
		built, err := buildPiece(piece)
		if err != nil {
			return nil, fmt.Errorf("package %q: %w", s.Name, err)
		}
		if err := pkg.Add(built); err != nil {
			return nil, fmt.Errorf("package %q: %w", s.Name, err)
		}
	}

	if err := lib.Add(pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

func buildPiece(s *PieceStmt) (brd.Piece, error) {
	switch {
	case s.Pad != nil:
		pad, err := brd.NewPad(s.Pad.Name, s.Pad.X, s.Pad.Y, s.Pad.Diameter)
		if err != nil {
			return nil, err
		}
		if s.Pad.Drill != nil {
			pad.Drill = *s.Pad.Drill
		}
		if s.Pad.Shape != nil {
			pad.Shape = *s.Pad.Shape
		}
		if s.Pad.Rot != nil {
			pad.Rotation = *s.Pad.Rot
		}
		return pad, nil

	case s.Smd != nil:
		smd := brd.NewSmd(s.Smd.Name, s.Smd.X, s.Smd.Y, s.Smd.DX, s.Smd.DY, s.Smd.Layer)
		if s.Smd.Rot != nil {
			smd.Rotation = *s.Smd.Rot
		}
		if s.Smd.Roundness != nil {
			smd.Roundness = *s.Smd.Roundness
		}
		return smd, nil

	case s.Via != nil:
		via := brd.NewVia(s.Via.Name, s.Via.X, s.Via.Y, s.Via.Drill)
		if s.Via.Extent != nil {
			via.Extent = *s.Via.Extent
		}
		return via, nil
	}
	return nil, fmt.Errorf("empty piece statement")
}

func buildNet(s *NetStmt, elements map[string]*brd.Element) (*brd.Signal, error) {
	contacts := make([]brd.Contact, 0, len(s.Contacts))
	for _, c := range s.Contacts {
		e, ok := elements[c.Element]
		if !ok {
			return nil, fmt.Errorf("net %q: unknown element %q", s.Name, c.Element)
		}
		contacts = append(contacts, brd.Contact{Element: e, Pad: c.Pad})
	}
	sig, err := brd.NewSignal(s.Name, s.Layer, contacts...)
	if err != nil {
		return nil, err
	}
	sig.AirwiresHidden = s.Hidden
	return sig, nil
}

func buildPlain(s *PlainStmt) brd.Primitive {
	switch {
	case s.Hole != nil:
		return brd.NewHole(s.Hole.X, s.Hole.Y, s.Hole.Drill)

	case s.Circle != nil:
		c := brd.NewCircle(s.Circle.X, s.Circle.Y, s.Circle.Diameter)
		if s.Circle.Width != nil {
			c.Width = *s.Circle.Width
		}
		if s.Circle.Layer != nil {
			c.Layer = *s.Circle.Layer
		}
		return c

	case s.Wire != nil:
		w := brd.NewWire(s.Wire.X1, s.Wire.Y1, s.Wire.X2, s.Wire.Y2)
		if s.Wire.Width != nil {
			w.Width = *s.Wire.Width
		}
		if s.Wire.Layer != nil {
			w.Layer = *s.Wire.Layer
		}
		w.Curve = s.Wire.Curve
		return w

	case s.Text != nil:
		t := brd.NewText(s.Text.X, s.Text.Y, s.Text.Size, s.Text.Layer, s.Text.Content)
		if s.Text.Rot != nil {
			t.Rotation = *s.Text.Rot
		}
		t.Mirror = s.Text.Mirror
		return t
	}
	return nil
}
