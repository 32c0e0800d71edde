package brd

import (
	"fmt"
	"io"
)

// Package is a reusable part footprint: a named, insertion-ordered
// collection of pieces (pads, vias, surface-mount pads). A package is
// created empty, populated with Add, and becomes part of exactly one
// library. Emission needs the owning library because the package tag
// carries the library's version.
type Package struct {
	Name        string
	Description string

	library *Library
	pieces  *orderedMap[Piece]
}

func NewPackage(name string) *Package {
	return &Package{Name: name, pieces: newOrderedMap[Piece]()}
}

// Add registers a piece under its own name. Piece names must be unique
// within the package.
func (p *Package) Add(piece Piece) error {
	if !p.pieces.add(piece.PieceName(), piece) {
		return fmt.Errorf("%w: duplicate piece name %q in package %q", ErrInvalidArgument, piece.PieceName(), p.Name)
	}
	return nil
}

// Piece returns the named piece.
func (p *Package) Piece(name string) (Piece, error) {
	piece, ok := p.pieces.get(name)
	if !ok {
		return nil, fmt.Errorf("%w: no piece %q in package %q", ErrNotFound, name, p.Name)
	}
	return piece, nil
}

// PieceOffset returns the package-local position of the named piece.
func (p *Package) PieceOffset(name string) (x, y float64, err error) {
	piece, err := p.Piece(name)
	if err != nil {
		return 0, 0, err
	}
	x, y = piece.Offset()
	return x, y, nil
}

// PieceNames returns the piece names in insertion order.
func (p *Package) PieceNames() []string { return p.pieces.keys() }

// PieceCount is the number of pieces, which doubles as the part's lead
// count in the bill of materials.
func (p *Package) PieceCount() int { return p.pieces.len() }

// Library returns the library this package was added to, or nil.
func (p *Package) Library() *Library { return p.library }

// WriteXML emits the package block with its pieces in the order they
// were added. The package must already belong to a library.
func (p *Package) WriteXML(w io.Writer) error {
	if p.library == nil {
		return fmt.Errorf("%w: package %q serialized before being added to a library", ErrInvalidArgument, p.Name)
	}
	if _, err := fmt.Fprintf(w, "<package name=\"%s\" library_version=\"%d\">\n", p.Name, p.library.Version); err != nil {
		return err
	}
	if p.Description != "" {
		if _, err := fmt.Fprintf(w, "<description>%s</description>\n", p.Description); err != nil {
			return err
		}
	}
	for _, piece := range p.pieces.values() {
		if _, err := io.WriteString(w, piece.String()); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</package>\n")
	return err
}
